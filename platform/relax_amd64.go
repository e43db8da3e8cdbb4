//go:build amd64 && !noasm

package platform

// Relax executes PAUSE so a busy-wait loop backs off politely while
// staying in userspace.  Implemented in relax_amd64.s.
//
//go:noescape
//go:nosplit
func Relax()
