//go:build arm64 && !noasm

package platform

// Relax emits YIELD, the arm64 spin-wait hint.  Implemented in
// relax_arm64.s.
//
//go:noescape
//go:nosplit
func Relax()
