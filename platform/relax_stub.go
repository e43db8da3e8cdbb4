//go:build (!amd64 && !arm64) || noasm

package platform

// Relax is a no-op on targets without a spin-wait hint.
//
//go:nosplit
func Relax() {}
