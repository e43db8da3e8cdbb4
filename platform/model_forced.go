//go:build weakorder

// model_forced.go
//
// Building with -tags weakorder selects the weak strategy on any target.
// Used to run the fence paths on x86 machines.

package platform

const StrongOrdering = false

const Forced = true

const modelName = "weak"
