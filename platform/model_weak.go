//go:build !amd64 && !386 && !s390x && !weakorder

package platform

// StrongOrdering is false on weakly ordered targets (arm64, ppc64,
// riscv64, ...): acquire, release and seqcst primitives insert Fence.
const StrongOrdering = false

// Forced is set when the weakorder build tag overrides the target model.
const Forced = false

const modelName = "weak"
