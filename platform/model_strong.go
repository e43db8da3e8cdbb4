//go:build (amd64 || 386 || s390x) && !weakorder

package platform

// StrongOrdering reports a total-store-order target.  Plain loads already
// have acquire semantics and plain stores release semantics, so only
// WriteSeqCst issues a fence.
const StrongOrdering = true

// Forced is set when the weakorder build tag overrides the target model.
const Forced = false

const modelName = "strong"
