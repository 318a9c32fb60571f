// File: callcontext.go
// Role: CallContext (spec §3), disambiguating cache entries for the same
// operator reused across composite invocations or loop iterations.
// Grounded bit-for-bit on original_source/flux-core/src/context/call_context.rs
// (the multiplicative-hash child derivation), per SPEC_FULL.md's
// "SUPPLEMENTED FEATURES" entry pinning the exact formula spec.md leaves
// abstract.

package core

// CallContext is a non-zero-after-first-child integer identifying a
// particular composite invocation or loop iteration. RootCallContext is
// the zero value.
type CallContext uint32

// RootCallContext is the outermost, non-nested evaluation context.
const RootCallContext CallContext = 0

// Child derives a context for the index-th nested invocation of c. The
// multiplicative hash (×31, wrapping) spreads children of distinct
// parents apart; wrapping arithmetic means it never panics at depth.
func (c CallContext) Child(index uint32) CallContext {
	return CallContext(uint32(c)*31 + index + 1)
}

// Raw exposes the underlying integer, e.g. for cache-key hashing.
func (c CallContext) Raw() uint32 { return uint32(c) }
