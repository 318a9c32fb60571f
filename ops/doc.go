// Package ops collects a small built-in operator menagerie exercising
// the core.Operator contract end to end: sources (Constant), pure
// arithmetic (Add, Multiply, Sum), comparison (Compare), a conversion
// operator (BoolToFloat), a time-varying generator (SineWave), and a
// trigger-driven stateful operator (Counter).
//
// Grounded on original_source/flux-operators/src/builtin (constant.rs,
// sum.rs), src/math/comparison.rs, src/time (oscillators.rs and the
// SineWave usage in original_source's 02_sine_wave.rs example), and
// src/logic/boolean.rs. Per SPEC_FULL.md's REDESIGN FLAGS, none of
// these write to stdout from Compute the way a couple of the original
// Rust operators did for demo purposes.
package ops
