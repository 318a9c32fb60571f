// Package core defines the central Value, Port, Operator, Node and Graph
// types of the fluxgraph evaluation engine, and the pull-based evaluate
// algorithm that walks them.
//
// Unlike a persistent data structure library, a Graph here is NOT safe
// for concurrent mutation: evaluation is single-threaded and cooperative
// (see doc on Graph). The only cross-goroutine guarantee the package
// makes is on CompiledGraph's pruned plan (see the compiler package),
// which may be read from another goroutine once Execute has returned,
// provided the underlying operators are pure.
//
// This file declares package-level documentation only; see value.go,
// port.go, dirty.go, evalctx.go, operator.go, node.go and graph.go for
// the actual declarations.
//
// Errors:
//
//	ErrUnknownNode         - node id not present in the graph.
//	ErrUnknownPort         - input/output index out of range for an operator.
//	ErrTypeMismatch        - connect refused; no direct or converted compatibility.
//	ErrCycleDetected       - connect refused (would close a cycle), or a cycle
//	                         was encountered at evaluation time (a corruption bug).
//	ErrMultiplicityViolation - single input connected twice without disconnect.
//	ErrEvaluationFault     - operator produced absent where concrete was required.
//	ErrCommandFailure      - see the command package.
package core
