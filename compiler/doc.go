// Package compiler turns a live core.Graph plus a target output into a
// frozen, dead-code-eliminated execution plan (spec component H): a
// pruned subgraph containing only the target's ancestors, in
// topological order, ready to be run repeatedly without re-walking the
// full graph or re-deriving reachability on every frame.
//
// A CompiledGraph shares the original operator instances with the
// source Graph (Compile never clones an Operator), so any persistent
// state an operator owns survives across Execute calls exactly as it
// would under direct core.Graph.Evaluate calls; only the per-node
// input-version memo is reset once, on the compiled graph's first run.
package compiler
