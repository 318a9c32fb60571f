// Package builder provides functional-option graph assembly helpers,
// grounded on the teacher's own builder package (BuilderOption,
// builderConfig, Constructor, BuildGraph): a single orchestrator resolves
// options into an immutable config and then applies a sequence of
// Constructor functions to a fresh core.Graph in order, so tests,
// examples, and benchmarks can assemble fixture graphs deterministically
// instead of hand-wiring core.Graph.Add/Connect calls inline everywhere.
package builder
