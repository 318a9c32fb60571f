// File: operator.go
// Role: The polymorphic operator contract (spec component E).
// compute is responsible for reading each input (via Connection ->
// resolve(...) or Default), producing outputs, and calling
// outputs[i].Set(value).

package core

// InputResolver resolves an upstream (node, output index) pair to its
// current Value, recursively triggering evaluation as needed. The Graph
// supplies this to Operator.Compute; it never returns an error directly —
// a failed resolution yields Absent, matching "coercions never panic."
type InputResolver func(node NodeID, outputIndex int) Value

// Operator is the trait every graph node implements: typed ports plus a
// single Compute entry point.
type Operator interface {
	ID() NodeID
	Name() string

	Inputs() []*InputPort
	Outputs() []*OutputPort

	// Compute reads inputs via resolve, produces outputs, and calls
	// outputs[i].Set(...). It must complete synchronously (spec §5).
	Compute(ctx *EvalContext, resolve InputResolver)
}

// TimeVarying is implemented by operators that opt their outputs into
// Animated dirty-flag semantics by default (spec §4.3): when such an
// operator reports true, Graph.Add switches its TriggerNone outputs to
// TriggerAnimated.
type TimeVarying interface {
	IsTimeVarying() bool
}

// Triggerable is implemented by operators exposing trigger ports.
type Triggerable interface {
	TriggerInputs() []*TriggerInput
	TriggerOutputs() []*TriggerOutput
}

// TriggerReceiver is implemented by operators that react to an inbound
// trigger fire distinctly from a pull-based Compute (e.g. Counter,
// ForEach). Fire (trigger.go) calls OnTrigger instead of Compute.
type TriggerReceiver interface {
	OnTrigger(ctx *EvalContext, triggerInputIndex int)
}

// ConversionOperator marks an operator as a privileged conversion node
// (spec §4.6): exactly one input, one output, a fixed (From, To) pair.
// The graph tags nodes implementing this so disconnect can transparently
// remove them and an editor can render them distinctly.
type ConversionOperator interface {
	Operator
	ConversionTypes() (from, to Kind)
}

// OperatorMeta is optional editor-facing metadata (category, description),
// orthogonal to evaluation (spec §4.3).
type OperatorMeta interface {
	Category() string
	Description() string
}
