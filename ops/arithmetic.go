// File: arithmetic.go
// Role: Add and Multiply, the two simplest binary arithmetic operators,
// both built directly on core.Value's own Add/Mul (value_ops.go) so the
// full promotion table (scalar/vector/color/list) is free.

package ops

import "github.com/katalvlaran/fluxgraph/core"

// Add sums its two inputs via core.Value.Add, inheriting that method's
// full scalar/vector/color/list promotion rules.
type Add struct {
	id       core.NodeID
	a, b     *core.InputPort
	out      *core.OutputPort
}

// NewAdd builds an Add node; both inputs default to Float(0) and accept
// any type, since the promotion table decides the result kind at compute
// time rather than at wiring time.
func NewAdd() *Add {
	return &Add{
		id:  core.NewNodeID(),
		a:   core.NewInputPort("A", core.AnyType(), core.Float(0)),
		b:   core.NewInputPort("B", core.AnyType(), core.Float(0)),
		out: core.NewOutputPort("Out", core.KindFloat, core.TriggerNone),
	}
}

func (o *Add) ID() core.NodeID             { return o.id }
func (o *Add) Name() string                { return "Add" }
func (o *Add) Category() string            { return "Math" }
func (o *Add) Description() string         { return "A + B." }
func (o *Add) Inputs() []*core.InputPort   { return []*core.InputPort{o.a, o.b} }
func (o *Add) Outputs() []*core.OutputPort { return []*core.OutputPort{o.out} }

func (o *Add) Compute(_ *core.EvalContext, resolve core.InputResolver) {
	av := resolveValue(o.a, resolve)
	bv := resolveValue(o.b, resolve)
	o.out.Set(av.Add(bv))
}

// Multiply computes its two inputs' product via core.Value.Mul.
type Multiply struct {
	id   core.NodeID
	a, b *core.InputPort
	out  *core.OutputPort
}

// NewMultiply builds a Multiply node.
func NewMultiply() *Multiply {
	return &Multiply{
		id:  core.NewNodeID(),
		a:   core.NewInputPort("A", core.AnyType(), core.Float(1)),
		b:   core.NewInputPort("B", core.AnyType(), core.Float(1)),
		out: core.NewOutputPort("Out", core.KindFloat, core.TriggerNone),
	}
}

func (o *Multiply) ID() core.NodeID             { return o.id }
func (o *Multiply) Name() string                { return "Multiply" }
func (o *Multiply) Category() string            { return "Math" }
func (o *Multiply) Description() string         { return "A * B." }
func (o *Multiply) Inputs() []*core.InputPort   { return []*core.InputPort{o.a, o.b} }
func (o *Multiply) Outputs() []*core.OutputPort { return []*core.OutputPort{o.out} }

func (o *Multiply) Compute(_ *core.EvalContext, resolve core.InputResolver) {
	av := resolveValue(o.a, resolve)
	bv := resolveValue(o.b, resolve)
	o.out.Set(av.Mul(bv))
}
