// File: testop_test.go
// Role: TestOp, a minimal fixture operator for this package's tests,
// grounded on original_source/flux-graph/src/commands/mod.rs's own
// #[cfg(test)] TestOp helper (single float input/output, constructible
// either as a plain node or a zero-input "source").

package command_test

import "github.com/katalvlaran/fluxgraph/core"

type TestOp struct {
	id    core.NodeID
	in    []*core.InputPort
	out   *core.OutputPort
	value float32
}

// NewTestOp builds a one-input, one-output test operator.
func NewTestOp(value float32) *TestOp {
	out := core.NewOutputPort("Out", core.KindFloat, core.TriggerNone)
	out.Set(core.Float(value))
	return &TestOp{
		id:    core.NewNodeID(),
		in:    []*core.InputPort{core.NewInputPort("In", core.ExactType(core.KindFloat), core.Float(0))},
		out:   out,
		value: value,
	}
}

// NewTestSourceOp builds a zero-input test operator, a pure source.
func NewTestSourceOp(value float32) *TestOp {
	out := core.NewOutputPort("Out", core.KindFloat, core.TriggerNone)
	out.Set(core.Float(value))
	return &TestOp{id: core.NewNodeID(), out: out, value: value}
}

func (o *TestOp) ID() core.NodeID             { return o.id }
func (o *TestOp) Name() string                { return "TestOp" }
func (o *TestOp) Inputs() []*core.InputPort   { return o.in }
func (o *TestOp) Outputs() []*core.OutputPort { return []*core.OutputPort{o.out} }
func (o *TestOp) Compute(ctx *core.EvalContext, resolve core.InputResolver) {
	if len(o.in) == 0 {
		return
	}
	v := o.in[0].Default
	if o.in[0].Connection != nil {
		v = resolve(o.in[0].Connection.Source, o.in[0].Connection.OutputIndex)
	}
	o.out.Set(v)
}
