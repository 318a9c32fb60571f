package compiler_test

import "github.com/katalvlaran/fluxgraph/core"

// constOp emits a fixed Float value.
type constOp struct {
	id  core.NodeID
	val float32
	out *core.OutputPort
}

func newConstOp(val float32) *constOp {
	return &constOp{id: core.NewNodeID(), val: val, out: core.NewOutputPort("out", core.KindFloat, core.TriggerNone)}
}

func (o *constOp) ID() core.NodeID               { return o.id }
func (o *constOp) Name() string                  { return "Const" }
func (o *constOp) Inputs() []*core.InputPort     { return nil }
func (o *constOp) Outputs() []*core.OutputPort   { return []*core.OutputPort{o.out} }
func (o *constOp) Compute(ctx *core.EvalContext, resolve core.InputResolver) {
	o.out.Set(core.Float(o.val))
}

// addOp sums two float inputs.
type addOp struct {
	id   core.NodeID
	a, b *core.InputPort
	out  *core.OutputPort
}

func newAddOp() *addOp {
	return &addOp{
		id:  core.NewNodeID(),
		a:   core.NewInputPort("a", core.ExactType(core.KindFloat), core.Float(0)),
		b:   core.NewInputPort("b", core.ExactType(core.KindFloat), core.Float(0)),
		out: core.NewOutputPort("sum", core.KindFloat, core.TriggerNone),
	}
}

func (o *addOp) ID() core.NodeID             { return o.id }
func (o *addOp) Name() string                { return "Add" }
func (o *addOp) Inputs() []*core.InputPort   { return []*core.InputPort{o.a, o.b} }
func (o *addOp) Outputs() []*core.OutputPort { return []*core.OutputPort{o.out} }
func (o *addOp) Compute(ctx *core.EvalContext, resolve core.InputResolver) {
	av := o.a.Default
	if o.a.Connection != nil {
		av = resolve(o.a.Connection.Source, o.a.Connection.OutputIndex)
	}
	bv := o.b.Default
	if o.b.Connection != nil {
		bv = resolve(o.b.Connection.Source, o.b.Connection.OutputIndex)
	}
	o.out.Set(av.Add(bv))
}
