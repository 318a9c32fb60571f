// File: testops_test.go
// Role: Minimal fixture operators shared by this package's tests, in the
// teacher's style of hand-rolled test doubles rather than a mocking
// framework (spec §8 calls these "test operators").

package core

// constOp emits a fixed Float value and never goes dirty.
type constOp struct {
	id  NodeID
	val float32
	out *OutputPort
}

func newConstOp(val float32) *constOp {
	return &constOp{id: NewNodeID(), val: val, out: NewOutputPort("out", KindFloat, TriggerNone)}
}

func (o *constOp) ID() NodeID            { return o.id }
func (o *constOp) Name() string          { return "Const" }
func (o *constOp) Inputs() []*InputPort  { return nil }
func (o *constOp) Outputs() []*OutputPort { return []*OutputPort{o.out} }
func (o *constOp) Compute(ctx *EvalContext, resolve InputResolver) {
	o.out.Set(Float(o.val))
}

// addOp sums two float inputs and counts how many times Compute actually
// ran, so tests can assert on cache-hit behavior.
type addOp struct {
	id    NodeID
	a, b  *InputPort
	out   *OutputPort
	Calls int
}

func newAddOp() *addOp {
	return &addOp{
		id:  NewNodeID(),
		a:   NewInputPort("a", ExactType(KindFloat), Float(0)),
		b:   NewInputPort("b", ExactType(KindFloat), Float(0)),
		out: NewOutputPort("sum", KindFloat, TriggerNone),
	}
}

func (o *addOp) ID() NodeID             { return o.id }
func (o *addOp) Name() string           { return "Add" }
func (o *addOp) Inputs() []*InputPort   { return []*InputPort{o.a, o.b} }
func (o *addOp) Outputs() []*OutputPort { return []*OutputPort{o.out} }
func (o *addOp) Compute(ctx *EvalContext, resolve InputResolver) {
	o.Calls++
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

// stringConstOp emits a fixed String value, used to exercise type
// mismatches against float-only inputs.
type stringConstOp struct {
	id  NodeID
	val string
	out *OutputPort
}

func newStringConstOp(val string) *stringConstOp {
	return &stringConstOp{id: NewNodeID(), val: val, out: NewOutputPort("out", KindString, TriggerNone)}
}

func (o *stringConstOp) ID() NodeID             { return o.id }
func (o *stringConstOp) Name() string           { return "StringConst" }
func (o *stringConstOp) Inputs() []*InputPort   { return nil }
func (o *stringConstOp) Outputs() []*OutputPort { return []*OutputPort{o.out} }
func (o *stringConstOp) Compute(ctx *EvalContext, resolve InputResolver) {
	o.out.Set(String(o.val))
}

// intConstOp emits a fixed Int value, used to exercise auto-conversion.
type intConstOp struct {
	id  NodeID
	val int32
	out *OutputPort
}

func newIntConstOp(val int32) *intConstOp {
	return &intConstOp{id: NewNodeID(), val: val, out: NewOutputPort("out", KindInt, TriggerNone)}
}

func (o *intConstOp) ID() NodeID             { return o.id }
func (o *intConstOp) Name() string           { return "IntConst" }
func (o *intConstOp) Inputs() []*InputPort   { return nil }
func (o *intConstOp) Outputs() []*OutputPort { return []*OutputPort{o.out} }
func (o *intConstOp) Compute(ctx *EvalContext, resolve InputResolver) {
	o.out.Set(Int(o.val))
}

// intToFloatOp is a minimal conversion operator satisfying
// core.ConversionOperator, registered transiently by individual tests.
type intToFloatOp struct {
	id  NodeID
	in  *InputPort
	out *OutputPort
}

func newIntToFloatOp(id NodeID) *intToFloatOp {
	return &intToFloatOp{
		id:  id,
		in:  NewInputPort("in", ExactType(KindInt), Int(0)),
		out: NewOutputPort("out", KindFloat, TriggerNone),
	}
}

func (o *intToFloatOp) ID() NodeID                     { return o.id }
func (o *intToFloatOp) Name() string                   { return "IntToFloat" }
func (o *intToFloatOp) Inputs() []*InputPort           { return []*InputPort{o.in} }
func (o *intToFloatOp) Outputs() []*OutputPort         { return []*OutputPort{o.out} }
func (o *intToFloatOp) ConversionTypes() (Kind, Kind)  { return KindInt, KindFloat }
func (o *intToFloatOp) Compute(ctx *EvalContext, resolve InputResolver) {
	v := o.in.Default
	if o.in.Connection != nil {
		v = resolve(o.in.Connection.Source, o.in.Connection.OutputIndex)
	}
	i, _ := v.AsInt()
	o.out.Set(Float(float32(i)))
}

// selfFeedOp deliberately evaluates itself, to exercise the re-entrant
// cycle fault path without needing a structural cycle in the graph.
type selfFeedOp struct {
	id  NodeID
	out *OutputPort
	g   *Graph
}

func (o *selfFeedOp) ID() NodeID             { return o.id }
func (o *selfFeedOp) Name() string           { return "SelfFeed" }
func (o *selfFeedOp) Inputs() []*InputPort   { return nil }
func (o *selfFeedOp) Outputs() []*OutputPort { return []*OutputPort{o.out} }
func (o *selfFeedOp) Compute(ctx *EvalContext, resolve InputResolver) {
	v, _ := o.g.Evaluate(o.id, 0, ctx)
	o.out.Set(v)
}

// counterOp is a TriggerReceiver with operator-owned persistent state,
// bumped once per inbound trigger fire.
type counterOp struct {
	id    NodeID
	out   *OutputPort
	in    *TriggerInput
	count int32
}

func newCounterOp() *counterOp {
	return &counterOp{
		id:  NewNodeID(),
		out: NewOutputPort("count", KindInt, TriggerNone),
		in:  &TriggerInput{Name: "increment"},
	}
}

func (o *counterOp) ID() NodeID                       { return o.id }
func (o *counterOp) Name() string                     { return "Counter" }
func (o *counterOp) Inputs() []*InputPort             { return nil }
func (o *counterOp) Outputs() []*OutputPort           { return []*OutputPort{o.out} }
func (o *counterOp) TriggerInputs() []*TriggerInput   { return []*TriggerInput{o.in} }
func (o *counterOp) TriggerOutputs() []*TriggerOutput { return nil }
func (o *counterOp) Compute(ctx *EvalContext, resolve InputResolver) {
	o.out.Set(Int(o.count))
}
func (o *counterOp) OnTrigger(ctx *EvalContext, triggerInputIndex int) {
	o.count++
	o.out.Set(Int(o.count))
}

// pulseOp is a trigger source with a single TriggerOutput.
type pulseOp struct {
	id  NodeID
	out *TriggerOutput
}

func newPulseOp() *pulseOp {
	return &pulseOp{id: NewNodeID(), out: &TriggerOutput{Name: "pulse"}}
}

func (o *pulseOp) ID() NodeID                       { return o.id }
func (o *pulseOp) Name() string                     { return "Pulse" }
func (o *pulseOp) Inputs() []*InputPort             { return nil }
func (o *pulseOp) Outputs() []*OutputPort           { return nil }
func (o *pulseOp) TriggerInputs() []*TriggerInput   { return nil }
func (o *pulseOp) TriggerOutputs() []*TriggerOutput { return []*TriggerOutput{o.out} }
func (o *pulseOp) Compute(ctx *EvalContext, resolve InputResolver) {}
