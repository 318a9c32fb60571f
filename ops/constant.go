// File: constant.go
// Role: Constant, grounded on original_source/flux-operators/src/builtin/constant.rs.
// The original lets an otherwise-constant node be overridden by wiring
// something into its single input; Compute prefers the live connection
// and falls back to the node's own stored value.

package ops

import "github.com/katalvlaran/fluxgraph/core"

// Constant emits a fixed Value unless something is connected into its
// Value input, in which case it passes that through instead — the same
// override-by-wiring idiom the original's ConstantOp uses so a graph
// editor can temporarily drive a literal from elsewhere without deleting
// the node.
type Constant struct {
	id  core.NodeID
	in  *core.InputPort
	out *core.OutputPort
}

// NewConstant builds a Constant seeded with value; value's Kind fixes the
// port type for the lifetime of the node.
func NewConstant(value core.Value) *Constant {
	kind := value.Type()
	if kind == core.KindAbsent {
		kind = core.KindFloat
		value = core.Float(0)
	}
	return &Constant{
		id:  core.NewNodeID(),
		in:  core.NewInputPort("Value", core.ExactType(kind), value),
		out: core.NewOutputPort("Out", kind, core.TriggerNone),
	}
}

func (c *Constant) ID() core.NodeID             { return c.id }
func (c *Constant) Name() string                { return "Constant" }
func (c *Constant) Category() string            { return "Source" }
func (c *Constant) Description() string         { return "Emits a fixed value, or whatever is wired into it." }
func (c *Constant) Inputs() []*core.InputPort   { return []*core.InputPort{c.in} }
func (c *Constant) Outputs() []*core.OutputPort { return []*core.OutputPort{c.out} }

// SetValue replaces the node's own stored literal. Takes effect the next
// time Compute runs with nothing wired into Value; callers that want it
// to take effect immediately should also call Outputs()[0].MarkDirty().
func (c *Constant) SetValue(v core.Value) { c.in.Default = v }

func (c *Constant) Compute(_ *core.EvalContext, resolve core.InputResolver) {
	c.out.Set(resolveValue(c.in, resolve))
}
