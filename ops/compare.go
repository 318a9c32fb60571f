// File: compare.go
// Role: Compare, grounded on original_source/flux-operators/src/math/comparison.rs,
// which widens both operands through its get_float helper before applying
// one of a fixed set of relational operators. Ported here as resolveFloat
// plus a CompareOp enum.

package ops

import "github.com/katalvlaran/fluxgraph/core"

// CompareOp names the relation Compare evaluates.
type CompareOp int

const (
	CompareEqual CompareOp = iota
	CompareNotEqual
	CompareLess
	CompareLessOrEqual
	CompareGreater
	CompareGreaterOrEqual
)

// Compare evaluates A <op> B over both inputs widened to float32, the
// same coercion comparison.rs applies before comparing.
type Compare struct {
	id   core.NodeID
	op   CompareOp
	a, b *core.InputPort
	out  *core.OutputPort
}

// NewCompare builds a Compare node evaluating op.
func NewCompare(op CompareOp) *Compare {
	return &Compare{
		id:  core.NewNodeID(),
		op:  op,
		a:   core.NewInputPort("A", core.AnyType(), core.Float(0)),
		b:   core.NewInputPort("B", core.AnyType(), core.Float(0)),
		out: core.NewOutputPort("Out", core.KindBool, core.TriggerNone),
	}
}

func (c *Compare) ID() core.NodeID             { return c.id }
func (c *Compare) Name() string                { return "Compare" }
func (c *Compare) Category() string            { return "Logic" }
func (c *Compare) Description() string         { return "Compares A against B." }
func (c *Compare) Inputs() []*core.InputPort   { return []*core.InputPort{c.a, c.b} }
func (c *Compare) Outputs() []*core.OutputPort { return []*core.OutputPort{c.out} }

func (c *Compare) Compute(_ *core.EvalContext, resolve core.InputResolver) {
	a := resolveFloat(c.a, resolve)
	b := resolveFloat(c.b, resolve)
	var r bool
	switch c.op {
	case CompareEqual:
		r = a == b
	case CompareNotEqual:
		r = a != b
	case CompareLess:
		r = a < b
	case CompareLessOrEqual:
		r = a <= b
	case CompareGreater:
		r = a > b
	case CompareGreaterOrEqual:
		r = a >= b
	}
	c.out.Set(core.Bool(r))
}
