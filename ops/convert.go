// File: convert.go
// Role: BoolToFloat, a conversion operator self-registering into
// core.RegisterConversion the way an image.Format or database/sql.Driver
// registers itself from init() — core.Graph.Connect auto-inserts this
// node whenever a Bool output feeds a Float-only input without one
// already wired in between.

package ops

import "github.com/katalvlaran/fluxgraph/core"

func init() {
	core.RegisterConversion(core.KindBool, core.KindFloat, func(id core.NodeID) core.ConversionOperator {
		return newBoolToFloat(id)
	})
}

// BoolToFloat converts Bool to Float: true -> 1, false -> 0.
type BoolToFloat struct {
	id  core.NodeID
	in  *core.InputPort
	out *core.OutputPort
}

// NewBoolToFloat builds a standalone BoolToFloat node with a fresh ID;
// callers inserting one manually (rather than via the auto-conversion
// path) use this.
func NewBoolToFloat() *BoolToFloat { return newBoolToFloat(core.NewNodeID()) }

func newBoolToFloat(id core.NodeID) *BoolToFloat {
	return &BoolToFloat{
		id:  id,
		in:  core.NewInputPort("In", core.ExactType(core.KindBool), core.Bool(false)),
		out: core.NewOutputPort("Out", core.KindFloat, core.TriggerNone),
	}
}

func (c *BoolToFloat) ID() core.NodeID                { return c.id }
func (c *BoolToFloat) Name() string                   { return "BoolToFloat" }
func (c *BoolToFloat) Category() string               { return "Conversion" }
func (c *BoolToFloat) Description() string            { return "Converts Bool to Float (true -> 1, false -> 0)." }
func (c *BoolToFloat) Inputs() []*core.InputPort      { return []*core.InputPort{c.in} }
func (c *BoolToFloat) Outputs() []*core.OutputPort    { return []*core.OutputPort{c.out} }
func (c *BoolToFloat) ConversionTypes() (core.Kind, core.Kind) {
	return core.KindBool, core.KindFloat
}

func (c *BoolToFloat) Compute(_ *core.EvalContext, resolve core.InputResolver) {
	v := resolveFloat(c.in, resolve)
	c.out.Set(core.Float(v))
}
