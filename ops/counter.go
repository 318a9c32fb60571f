// File: counter.go
// Role: Counter, the push-driven counterpart to the pull-based operators
// above: it carries its own persistent state across evaluations and only
// advances on an inbound trigger fire, not on an ordinary Compute pull.

package ops

import "github.com/katalvlaran/fluxgraph/core"

// Counter accumulates one "Increment" trigger fire at a time, exposing
// the running total as Count. A pull (Compute) merely republishes the
// current total; only OnTrigger advances it, so re-evaluating Count from
// an unrelated part of the graph never double-counts a fire.
type Counter struct {
	id        core.NodeID
	increment *core.TriggerInput
	count     *core.OutputPort
	total     int32
	step      int32
}

// NewCounter builds a Counter that advances by step on each Increment
// fire (step defaults to 1 if given 0).
func NewCounter(step int32) *Counter {
	if step == 0 {
		step = 1
	}
	return &Counter{
		id:        core.NewNodeID(),
		increment: &core.TriggerInput{Name: "Increment"},
		count:     core.NewOutputPort("Count", core.KindInt, core.TriggerNone),
		step:      step,
	}
}

func (c *Counter) ID() core.NodeID                       { return c.id }
func (c *Counter) Name() string                          { return "Counter" }
func (c *Counter) Category() string                      { return "State" }
func (c *Counter) Description() string                   { return "Accumulates one step per Increment fire." }
func (c *Counter) Inputs() []*core.InputPort             { return nil }
func (c *Counter) Outputs() []*core.OutputPort           { return []*core.OutputPort{c.count} }
func (c *Counter) TriggerInputs() []*core.TriggerInput   { return []*core.TriggerInput{c.increment} }
func (c *Counter) TriggerOutputs() []*core.TriggerOutput { return nil }

// Reset zeroes the running total; callers wanting the change visible to a
// stale cache should also call Outputs()[0].MarkDirty().
func (c *Counter) Reset() { c.total = 0 }

func (c *Counter) Compute(_ *core.EvalContext, _ core.InputResolver) {
	c.count.Set(core.Int(c.total))
}

func (c *Counter) OnTrigger(_ *core.EvalContext, _ int) {
	c.total += c.step
	c.count.Set(core.Int(c.total))
}
