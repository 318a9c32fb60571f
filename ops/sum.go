// File: sum.go
// Role: Sum, grounded on original_source/flux-operators/src/builtin/sum.rs —
// a variadic multi-input accumulator with identity 0. The original also
// printed every computed total to stdout for demo purposes; per the
// "no stdout from compute" redesign this port drops that entirely and
// only updates its output.

package ops

import "github.com/katalvlaran/fluxgraph/core"

// Sum adds every value wired into its multi-input port, starting from the
// additive identity so an unconnected Sum reads as 0.
type Sum struct {
	id     core.NodeID
	values *core.InputPort
	out    *core.OutputPort
}

// NewSum builds a Sum node with an empty multi-input.
func NewSum() *Sum {
	return &Sum{
		id:     core.NewNodeID(),
		values: core.NewMultiInputPort("Values", core.AnyType(), core.Float(0)),
		out:    core.NewOutputPort("Out", core.KindFloat, core.TriggerNone),
	}
}

func (s *Sum) ID() core.NodeID             { return s.id }
func (s *Sum) Name() string                { return "Sum" }
func (s *Sum) Category() string            { return "Math" }
func (s *Sum) Description() string         { return "Adds every value wired into Values." }
func (s *Sum) Inputs() []*core.InputPort   { return []*core.InputPort{s.values} }
func (s *Sum) Outputs() []*core.OutputPort { return []*core.OutputPort{s.out} }

func (s *Sum) Compute(_ *core.EvalContext, resolve core.InputResolver) {
	total := core.Float(0)
	for _, v := range resolveAll(s.values, resolve) {
		if r := total.Add(v); !r.IsAbsent() {
			total = r
		}
	}
	s.out.Set(total)
}
