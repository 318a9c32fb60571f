// File: trigger.go
// Role: Fire (spec §4.5), push-based trigger propagation. Distinct from
// evaluate.go's pull model: a fired trigger synchronously visits every
// downstream TriggerTarget in connect order, regardless of any dirty
// flag, calling OnTrigger on receivers and falling back to a plain
// Compute for operators that only want to react by recomputing.

package core

// Fire propagates a trigger from node's trigger output triggerOutput to
// every connected downstream TriggerInput, in the order connections were
// made. Targets implementing TriggerReceiver get OnTrigger called
// directly; targets that only implement Operator get Compute invoked so
// that a trigger can still serve as a plain "recompute now" signal.
//
// Complexity: O(fan-out) plus whatever each receiver's own work costs.
func (g *Graph) Fire(node NodeID, triggerOutput int, ctx *EvalContext) error {
	n, ok := g.nodes[node]
	if !ok {
		return NewError(KindUnknownNode, node, "node not found")
	}
	trig, ok := n.op.(Triggerable)
	if !ok {
		return NewError(KindUnknownPort, node, "operator %q has no trigger ports", n.op.Name())
	}
	outs := trig.TriggerOutputs()
	if triggerOutput < 0 || triggerOutput >= len(outs) {
		return NewError(KindUnknownPort, node, "trigger output index %d out of range", triggerOutput)
	}

	resolve := func(srcID NodeID, srcOut int) Value {
		v, _, err := g.evaluate(srcID, srcOut, ctx)
		if err != nil {
			return Absent
		}
		return v
	}

	for _, target := range outs[triggerOutput].Targets {
		tgtNode, ok := g.nodes[target.Node]
		if !ok {
			continue // target removed since connection; skip silently
		}
		if recv, ok := tgtNode.op.(TriggerReceiver); ok {
			recv.OnTrigger(ctx, target.TriggerInputIndex)
			continue
		}
		tgtNode.op.Compute(ctx, resolve)
		epochVal := g.epoch.Value()
		for _, o := range tgtNode.op.Outputs() {
			o.dirty.MarkClean(ctx, epochVal)
		}
		tgtNode.everComputed = true
	}
	return nil
}
