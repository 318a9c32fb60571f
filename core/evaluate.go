// File: evaluate.go
// Role: evaluate(node, output, ctx) (spec §4.4), the recursive pull
// algorithm with dirty-flag checking, input-version memoization, and
// on-stack cycle fault handling.

package core

// Evaluate resolves the given output of node under ctx, recomputing the
// node (and recursively, its inputs) only if necessary.
//
// Complexity: O(1) amortized on a cache hit; O(size of the reached
// subgraph) on a full recompute.
func (g *Graph) Evaluate(node NodeID, output int, ctx *EvalContext) (Value, error) {
	v, _, err := g.evaluate(node, output, ctx)
	return v, err
}

// evaluate is the internal recursive core; it additionally returns the
// output's version so callers building a memo (this function itself, and
// the compiler package) can detect upstream version bumps.
func (g *Graph) evaluate(id NodeID, output int, ctx *EvalContext) (Value, uint64, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Absent, 0, NewError(KindUnknownNode, id, "node not found")
	}
	outs := n.op.Outputs()
	if output < 0 || output >= len(outs) {
		return Absent, 0, NewError(KindUnknownPort, id, "output index %d out of range", output)
	}

	key := onStackKey{node: id, call: ctx.CallCtx}
	if _, active := g.onStack[key]; active {
		err := NewError(KindCycleDetected, id, "re-entrant evaluation detected")
		g.faultNode(n, ctx, err)
		g.onStack[key] = true // the frame that owns key reports the fault too
		return outs[output].Value(), outs[output].Version(), err
	}
	g.onStack[key] = false
	defer delete(g.onStack, key)

	g.lastEvalVisits++

	out := outs[output]
	epochVal := g.epoch.Value()
	dirty := out.dirty.IsDirtyForContext(ctx, epochVal)

	// Pre-resolve every input so we both (a) have the versions needed for
	// the memo comparison and (b) leave upstream caches warm for Compute's
	// own resolve calls (spec §4.4 step 2-3).
	versions := make(map[inputKey]uint64)
	for _, in := range n.op.Inputs() {
		for _, c := range in.sources() {
			// Errors from an upstream node are already reported via that
			// node's own fault event and its output left at Zero(); this
			// node simply proceeds with whatever value came back (spec §7
			// "evaluation errors are isolated to the offending node").
			_, ver, _ := g.evaluate(c.Source, c.OutputIndex, ctx)
			versions[inputKey{c.Source, c.OutputIndex}] = ver
		}
	}

	needCompute := dirty || !n.everComputed || !versionsMatch(n.lastVersions, versions)

	if !needCompute {
		g.cacheHits++
		return out.Value(), out.Version(), nil
	}

	g.cacheMisses++

	resolve := func(srcID NodeID, srcOut int) Value {
		v, _, err := g.evaluate(srcID, srcOut, ctx)
		if err != nil {
			return Absent
		}
		return v
	}
	n.op.Compute(ctx, resolve)

	for _, o := range n.op.Outputs() {
		o.dirty.MarkClean(ctx, epochVal)
	}
	n.lastVersions = versions
	n.everComputed = true

	if g.onStack[key] {
		return out.Value(), out.Version(), NewError(KindCycleDetected, id, "re-entrant evaluation detected")
	}
	return out.Value(), out.Version(), nil
}

// versionsMatch reports whether every key present in want is present in
// have with the identical version. A structural change (different set of
// sources than last time) manifests as an unmatched key and therefore a
// mismatch, forcing recompute.
func versionsMatch(have, want map[inputKey]uint64) bool {
	if len(have) != len(want) {
		return false
	}
	for k, v := range want {
		hv, ok := have[k]
		if !ok || hv != v {
			return false
		}
	}
	return true
}

// faultNode clears every output of n to its declared-type zero and clears
// the dirty flag for ctx so the failure does not thrash (spec §7
// "Evaluation errors are isolated to the offending node").
func (g *Graph) faultNode(n *Node, ctx *EvalContext, err error) {
	epochVal := g.epoch.Value()
	for _, o := range n.op.Outputs() {
		o.Set(Zero(o.Type))
		o.dirty.MarkClean(ctx, epochVal)
	}
	g.emitEvaluationFault(n.id, err)
	g.logger.Warn().Str("node", n.id.String()).Err(err).Msg("evaluation fault")
}
