// File: resolve.go
// Role: tiny resolve-or-default helpers shared by every operator in this
// package, factoring out the pattern every original_source operator
// duplicates inline (flux-operators/src/math/comparison.rs's get_float,
// repeated in builtin/constant.rs and sum.rs).

package ops

import "github.com/katalvlaran/fluxgraph/core"

// resolveValue reads in's live value: whatever its connection currently
// produces, or its Default if unconnected.
func resolveValue(in *core.InputPort, resolve core.InputResolver) core.Value {
	if in.Connection != nil {
		return resolve(in.Connection.Source, in.Connection.OutputIndex)
	}
	return in.Default
}

// resolveFloat is resolveValue narrowed to float32, coercing Int/Bool the
// same way core.Value.AsFloat does; an unrepresentable value reads as 0.
func resolveFloat(in *core.InputPort, resolve core.InputResolver) float32 {
	f, ok := resolveValue(in, resolve).AsFloat()
	if !ok {
		return 0
	}
	return f
}

// resolveAll reads every source feeding a multi-input port, in connection
// order (used by Sum).
func resolveAll(in *core.InputPort, resolve core.InputResolver) []core.Value {
	srcs := in.Connections
	out := make([]core.Value, 0, len(srcs))
	for _, c := range srcs {
		out = append(out, resolve(c.Source, c.OutputIndex))
	}
	return out
}
