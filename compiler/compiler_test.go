package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fluxgraph/compiler"
	"github.com/katalvlaran/fluxgraph/core"
)

// TestCompile_DeadCodeElimination builds a 100-node graph where only a
// 7-node chain feeds the compile target; the other 93 are unrelated
// islands. The compiled plan must retain exactly the 7 reachable nodes.
func TestCompile_DeadCodeElimination(t *testing.T) {
	g := core.New()

	c1, c2 := newConstOp(1), newConstOp(2)
	add1, add2, add3 := newAddOp(), newAddOp(), newAddOp()
	c1id, c2id := g.Add(c1), g.Add(c2)
	a1id, a2id, a3id := g.Add(add1), g.Add(add2), g.Add(add3)

	_, err := g.Connect(c1id, 0, a1id, 0)
	require.NoError(t, err)
	_, err = g.Connect(c2id, 0, a1id, 1)
	require.NoError(t, err)
	_, err = g.Connect(a1id, 0, a2id, 0)
	require.NoError(t, err)
	_, err = g.Connect(c1id, 0, a2id, 1)
	require.NoError(t, err)
	_, err = g.Connect(a2id, 0, a3id, 0)
	require.NoError(t, err)
	_, err = g.Connect(c2id, 0, a3id, 1)
	require.NoError(t, err)
	// chain so far: c1, c2, add1, add2, add3 = 5 nodes feeding a3.

	// Two more nodes in the feeding chain to reach exactly 7.
	c3 := newConstOp(3)
	add4 := newAddOp()
	c3id, a4id := g.Add(c3), g.Add(add4)
	_, err = g.Connect(a3id, 0, a4id, 0)
	require.NoError(t, err)
	_, err = g.Connect(c3id, 0, a4id, 1)
	require.NoError(t, err)
	// now: c1, c2, c3, add1, add2, add3, add4 = 7 nodes feeding a4.

	for i := 0; i < 93; i++ {
		g.Add(newConstOp(float32(i)))
	}

	assert.Equal(t, 100, g.Stats().NodeCount)

	plan, err := compiler.Compile(g, a4id, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, plan.NodeCount())

	ctx := core.NewEvalContext(g.Epoch())
	v, err := plan.Execute(ctx)
	require.NoError(t, err)
	f, _ := v.AsFloat()
	// a1 = 1+2=3; a2 = 3+1=4; a3 = 4+2=6; a4 = 6+3=9
	assert.Equal(t, float32(9), f)
}

func TestCompile_UnknownTarget(t *testing.T) {
	g := core.New()
	_, err := compiler.Compile(g, core.NewNodeID(), 0)
	require.Error(t, err)
}

func TestCompile_TraceLoggerInvokedPerNode(t *testing.T) {
	g := core.New()
	c := newConstOp(1)
	cid := g.Add(c)

	var seen []string
	plan, err := compiler.Compile(g, cid, 0, compiler.WithTraceLogger(func(name string) {
		seen = append(seen, name)
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, plan.NodeCount())
	assert.Equal(t, []string{"Const"}, seen)
}
