package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_DirectTypeMatch(t *testing.T) {
	g := New()
	c1 := newConstOp(2)
	c2 := newConstOp(3)
	add := newAddOp()
	ci1, ci2, ai := g.Add(c1), g.Add(c2), g.Add(add)

	conv, err := g.Connect(ci1, 0, ai, 0)
	require.NoError(t, err)
	assert.Nil(t, conv)
	_, err = g.Connect(ci2, 0, ai, 1)
	require.NoError(t, err)

	ctx := NewEvalContext(g.Epoch())
	v, err := g.Evaluate(ai, 0, ctx)
	require.NoError(t, err)
	f, _ := v.AsFloat()
	assert.Equal(t, float32(5), f)
}

func TestConnect_MultiplicityViolation(t *testing.T) {
	g := New()
	c1, c2 := newConstOp(1), newConstOp(2)
	add := newAddOp()
	i1, i2, ai := g.Add(c1), g.Add(c2), g.Add(add)

	_, err := g.Connect(i1, 0, ai, 0)
	require.NoError(t, err)
	_, err = g.Connect(i2, 0, ai, 0)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindMultiplicityViolation, ee.Kind)
}

func TestConnect_CycleDetected(t *testing.T) {
	g := New()
	a := newAddOp()
	b := newAddOp()
	ai, bi := g.Add(a), g.Add(b)

	_, err := g.Connect(ai, 0, bi, 0)
	require.NoError(t, err)
	_, err = g.Connect(bi, 0, ai, 0)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindCycleDetected, ee.Kind)
}

func TestConnect_TypeMismatchWithoutConversion(t *testing.T) {
	g := New()
	s := newStringConstOp("hi")
	si := g.Add(s)
	add := newAddOp()
	ai := g.Add(add)

	_, err := g.Connect(si, 0, ai, 0)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindTypeMismatch, ee.Kind)
}

func TestDisconnect_RemovesOrphanedConversion(t *testing.T) {
	g := New()
	RegisterConversion(KindInt, KindFloat, func(id NodeID) ConversionOperator {
		return newIntToFloatOp(id)
	})
	ic := g.Add(newIntConstOp(4))
	add := newAddOp()
	ai := g.Add(add)

	convID, err := g.Connect(ic, 0, ai, 0)
	require.NoError(t, err)
	require.NotNil(t, convID)
	_, ok := g.Get(*convID)
	assert.True(t, ok)

	require.NoError(t, g.Disconnect(ai, 0))
	_, ok = g.Get(*convID)
	assert.False(t, ok, "orphaned conversion node should be removed")
}

func TestRemove_ClearsDanglingInputs(t *testing.T) {
	g := New()
	c := newConstOp(1)
	add := newAddOp()
	ci, ai := g.Add(c), g.Add(add)
	_, err := g.Connect(ci, 0, ai, 0)
	require.NoError(t, err)

	_, ok := g.Remove(ci)
	require.True(t, ok)
	assert.False(t, add.a.Connected())
}
