package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFire_PropagatesToTriggerReceiver(t *testing.T) {
	g := New()
	pulse := newPulseOp()
	counter := newCounterOp()
	pi, ci := g.Add(pulse), g.Add(counter)

	pulse.out.Targets = append(pulse.out.Targets, TriggerTarget{Node: ci, TriggerInputIndex: 0})

	ctx := NewEvalContext(g.Epoch())
	require.NoError(t, g.Fire(pi, 0, ctx))
	require.NoError(t, g.Fire(pi, 0, ctx))

	v, err := g.Evaluate(ci, 0, ctx)
	require.NoError(t, err)
	i, _ := v.AsInt()
	assert.Equal(t, int32(2), i)
}

func TestFire_UnknownTriggerOutput(t *testing.T) {
	g := New()
	pulse := newPulseOp()
	pi := g.Add(pulse)
	ctx := NewEvalContext(g.Epoch())
	err := g.Fire(pi, 5, ctx)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindUnknownPort, ee.Kind)
}

func TestFire_NotTriggerable(t *testing.T) {
	g := New()
	c := newConstOp(1)
	id := g.Add(c)
	ctx := NewEvalContext(g.Epoch())
	err := g.Fire(id, 0, ctx)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, KindUnknownPort, ee.Kind)
}
