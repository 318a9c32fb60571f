package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fluxgraph/command"
	"github.com/katalvlaran/fluxgraph/core"
)

func TestAddNodeCommand_ExecuteUndoRedo(t *testing.T) {
	g := core.New()
	op := NewTestSourceOp(42)
	cmd := command.NewAddNodeCommand(op)

	require.NoError(t, cmd.Execute(g))
	assert.Equal(t, 1, g.Stats().NodeCount)

	require.NoError(t, cmd.Undo(g))
	assert.Equal(t, 0, g.Stats().NodeCount)

	require.NoError(t, cmd.Execute(g))
	assert.Equal(t, 1, g.Stats().NodeCount)
}

func TestRemoveNodeCommand_DoesNotRestoreDownstreamEdges(t *testing.T) {
	g := core.New()
	src := NewTestSourceOp(1)
	sink := NewTestOp(0)
	srcID, sinkID := g.Add(src), g.Add(sink)
	_, err := g.Connect(srcID, 0, sinkID, 0)
	require.NoError(t, err)

	cmd := command.NewRemoveNodeCommand(srcID)
	require.NoError(t, cmd.Execute(g))
	assert.Equal(t, 1, g.Stats().NodeCount)

	require.NoError(t, cmd.Undo(g))
	assert.Equal(t, 2, g.Stats().NodeCount)
	assert.False(t, sink.in[0].Connected(), "remove_node does not restore edges from the removed node into other nodes")
}

func TestConnectCommand_PreservesPreviousOnUndo(t *testing.T) {
	g := core.New()
	src1, src2 := NewTestSourceOp(1), NewTestSourceOp(2)
	sink := NewTestOp(0)
	s1, s2, sk := g.Add(src1), g.Add(src2), g.Add(sink)
	require.NoError(t, command.NewConnectCommand(s1, 0, sk, 0).Execute(g))

	// Disconnect first, then reconnect to src2: core.Graph.Connect refuses
	// an already-populated single input (MultiplicityViolation), so cmd2
	// connects into an empty input and its Undo must leave it empty.
	require.NoError(t, g.Disconnect(sk, 0))
	cmd2 := command.NewConnectCommand(s2, 0, sk, 0)
	require.NoError(t, cmd2.Execute(g))

	ctx := core.NewEvalContext(g.Epoch())
	v, err := g.Evaluate(sk, 0, ctx)
	require.NoError(t, err)
	f, _ := v.AsFloat()
	assert.Equal(t, float32(2), f)

	require.NoError(t, cmd2.Undo(g))
	assert.False(t, sink.in[0].Connected())
}

func TestDisconnectCommand_RestoresConnection(t *testing.T) {
	g := core.New()
	src := NewTestSourceOp(7)
	sink := NewTestOp(0)
	srcID, sinkID := g.Add(src), g.Add(sink)
	require.NoError(t, command.NewConnectCommand(srcID, 0, sinkID, 0).Execute(g))

	dc := command.NewDisconnectCommand(sinkID, 0)
	require.NoError(t, dc.Execute(g))
	assert.False(t, sink.in[0].Connected())

	require.NoError(t, dc.Undo(g))
	assert.True(t, sink.in[0].Connected())
}

func TestSetInputDefaultCommand_MergeCollapsesDragIntoOneStep(t *testing.T) {
	g := core.New()
	op := NewTestOp(0)
	id := g.Add(op)

	stack := command.NewUndoRedoStack()
	require.NoError(t, stack.Execute(g, command.NewSetInputDefaultCommand(id, 0, core.Float(1))))
	require.NoError(t, stack.Execute(g, command.NewSetInputDefaultCommand(id, 0, core.Float(2))))
	require.NoError(t, stack.Execute(g, command.NewSetInputDefaultCommand(id, 0, core.Float(3))))

	assert.Equal(t, 1, stack.Len(), "three consecutive edits of the same input collapse to one entry")
	assert.Equal(t, core.Float(3), op.in[0].Default)

	require.NoError(t, stack.Undo(g))
	assert.Equal(t, core.Float(0), op.in[0].Default, "undo restores the value before the FIRST merged edit")
}

func TestUndoRedoStack_FullCycle(t *testing.T) {
	g := core.New()
	stack := command.NewUndoRedoStack()

	src := NewTestSourceOp(5)
	addCmd := command.NewAddNodeCommand(src)
	require.NoError(t, stack.Execute(g, addCmd))
	assert.True(t, stack.IsDirty())

	sink := NewTestOp(0)
	addSink := command.NewAddNodeCommand(sink)
	require.NoError(t, stack.Execute(g, addSink))

	connCmd := command.NewConnectCommand(src.ID(), 0, sink.ID(), 0)
	require.NoError(t, stack.Execute(g, connCmd))

	ctx := core.NewEvalContext(g.Epoch())
	v, err := g.Evaluate(sink.ID(), 0, ctx)
	require.NoError(t, err)
	f, _ := v.AsFloat()
	assert.Equal(t, float32(5), f)

	require.True(t, stack.CanUndo())
	require.NoError(t, stack.Undo(g)) // undo connect
	assert.False(t, sink.in[0].Connected())

	require.NoError(t, stack.Redo(g)) // redo connect
	assert.True(t, sink.in[0].Connected())

	require.NoError(t, stack.Undo(g)) // undo connect
	require.NoError(t, stack.Undo(g)) // undo add sink
	require.NoError(t, stack.Undo(g)) // undo add src
	assert.False(t, stack.CanUndo())
	assert.Equal(t, 0, g.Stats().NodeCount)

	stack.MarkSaved()
	assert.False(t, stack.IsDirty())
}

func TestMacroCommand_UnwindsOnPartialFailure(t *testing.T) {
	g := core.New()
	ok1 := command.NewAddNodeCommand(NewTestSourceOp(1))
	ok2 := command.NewAddNodeCommand(NewTestSourceOp(2))
	// Connect to a nonexistent target to force a failure mid-macro.
	failing := command.NewConnectCommand(ok1.NodeID(), 0, core.NewNodeID(), 0)

	macro := command.NewMacroCommand("Batch", ok1, ok2, failing)
	err := macro.Execute(g)
	require.Error(t, err)
	assert.Equal(t, 0, g.Stats().NodeCount, "failed macro must unwind everything it already applied")
}
