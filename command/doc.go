// Package command implements the reversible Command pattern over a
// core.Graph (spec component J): every mutation — adding/removing a
// node, connecting/disconnecting a port, editing an input's default —
// is wrapped in a Command that knows how to both execute and undo
// itself, and an UndoRedoStack sequences them into a linear history.
//
// Grounded on original_source/flux-graph/src/commands (mod.rs for the
// trait shape, add_node.rs/remove_node.rs/connect.rs/disconnect.rs/
// set_default.rs for the per-command undo state each one stores).
// Per remove_node.rs's own documented note, RemoveNodeCommand does not
// restore connections from the removed node into other nodes' inputs
// — callers who need that use a MacroCommand pairing DisconnectCommand
// (to capture the edges) with RemoveNodeCommand.
package command
