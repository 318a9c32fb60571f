// File: remove_node.go
// Role: RemoveNodeCommand, grounded on commands/remove_node.rs. As in
// the original, this does NOT restore connections from the removed
// node's outputs into other nodes' inputs (core.Graph.Remove clears
// those); the removed node's own input connections live on its ports
// and come back with it. Pair it with DisconnectCommand entries in a
// MacroCommand when the downstream edges matter.

package command

import "github.com/katalvlaran/fluxgraph/core"

// RemoveNodeCommand removes the node nodeID; undo re-adds whatever
// operator execute actually removed.
type RemoveNodeCommand struct {
	BaseCommand
	nodeID   core.NodeID
	operator core.Operator
}

// NewRemoveNodeCommand targets nodeID for removal.
func NewRemoveNodeCommand(nodeID core.NodeID) *RemoveNodeCommand {
	return &RemoveNodeCommand{nodeID: nodeID}
}

func (c *RemoveNodeCommand) Name() string { return "Remove Node" }

func (c *RemoveNodeCommand) Execute(g *core.Graph) error {
	if op, ok := g.Remove(c.nodeID); ok {
		c.operator = op
	}
	return nil
}

func (c *RemoveNodeCommand) Undo(g *core.Graph) error {
	if c.operator != nil {
		g.Add(c.operator)
	}
	return nil
}
