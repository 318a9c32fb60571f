// File: add_node.go
// Role: AddNodeCommand, grounded on commands/add_node.rs.

package command

import "github.com/katalvlaran/fluxgraph/core"

// AddNodeCommand adds op to a graph, under whatever NodeID op.ID()
// already carries.
type AddNodeCommand struct {
	BaseCommand
	op core.Operator
}

// NewAddNodeCommand wraps op for insertion.
func NewAddNodeCommand(op core.Operator) *AddNodeCommand {
	return &AddNodeCommand{op: op}
}

// NodeID returns the ID the wrapped operator will be added under.
func (c *AddNodeCommand) NodeID() core.NodeID { return c.op.ID() }

func (c *AddNodeCommand) Name() string { return "Add Node" }

func (c *AddNodeCommand) Execute(g *core.Graph) error {
	g.Add(c.op)
	return nil
}

func (c *AddNodeCommand) Undo(g *core.Graph) error {
	g.Remove(c.op.ID())
	return nil
}
