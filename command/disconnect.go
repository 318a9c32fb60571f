// File: disconnect.go
// Role: DisconnectCommand, grounded on commands/disconnect.rs; extended
// to multi-inputs (disconnecting every connection on that input) since
// this port's core.Graph supports multi-input ports that the original
// single-connection model did not need to account for.

package command

import "github.com/katalvlaran/fluxgraph/core"

// DisconnectCommand clears every connection on dstNode's dstInput,
// remembering them (in order) for Undo to restore.
type DisconnectCommand struct {
	BaseCommand
	dstNode  core.NodeID
	dstInput int

	previous []core.Connection
	executed bool
}

// NewDisconnectCommand targets dstNode's dstInput.
func NewDisconnectCommand(dstNode core.NodeID, dstInput int) *DisconnectCommand {
	return &DisconnectCommand{dstNode: dstNode, dstInput: dstInput}
}

// PreviousConnections returns what was connected before Execute ran.
func (c *DisconnectCommand) PreviousConnections() []core.Connection {
	return append([]core.Connection(nil), c.previous...)
}

func (c *DisconnectCommand) Name() string { return "Disconnect" }

func (c *DisconnectCommand) Execute(g *core.Graph) error {
	n, ok := g.Get(c.dstNode)
	if !ok {
		c.executed = false
		return core.NewError(core.KindUnknownNode, c.dstNode, "target node not found")
	}
	ins := n.Operator().Inputs()
	if c.dstInput < 0 || c.dstInput >= len(ins) {
		c.executed = false
		return core.NewError(core.KindUnknownPort, c.dstNode, "input index %d out of range", c.dstInput)
	}
	in := ins[c.dstInput]
	if in.IsMulti {
		c.previous = append([]core.Connection(nil), in.Connections...)
	} else if in.Connection != nil {
		c.previous = []core.Connection{*in.Connection}
	} else {
		c.previous = nil
	}
	if len(c.previous) == 0 {
		c.executed = false
		return nil
	}
	if err := g.Disconnect(c.dstNode, c.dstInput); err != nil {
		c.executed = false
		return err
	}
	c.executed = true
	return nil
}

func (c *DisconnectCommand) Undo(g *core.Graph) error {
	if !c.executed {
		return nil
	}
	for _, conn := range c.previous {
		if _, err := g.Connect(conn.Source, conn.OutputIndex, c.dstNode, c.dstInput); err != nil {
			return err
		}
	}
	c.executed = false
	return nil
}
