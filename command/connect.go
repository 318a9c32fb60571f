// File: connect.go
// Role: ConnectCommand, grounded on commands/connect.rs.

package command

import "github.com/katalvlaran/fluxgraph/core"

// ConnectCommand wires srcNode/srcOutput into dstNode/dstInput,
// remembering any conversion node auto-inserted by core.Graph.Connect so
// Undo removes it along with the edge. It never replaces an existing
// connection: core.Graph.Connect refuses an already-connected single
// input with MultiplicityViolation, and Execute returns that error.
type ConnectCommand struct {
	BaseCommand
	srcNode   core.NodeID
	srcOutput int
	dstNode   core.NodeID
	dstInput  int

	previous   *core.Connection
	conversion *core.NodeID
	executed   bool
}

// NewConnectCommand targets the given endpoints.
func NewConnectCommand(srcNode core.NodeID, srcOutput int, dstNode core.NodeID, dstInput int) *ConnectCommand {
	return &ConnectCommand{srcNode: srcNode, srcOutput: srcOutput, dstNode: dstNode, dstInput: dstInput}
}

// ConversionNode returns the auto-inserted conversion node's ID, if any,
// after Execute has run.
func (c *ConnectCommand) ConversionNode() (core.NodeID, bool) {
	if c.conversion == nil {
		return core.NilNodeID, false
	}
	return *c.conversion, true
}

func (c *ConnectCommand) Name() string { return "Connect" }

func (c *ConnectCommand) Execute(g *core.Graph) error {
	if n, ok := g.Get(c.dstNode); ok {
		ins := n.Operator().Inputs()
		if c.dstInput >= 0 && c.dstInput < len(ins) && !ins[c.dstInput].IsMulti {
			c.previous = ins[c.dstInput].Connection
		}
	}

	conv, err := g.Connect(c.srcNode, c.srcOutput, c.dstNode, c.dstInput)
	if err != nil {
		c.executed = false
		return err
	}
	c.conversion = conv
	c.executed = true
	return nil
}

func (c *ConnectCommand) Undo(g *core.Graph) error {
	if !c.executed {
		return nil
	}
	if c.conversion != nil {
		g.Remove(*c.conversion)
	}
	_ = g.Disconnect(c.dstNode, c.dstInput)
	if c.previous != nil {
		_, _ = g.Connect(c.previous.Source, c.previous.OutputIndex, c.dstNode, c.dstInput)
	}
	c.executed = false
	return nil
}
