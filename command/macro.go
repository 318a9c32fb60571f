// File: macro.go
// Role: MacroCommand, grouping several commands into one atomic undo
// step (spec.md names this; mod.rs's own doc lists it among the
// available commands though the Rust source for it wasn't retrieved —
// this file follows the same forward-execute/reverse-undo shape as
// every other command here).

package command

import "github.com/katalvlaran/fluxgraph/core"

// MacroCommand executes a sequence of commands as one undo step: Execute
// runs them in order and unwinds (undoes whatever already succeeded) if
// any command fails partway through; Undo always reverses in the
// opposite order.
type MacroCommand struct {
	BaseCommand
	label    string
	cmds     []Command
	executed int // number of cmds successfully executed, for unwind-on-failure
}

// NewMacroCommand groups cmds under label (shown in an undo menu in
// place of each individual step).
func NewMacroCommand(label string, cmds ...Command) *MacroCommand {
	return &MacroCommand{label: label, cmds: cmds}
}

func (m *MacroCommand) Name() string { return m.label }

func (m *MacroCommand) Execute(g *core.Graph) error {
	for i, cmd := range m.cmds {
		if err := cmd.Execute(g); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = m.cmds[j].Undo(g)
			}
			m.executed = 0
			return err
		}
		m.executed = i + 1
	}
	return nil
}

func (m *MacroCommand) Undo(g *core.Graph) error {
	for i := m.executed - 1; i >= 0; i-- {
		if err := m.cmds[i].Undo(g); err != nil {
			return err
		}
	}
	m.executed = 0
	return nil
}
