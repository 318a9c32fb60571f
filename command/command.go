// File: command.go
// Role: The Command contract and UndoRedoStack (spec component J).

package command

import "github.com/katalvlaran/fluxgraph/core"

// Command is a reversible graph mutation. Execute may be called more
// than once across an undo/redo cycle, so implementations must refresh
// whatever state Undo needs every time Execute runs.
type Command interface {
	Name() string
	Execute(g *core.Graph) error
	Undo(g *core.Graph) error

	// CanMergeWith reports whether other, the command about to be pushed,
	// should be folded into this one instead of becoming a separate undo
	// step (e.g. consecutive edits of the same slider).
	CanMergeWith(other Command) bool

	// MergeWith folds other into this command; only called when
	// CanMergeWith(other) is true. The receiver is mutated in place to
	// represent both commands as one undo step.
	MergeWith(other Command)
}

// BaseCommand is a no-op embeddable Command fragment: never mergeable.
// Embed it in a concrete command to avoid repeating the two merge
// methods when merging does not apply.
type BaseCommand struct{}

func (BaseCommand) CanMergeWith(Command) bool { return false }
func (BaseCommand) MergeWith(Command)         {}

// UndoRedoStack sequences executed commands into a linear history with
// a single cursor: commands before the cursor are undoable, commands
// from the cursor onward (if any remain after a later truncating push)
// are redoable.
type UndoRedoStack struct {
	history    []Command
	cursor     int
	savedAt    int
	savedValid bool
}

// NewUndoRedoStack returns an empty history.
func NewUndoRedoStack() *UndoRedoStack {
	return &UndoRedoStack{savedValid: true, savedAt: 0}
}

// Execute runs cmd against g and pushes it onto the history. If the most
// recently executed command reports CanMergeWith(cmd), cmd is folded
// into it instead of becoming a new entry. Pushing after an Undo
// discards the redo tail, matching the conventional editor undo model.
func (s *UndoRedoStack) Execute(g *core.Graph, cmd Command) error {
	if err := cmd.Execute(g); err != nil {
		return err
	}
	if s.cursor > 0 && s.history[s.cursor-1].CanMergeWith(cmd) {
		s.history[s.cursor-1].MergeWith(cmd)
		s.history = s.history[:s.cursor]
		return nil
	}
	s.history = append(s.history[:s.cursor], cmd)
	s.cursor++
	return nil
}

// Undo reverses the most recently executed command, if any.
func (s *UndoRedoStack) Undo(g *core.Graph) error {
	if !s.CanUndo() {
		return core.NewError(core.KindCommandFailure, core.NilNodeID, "nothing to undo")
	}
	s.cursor--
	return s.history[s.cursor].Undo(g)
}

// Redo re-executes the command most recently undone, if any.
func (s *UndoRedoStack) Redo(g *core.Graph) error {
	if !s.CanRedo() {
		return core.NewError(core.KindCommandFailure, core.NilNodeID, "nothing to redo")
	}
	cmd := s.history[s.cursor]
	if err := cmd.Execute(g); err != nil {
		return err
	}
	s.cursor++
	return nil
}

// CanUndo reports whether Undo would have an effect.
func (s *UndoRedoStack) CanUndo() bool { return s.cursor > 0 }

// CanRedo reports whether Redo would have an effect.
func (s *UndoRedoStack) CanRedo() bool { return s.cursor < len(s.history) }

// Clear discards the entire history and resets the saved-state marker
// to the (now empty) present.
func (s *UndoRedoStack) Clear() {
	s.history = nil
	s.cursor = 0
	s.savedValid = true
	s.savedAt = 0
}

// MarkSaved records the current cursor position as "matches the file on
// disk", for IsDirty to compare against.
func (s *UndoRedoStack) MarkSaved() {
	s.savedValid = true
	s.savedAt = s.cursor
}

// IsDirty reports whether the history has moved away from the
// last-marked saved position.
func (s *UndoRedoStack) IsDirty() bool {
	return !s.savedValid || s.cursor != s.savedAt
}

// Len reports the total number of entries currently in the history
// (undoable plus redoable).
func (s *UndoRedoStack) Len() int { return len(s.history) }
