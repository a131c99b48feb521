package edit

import (
	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/observability"
)

// DefaultLimit is the number of edits a History keeps when no limit is given.
const DefaultLimit = 100

// History is a bounded undo/redo stack. It is not safe for concurrent use.
type History struct {
	limit int
	undo  []Edit
	redo  []Edit
}

// NewHistory returns an empty history keeping at most limit edits.
// A non-positive limit selects DefaultLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Limit returns the maximum number of undoable edits.
func (h *History) Limit() int { return h.limit }

// Record pushes an already applied edit and clears the redo stack.
func (h *History) Record(e Edit) {
	if e == nil {
		return
	}
	h.undo = append(h.undo, e)
	if over := len(h.undo) - h.limit; over > 0 {
		clear(h.undo[:over])
		h.undo = h.undo[over:]
	}
	h.redo = nil
	observability.History().OnRecord(e.Description(), len(h.undo))
}

// Undo reverts the most recent edit and makes it redoable.
// Returns INVALID_STATE when there is nothing to undo. An edit that fails is
// discarded so older entries stay reachable, and its error is returned.
func (h *History) Undo() error {
	if !h.CanUndo() {
		return gerrors.New(gerrors.ErrCodeInvalidState, "nothing to undo")
	}
	e := pop(&h.undo)
	err := e.Undo()
	observability.History().OnUndo(e.Description(), err)
	if err != nil {
		return err
	}
	h.redo = append(h.redo, e)
	return nil
}

// Redo reapplies the most recently undone edit.
// Returns INVALID_STATE when there is nothing to redo. A failing edit is
// discarded like in Undo.
func (h *History) Redo() error {
	if !h.CanRedo() {
		return gerrors.New(gerrors.ErrCodeInvalidState, "nothing to redo")
	}
	e := pop(&h.redo)
	err := e.Redo()
	observability.History().OnRedo(e.Description(), err)
	if err != nil {
		return err
	}
	h.undo = append(h.undo, e)
	return nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 && h.undo[len(h.undo)-1].CanUndo() }
func (h *History) CanRedo() bool { return len(h.redo) > 0 && h.redo[len(h.redo)-1].CanRedo() }

// UndoDescription describes the edit Undo would revert, or "" if none.
func (h *History) UndoDescription() string { return peekDescription(h.undo) }

// RedoDescription describes the edit Redo would reapply, or "" if none.
func (h *History) RedoDescription() string { return peekDescription(h.redo) }

// Len returns the number of undoable edits.
func (h *History) Len() int { return len(h.undo) }

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

func pop(stack *[]Edit) Edit {
	s := *stack
	e := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return e
}

func peekDescription(stack []Edit) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].Description()
}
