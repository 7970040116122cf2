// Package history implements the editor's undo/redo log: two stacks of
// edit.EditTransaction, grounded on the teacher's ot.UndoManager push/pop
// discipline but trimmed to this engine's single-user, non-collaborative
// model (no OT transform-against-remote-operation step).
package history

import (
	"errors"

	"github.com/coreseekdev/texere-core/pkg/edit"
)

// ErrEmptyHistory is returned by PerformUndo/PerformRedo when the respective stack is
// empty; callers treat this as a no-op per the EmptyHistory error kind.
var ErrEmptyHistory = errors.New("history: stack is empty")

// DefaultMaxItems bounds each stack's depth, as the teacher's UndoManager
// defaults to when constructed with maxItems <= 0.
const DefaultMaxItems = 50

// History holds the undo and redo stacks. The zero value is not usable;
// construct with New.
type History struct {
	maxItems int
	Undo     []*edit.EditTransaction
	Redo     []*edit.EditTransaction
}

// New creates a History bounding each stack to maxItems entries (<=0 uses
// DefaultMaxItems).
func New(maxItems int) *History {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	return &History{maxItems: maxItems}
}

// Push records tx as the most recent user edit: its inverse is stored on
// the undo stack, ready to replay, and the redo stack is cleared since a
// fresh edit invalidates any previously undone future.
func (h *History) Push(tx *edit.EditTransaction) {
	h.Undo = append(h.Undo, tx.Invert())
	if len(h.Undo) > h.maxItems {
		h.Undo = h.Undo[len(h.Undo)-h.maxItems:]
	}
	h.Redo = h.Redo[:0]
}

// CanUndo reports whether Undo has a transaction to replay.
func (h *History) CanUndo() bool { return len(h.Undo) > 0 }

// CanRedo reports whether Redo has a transaction to replay.
func (h *History) CanRedo() bool { return len(h.Redo) > 0 }

// PerformUndo pops the most recent inverse transaction, pushes its own
// inverse (the transaction it undoes) onto the redo stack, and returns it
// for the caller to apply. Returns ErrEmptyHistory if the undo stack is
// empty.
func (h *History) PerformUndo() (*edit.EditTransaction, error) {
	return h.pop(&h.Undo, &h.Redo)
}

// PerformRedo pops the most recently undone transaction, pushes its
// inverse back onto the undo stack, and returns it for the caller to
// apply. Returns ErrEmptyHistory if the redo stack is empty.
func (h *History) PerformRedo() (*edit.EditTransaction, error) {
	return h.pop(&h.Redo, &h.Undo)
}

func (h *History) pop(from, to *[]*edit.EditTransaction) (*edit.EditTransaction, error) {
	n := len(*from)
	if n == 0 {
		return nil, ErrEmptyHistory
	}
	tx := (*from)[n-1]
	*from = (*from)[:n-1]
	*to = append(*to, tx.Invert())
	if len(*to) > h.maxItems {
		*to = (*to)[len(*to)-h.maxItems:]
	}
	return tx, nil
}

// Clear empties both stacks, as when loading a new buffer into the same
// editor instance.
func (h *History) Clear() {
	h.Undo = h.Undo[:0]
	h.Redo = h.Redo[:0]
}
