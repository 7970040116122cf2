package history

import (
	"context"
	"testing"

	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/edit"
	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTx(t *testing.T, start coord.CharIndex, old, new string) *edit.EditTransaction {
	t.Helper()
	pre := selection.NewSelectionSet(selection.Selection{Range: selection.Point(0)}, selection.Character())
	tx, err := edit.NewTransactionBuilder(pre).Replace(0, start, old, new).Build()
	require.NoError(t, err)
	return tx
}

func TestPushThenUndoRedoRoundtrip(t *testing.T) {
	r := rope.New("hello world")
	tx := buildTx(t, 0, "hello", "goodbye")

	next, _, err := edit.Apply(context.Background(), r, nil, nil, tx)
	require.NoError(t, err)
	assert.Equal(t, "goodbye world", next.String())

	h := New(0)
	h.Push(tx)
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	undoTx, err := h.PerformUndo()
	require.NoError(t, err)
	back, _, err := edit.Apply(context.Background(), next, nil, nil, undoTx)
	require.NoError(t, err)
	assert.Equal(t, r.String(), back.String())
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())

	redoTx, err := h.PerformRedo()
	require.NoError(t, err)
	forward, _, err := edit.Apply(context.Background(), back, nil, nil, redoTx)
	require.NoError(t, err)
	assert.Equal(t, next.String(), forward.String())
}

func TestUndoEmptyReturnsErr(t *testing.T) {
	h := New(0)
	_, err := h.PerformUndo()
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestRedoEmptyReturnsErr(t *testing.T) {
	h := New(0)
	_, err := h.PerformRedo()
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestPushClearsRedoStack(t *testing.T) {
	h := New(0)
	h.Push(buildTx(t, 0, "a", "b"))
	_, err := h.PerformUndo()
	require.NoError(t, err)
	require.True(t, h.CanRedo())

	h.Push(buildTx(t, 0, "x", "y"))
	assert.False(t, h.CanRedo())
}

func TestMaxItemsBoundsStack(t *testing.T) {
	h := New(2)
	h.Push(buildTx(t, 0, "a", "1"))
	h.Push(buildTx(t, 0, "a", "2"))
	h.Push(buildTx(t, 0, "a", "3"))
	assert.Len(t, h.Undo, 2)
}
