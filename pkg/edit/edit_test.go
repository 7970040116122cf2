package edit

import (
	"context"
	"testing"

	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySingleEdit(t *testing.T) {
	r := rope.New("hello world")
	pre := selection.NewSelectionSet(selection.Selection{Range: selection.Point(0)}, selection.Character())

	tx, err := NewTransactionBuilder(pre).
		Replace(0, 0, "hello", "goodbye").
		Build()
	require.NoError(t, err)

	next, _, err := Apply(context.Background(), r, nil, nil, tx)
	require.NoError(t, err)
	assert.Equal(t, "goodbye world", next.String())
}

func TestApplySkipsGroupWithStaleOldButDoesNotError(t *testing.T) {
	r := rope.New("hello world")
	pre := selection.NewSelectionSet(selection.Selection{Range: selection.Point(0)}, selection.Character())
	tx, err := NewTransactionBuilder(pre).
		Replace(0, 0, "WRONG", "x").
		Build()
	require.NoError(t, err)

	next, _, err := Apply(context.Background(), r, nil, nil, tx)
	require.NoError(t, err)
	assert.Equal(t, "hello world", next.String())
}

func TestApplySkipsOnlyTheOffendingGroup(t *testing.T) {
	r := rope.New("aa bb")
	pre := selection.NewSelectionSet(selection.Selection{Range: selection.Point(0)}, selection.Character())

	builder := NewTransactionBuilder(pre).Group()
	builder.Replace(0, 0, "WRONG", "x") // stale: buffer actually holds "aa" here
	builder = builder.Group()
	builder.Replace(0, 3, "bb", "Y")
	tx, err := builder.Build()
	require.NoError(t, err)

	next, _, err := Apply(context.Background(), r, nil, nil, tx)
	require.NoError(t, err)
	assert.Equal(t, "aa Y", next.String())
}

func TestInvertRoundtrip(t *testing.T) {
	r := rope.New("abcdef")
	pre := selection.NewSelectionSet(selection.Selection{Range: selection.Point(0)}, selection.Character())
	tx, err := NewTransactionBuilder(pre).Replace(0, 2, "c", "XYZ").Build()
	require.NoError(t, err)

	mid, _, err := Apply(context.Background(), r, nil, nil, tx)
	require.NoError(t, err)
	assert.Equal(t, "abXYZdef", mid.String())

	back, _, err := Apply(context.Background(), mid, nil, nil, tx.Invert())
	require.NoError(t, err)
	assert.Equal(t, r.String(), back.String())
}

func TestOverlappingEditsRejected(t *testing.T) {
	pre := selection.NewSelectionSet(selection.Selection{Range: selection.Point(0)}, selection.Character())
	_, err := FromActionGroups(pre, []ActionGroup{
		{
			EditAction(0, Edit{Start: 0, Old: rope.New("ab"), New: rope.New("x")}),
			EditAction(1, Edit{Start: 1, Old: rope.New("bc"), New: rope.New("y")}),
		},
	})
	assert.ErrorIs(t, err, ErrOverlap)
}

func TestMergeShiftsCoordinates(t *testing.T) {
	pre := selection.NewSelectionSet(selection.Selection{Range: selection.Point(0)}, selection.Character())
	tx1, err := NewTransactionBuilder(pre).Replace(0, 0, "a", "aa").Build() // +1 at start 0
	require.NoError(t, err)
	tx2, err := NewTransactionBuilder(pre).Replace(0, 1, "b", "bb").Build() // was at 1 pre-shift
	require.NoError(t, err)

	merged := Merge(pre, []*EditTransaction{tx1, tx2})
	edits := merged.Edits()
	require.Len(t, edits, 2)
	assert.Equal(t, 0, int(edits[0].Start))
	assert.Equal(t, 2, int(edits[1].Start)) // shifted by +1
}

func TestApplyShiftsSimultaneousEditsInOneGroup(t *testing.T) {
	r := rope.New("aa bb cc")
	pre := selection.NewSelectionSet(selection.Selection{Range: selection.Point(0)}, selection.Character())

	tx, err := NewTransactionBuilder(pre).
		Replace(0, 0, "aa", "X").
		Replace(1, 6, "cc", "Y").
		Build()
	require.NoError(t, err)

	next, _, err := Apply(context.Background(), r, nil, nil, tx)
	require.NoError(t, err)
	assert.Equal(t, "X bb Y", next.String())
}

func TestSelectionsPrimaryFirst(t *testing.T) {
	pre := selection.NewSelectionSet(selection.Selection{Range: selection.Point(0)}, selection.Character())
	tx, err := NewTransactionBuilder(pre).
		Select(1, selection.Selection{Range: selection.Point(5)}).
		Select(0, selection.Selection{Range: selection.Point(1)}).
		Build()
	require.NoError(t, err)

	sels := tx.Selections()
	require.Len(t, sels, 2)
	assert.Equal(t, selection.Point(1), sels[0].Range)
	assert.Equal(t, selection.Point(5), sels[1].Range)
}
