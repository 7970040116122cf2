package jump

import (
	"testing"

	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLabelsSequentially(t *testing.T) {
	ctx := selection.Context{Rope: rope.New("one two three four five")}
	start := selection.Selection{Range: selection.Point(0)}

	jumps, err := Generate(selection.Word(), start, selection.DirForward, selection.CursorEnd, ctx)
	require.NoError(t, err)
	require.NotEmpty(t, jumps)

	assert.Equal(t, 'a', jumps[0].Label)
	if len(jumps) > 1 {
		assert.Equal(t, 'b', jumps[1].Label)
	}
	seen := map[string]bool{}
	for _, j := range jumps {
		assert.False(t, seen[j.ID.String()], "jump IDs must be unique")
		seen[j.ID.String()] = true
	}
}

func TestGenerateSkipsReservedJLabel(t *testing.T) {
	for _, c := range Alphabet {
		assert.NotEqual(t, 'j', c)
		assert.NotEqual(t, 'J', c)
	}
	assert.Len(t, Alphabet, 62)
}

func TestGenerateNoCandidatesAtEdge(t *testing.T) {
	ctx := selection.Context{Rope: rope.New("x")}
	start := selection.Selection{Range: selection.Point(1)}
	_, err := Generate(selection.Character(), start, selection.DirForward, selection.CursorEnd, ctx)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestByLabel(t *testing.T) {
	ctx := selection.Context{Rope: rope.New("one two three")}
	start := selection.Selection{Range: selection.Point(0)}
	jumps, err := Generate(selection.Word(), start, selection.DirForward, selection.CursorEnd, ctx)
	require.NoError(t, err)

	found, ok := ByLabel(jumps, jumps[0].Label)
	require.True(t, ok)
	assert.Equal(t, jumps[0].Selection.Range, found.Selection.Range)

	_, ok = ByLabel(jumps, 'j')
	assert.False(t, ok)
}
