package editor

import (
	"testing"

	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/keymap"
	"github.com/coreseekdev/texere-core/pkg/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreseekdev/texere-core/internal/textdiff"
)

// These exercise the engine's cross-cutting invariants and a handful of
// canonical command walkthroughs end to end, the way a single keystroke
// trace would read off a terminal session.

func TestInvariantIdempotentYank(t *testing.T) {
	e := newTestEditor(t, "alpha beta")
	e.HandleKey(keymap.Char('w')) // select "alpha"

	e.HandleKey(keymap.Char('y'))
	first := e.Selections.Primary.Yanked.String()

	e.HandleKey(keymap.Char('y'))
	second := e.Selections.Primary.Yanked.String()

	textdiff.Assert(t, first, second, "yanking an unchanged selection twice")
	assert.Equal(t, "alpha", first)
}

func TestInvariantUndoRedoSymmetry(t *testing.T) {
	e := newTestEditor(t, "hello world")
	original := e.GetText()

	e.HandleKey(keymap.Char('w')) // select "hello"
	e.HandleKey(keymap.Char('d')) // delete it, caret left at 0
	e.HandleKey(keymap.Char('f')) // step forward onto "world"
	require.Equal(t, []string{"world"}, e.GetSelectedTexts())
	e.HandleKey(keymap.Char('i'))
	e.HandleKey(keymap.Char('!'))
	e.HandleKey(keymap.Special(keymap.KeyEsc, keymap.ModNone))
	afterEdits := e.GetText()
	require.NotEqual(t, original, afterEdits)

	e.HandleKey(keymap.CharWithMods('z', keymap.ModCtrl))
	e.HandleKey(keymap.CharWithMods('z', keymap.ModCtrl))
	textdiff.Assert(t, original, e.GetText(), "undoing every command")

	e.HandleKey(keymap.CharWithMods('y', keymap.ModCtrl))
	e.HandleKey(keymap.CharWithMods('y', keymap.ModCtrl))
	textdiff.Assert(t, afterEdits, e.GetText(), "redoing every undone command")
}

func TestInvariantSelectionOrderingAndBoundsHold(t *testing.T) {
	e := newTestEditor(t, "alpha beta gamma delta")
	e.HandleKey(keymap.Char('w')) // primary: "alpha"
	e.HandleKey(keymap.Char('a')) // secondary caret right after "alpha"
	e.HandleKey(keymap.Char('f')) // step every cursor forward one word

	length := e.Rope.Len()
	prevStart := -1
	for _, s := range e.Selections.All() {
		from, to := int(s.Range.From()), int(s.Range.To())
		assert.GreaterOrEqual(t, from, 0)
		assert.LessOrEqual(t, to, length)
		assert.LessOrEqual(t, from, to)
	}
	for _, s := range e.Selections.Secondary {
		from := int(s.Range.From())
		assert.GreaterOrEqual(t, from, prevStart, "secondaries must stay in nondecreasing range-start order")
		prevStart = from
	}
}

func TestInvariantRopeTreeCoherence(t *testing.T) {
	e := newTestEditor(t, "alpha(beta, gamma)")
	root := e.Tree.RootNode()
	assert.Equal(t, e.Rope.Len(), int(root.Range().End-root.Range().Start))

	e.HandleKey(keymap.Char('i'))
	e.HandleKey(keymap.Char('X'))
	e.HandleKey(keymap.Special(keymap.KeyEsc, keymap.ModNone))

	root = e.Tree.RootNode()
	assert.Equal(t, e.Rope.Len(), int(root.Range().End-root.Range().Start))
}

func TestInvariantScrollOffsetStaysSane(t *testing.T) {
	lines := 40
	text := ""
	for i := 0; i < lines; i++ {
		if i > 0 {
			text += "\n"
		}
		text += "line"
	}
	e := newTestEditor(t, text)
	e.SetDimension(80, 10)

	pos, err := e.Rope.PositionToChar(coord.Position{Row: 35, Column: 0})
	require.NoError(t, err)
	e.Selections = selection.NewSelectionSet(
		selection.Selection{Range: selection.Point(pos)}, selection.Custom())
	e.recalcScroll()

	offset := e.ScrollOffset()
	assert.GreaterOrEqual(t, offset, 0)
	assert.LessOrEqual(t, offset, lines-1)
	row, _ := e.GetCursorPoint()
	assert.GreaterOrEqual(t, row, offset)
	assert.LessOrEqual(t, row, offset+e.Height-2)
}

// TestParentNodeAscendsAllTheWayBackToTheRootCall walks down a chain of
// nested calls one token at a time, then ascends with ParentNode enough
// times to land back on the whole expression, matching spec's
// descend-then-ascend-to-root scenario.
func TestParentNodeAscendsAllTheWayBackToTheRootCall(t *testing.T) {
	e := newTestEditor(t, "f(g(h(x)))")
	e.HandleKey(keymap.Char('t')) // Token mode, snaps to "f"
	require.Equal(t, []string{"f"}, e.GetSelectedTexts())

	e.step(selection.DirForward) // "g"
	e.step(selection.DirForward) // "h"
	e.step(selection.DirForward) // "x"
	require.Equal(t, []string{"x"}, e.GetSelectedTexts())

	// Token and ParentNode are "similar" node modes (spec.md §4.1), so
	// switching between them preserves the current selection rather than
	// re-snapping it — the ascent only happens on an explicit step.
	e.switchMode(selection.ParentNode())
	require.Equal(t, []string{"x"}, e.GetSelectedTexts())

	e.step(selection.DirForward)
	require.Equal(t, []string{"h(x)"}, e.GetSelectedTexts())
	e.step(selection.DirForward)
	require.Equal(t, []string{"g(h(x))"}, e.GetSelectedTexts())
	e.step(selection.DirForward)
	require.Equal(t, []string{"f(g(h(x)))"}, e.GetSelectedTexts())
}

// TestTokenModeYankThenPasteOverwritesNextToken walks token mode's
// yank/paste round trip: select a leaf, yank it, step to the next leaf,
// and paste overwrites that leaf with the yanked text, per spec's token
// yank/paste command sequence.
func TestTokenModeYankThenPasteOverwritesNextToken(t *testing.T) {
	e := newTestEditor(t, "alpha(beta, gamma)")
	e.HandleKey(keymap.Char('t')) // Token mode, snaps to "alpha"
	require.Equal(t, []string{"alpha"}, e.GetSelectedTexts())

	e.HandleKey(keymap.Char('y')) // yank "alpha"
	e.HandleKey(keymap.Char('f')) // step to "beta"
	require.Equal(t, []string{"beta"}, e.GetSelectedTexts())

	require.NoError(t, e.Clipboard.Set("alpha"))
	e.HandleKey(keymap.CharWithMods('v', keymap.ModCtrl)) // paste over "beta"

	textdiff.Assert(t, "alpha(alpha, gamma)", e.GetText(), "pasting a yanked leaf over the next token")
}

// TestLineModeExchangeSwapsAdjacentFullLines walks line mode forward
// twice, then an exchange forward swap, matching spec's full-line
// exchange scenario.
func TestLineModeExchangeSwapsAdjacentFullLines(t *testing.T) {
	text := "fn first() {\n    let x = 1;\n    let y = 2;\n}\n"
	e := newTestEditor(t, text)
	e.switchMode(selection.Line(true))
	require.Equal(t, []string{"fn first() {\n"}, e.GetSelectedTexts())

	e.step(selection.DirForward)
	e.step(selection.DirForward)
	require.Equal(t, []string{"    let y = 2;\n"}, e.GetSelectedTexts())

	e.exchange(selection.DirForward)
	textdiff.Assert(t,
		"fn first() {\n    let x = 1;\n}\n    let y = 2;\n",
		e.GetText(),
		"exchanging the selected line forward with the line after it")
}
