package selection

import (
	"errors"

	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/syntax"
)

// ErrRegexCompilation is returned by the Match family when the mode's
// pattern fails to compile; callers degrade to Current-only per spec §7.
var ErrRegexCompilation = errors.New("selection: regex failed to compile")

// Context bundles the collaborators step() needs: the current rope and
// syntax tree snapshot, the editor-owned bookmark arena, and — when
// PriorOK — the primary selection active immediately before this one
// (the editor's most recent SelHistory entry), which stepParent's
// Backward case consults to prefer redescending into the child a prior
// ascent came from.
type Context struct {
	Rope      *rope.Rope
	Tree      syntax.Tree
	Bookmarks Bookmarks

	PriorPrimary Range
	PriorOK      bool
}

// Step is the SelectionMode engine's pure contract: given a current
// Selection and a direction, yield the next Selection under mode. Current
// means "snap to a canonical selection covering the caret"; Forward and
// Backward move to the next/previous candidate under the mode's ordering.
func Step(mode Mode, current Selection, dir Direction, cursorDir CursorDirection, ctx Context) (Selection, error) {
	switch mode.Kind {
	case ModeCustom:
		return current, nil
	case ModeCharacter:
		return stepCharacter(current, dir, cursorDir, ctx)
	case ModeWord:
		return stepWord(current, dir, cursorDir, ctx)
	case ModeLine:
		return stepLine(mode, current, dir, cursorDir, ctx)
	case ModeToken:
		return stepTree(current, dir, ctx, tokenFilter)
	case ModeNamedNode:
		return stepTree(current, dir, ctx, namedFilter)
	case ModeSiblingNode:
		return stepSibling(current, dir, ctx)
	case ModeParentNode:
		return stepParent(current, dir, ctx)
	case ModeSyntaxTree:
		return stepSyntaxTree(current, dir, ctx)
	case ModeMatch:
		return stepMatch(mode, current, dir, ctx)
	case ModeInside:
		return stepInside(mode, current, ctx)
	case ModeBookmark:
		return stepBookmark(current, dir, cursorDir, ctx)
	default:
		return current, nil
	}
}
