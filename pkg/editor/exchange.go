package editor

import (
	"context"
	"strings"

	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/edit"
	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/selection"
	"github.com/coreseekdev/texere-core/pkg/syntax"
)

// nodeBasedModes are the modes for which a swap must preserve a
// has_error=false tree, per spec.md §4.5; a text mode (Character, Word,
// Line, Match, Custom) has no tree invariant to protect.
var nodeBasedModes = map[selection.ModeKind]bool{
	selection.ModeToken:       true,
	selection.ModeNamedNode:   true,
	selection.ModeSiblingNode: true,
	selection.ModeParentNode:  true,
	selection.ModeSyntaxTree:  true,
}

// exchange swaps the primary selection's text with a neighbor's under
// the current mode, advancing past candidates whose swap would break
// syntactic validity, per the faultless exchange algorithm.
func (e *Editor) exchange(dir selection.Direction) {
	if e.Config.ReadOnly {
		return
	}
	maxCandidates := e.Config.MaxExchangeCandidates
	if maxCandidates <= 0 {
		maxCandidates = 32
	}

	primary := e.Selections.Primary
	textA, err := e.Rope.Slice(primary.Range.From(), primary.Range.To())
	if err != nil {
		return
	}

	candidate := primary
	for i := 0; i < maxCandidates; i++ {
		next, serr := selection.Step(e.Selections.Mode, candidate, dir, e.Selections.CursorDir, e.ctx())
		if serr != nil || next.Range == candidate.Range {
			break
		}
		candidate = next

		textB, berr := e.Rope.Slice(candidate.Range.From(), candidate.Range.To())
		if berr != nil || strings.TrimSpace(textB) == "" {
			continue
		}

		padded := " " + textB + " "
		_, dryTree, derr := e.trySwap(primary.Range, candidate.Range, textA, textB, padded)
		if derr != nil {
			continue
		}
		if nodeBasedModes[e.Selections.Mode.Kind] && dryTree != nil {
			node := dryTree.NodeAt(primary.Range.From())
			if node != nil && syntax.HasError(node) {
				continue
			}
		}

		finalTx, finalCaret, ferr := buildSwapGroups(e.Selections, primary.Range, candidate.Range, textA, textB, textB)
		if ferr != nil {
			continue
		}
		e.Selections.Primary = selection.Selection{Range: selection.Point(finalCaret)}
		if err := e.applyAndInstall(finalTx); err != nil {
			e.logAbsorbed("exchange", err)
		}
		return
	}
	e.logAbsorbed("exchange", ErrNoProgress)
	if emptyTx, err := edit.FromActionGroups(e.Selections, nil); err == nil {
		if err := e.applyAndInstall(emptyTx); err != nil {
			e.logAbsorbed("exchange", err)
		}
	}
}

// trySwap performs a dry-run two-group swap (A -> paddedB, B's shifted
// position -> A) through edit.Apply without installing the result,
// returning the would-be post-image rope and tree for inspection.
func (e *Editor) trySwap(a, b selection.Range, textA, textB, paddedB string) (*rope.Rope, syntax.Tree, error) {
	tx, _, err := buildSwapGroups(e.Selections, a, b, textA, textB, paddedB)
	if err != nil {
		return nil, nil, err
	}
	r, t, err := edit.Apply(context.Background(), e.Rope, e.Tree, e.Parser, tx)
	if err != nil {
		return nil, nil, err
	}
	return r, t, nil
}

// buildSwapGroups assembles the two-group shape both the dry run and the
// final commit use: group 1 replaces a's text (known to be textA) with
// replacement; group 2 replaces b's (possibly shifted) text — known to
// be textB regardless of shift, since group 1 never touches b's
// characters — with the original a text. Returns the transaction and the
// CharIndex where the moved A text will sit once both groups are
// applied.
func buildSwapGroups(pre *selection.SelectionSet, a, b selection.Range, textA, textB, replacement string) (*edit.EditTransaction, coord.CharIndex, error) {
	aStart := a.From()
	bStart := b.From()

	builder := edit.NewTransactionBuilder(pre).Group()
	builder.Replace(0, aStart, textA, replacement)
	delta := len([]rune(replacement)) - len([]rune(textA))

	builder = builder.Group()
	bFinalStart := bStart
	if bStart >= a.To() {
		bFinalStart += coord.CharIndex(delta)
	}
	builder.Replace(0, bFinalStart, textB, textA)

	tx, err := builder.Build()
	if err != nil {
		return nil, 0, err
	}
	return tx, bFinalStart, nil
}
