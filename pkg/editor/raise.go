package editor

import (
	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/edit"
	"github.com/coreseekdev/texere-core/pkg/selection"
	"github.com/coreseekdev/texere-core/pkg/syntax"
)

// raise replaces the node or delimiter group enclosing the primary
// selection with the selection's own text, spec's "raise" command — e.g.
// matching "b" inside `(a, b)` under Inside(Parentheses) and raising
// yields `a, b` with the parentheses gone.
func (e *Editor) raise() {
	if e.Config.ReadOnly {
		return
	}
	sel := e.Selections.Primary
	text, err := e.Rope.Slice(sel.Range.From(), sel.Range.To())
	if err != nil {
		return
	}
	outer, ok := e.enclosingRange(sel.Range)
	if !ok {
		e.logAbsorbed("raise", ErrNoProgress)
		return
	}
	old, err := e.Rope.Slice(outer.From(), outer.To())
	if err != nil {
		return
	}
	b := edit.NewTransactionBuilder(e.Selections)
	b.Replace(0, outer.From(), old, text)
	caretEnd := outer.From() + coord.CharIndex(len([]rune(text)))
	b.Select(0, selection.Selection{Range: selection.NewRange(outer.From(), caretEnd)})
	tx, err := b.Build()
	if err != nil {
		e.logAbsorbed("raise", err)
		return
	}
	if err := e.applyAndInstall(tx); err != nil {
		e.logAbsorbed("raise", err)
	}
}

// enclosingRange finds the range to replace for raise: under Inside mode
// it's the full delimiter span (the brackets themselves, per
// selection.InsideEnclosingBounds); under every other mode it's the
// nearest ancestor syntax node whose range properly contains sel — the
// "parent" spec's wording names directly.
func (e *Editor) enclosingRange(sel selection.Range) (selection.Range, bool) {
	if e.Selections.Mode.Kind == selection.ModeInside {
		return selection.InsideEnclosingBounds(e.Selections.Mode, selection.Selection{Range: sel}, e.ctx())
	}
	if e.Tree == nil {
		return selection.Range{}, false
	}
	node := e.Tree.NodeAt(sel.From())
	if node == nil {
		return selection.Range{}, false
	}
	for _, n := range syntax.WalkUp(node) {
		r := n.Range()
		if r.Start <= sel.From() && r.End >= sel.To() && (r.Start < sel.From() || r.End > sel.To()) {
			return selection.NewRange(r.Start, r.End), true
		}
	}
	return selection.Range{}, false
}
