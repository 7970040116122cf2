package editor

import (
	"context"

	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/edit"
	"github.com/coreseekdev/texere-core/pkg/keymap"
	"github.com/coreseekdev/texere-core/pkg/selection"
)

// handleUniversal applies a binding active in every mode: select-all,
// paste, undo, redo, and the plain arrow-key caret nudges.
func (e *Editor) handleUniversal(cmd keymap.UniversalCommand) {
	switch cmd {
	case keymap.CmdSelectAll:
		e.selectAll()
	case keymap.CmdPaste:
		e.paste()
	case keymap.CmdUndo:
		e.undo()
	case keymap.CmdRedo:
		e.redo()
	case keymap.CmdMoveCaretLeft:
		e.nudgeCaret(-1)
	case keymap.CmdMoveCaretRight:
		e.nudgeCaret(1)
	}
}

// selectAll installs a single selection spanning the whole buffer.
func (e *Editor) selectAll() {
	set := selection.NewSelectionSet(
		selection.Selection{Range: selection.NewRange(0, coord.CharIndex(e.Rope.Len()))},
		e.Selections.Mode,
	)
	set.CursorDir = e.Selections.CursorDir
	e.Selections = set
	e.recalcScroll()
}

// undo pops the most recent inverse transaction and applies it. Its
// Select actions (carried through unchanged by Invert, since Invert only
// flips Edit actions) still describe the selection the *forward* edit
// installed, not the selection active before it — so undo ignores them
// and restores tx.PreImage, the pre-image Invert leaves untouched,
// exactly the selections active right before the original edit.
func (e *Editor) undo() {
	if e.Config.ReadOnly {
		return
	}
	tx, err := e.History.PerformUndo()
	if err != nil {
		e.logAbsorbed("undo", err)
		return
	}
	if err := e.applyHistoryTx(tx); err != nil {
		e.logAbsorbed("undo", err)
		return
	}
	e.Selections = tx.PreImage
	e.recalcScroll()
}

// redo re-pops the original forward transaction (PerformRedo inverts the
// undo transaction back to it) and installs its own Select actions — the
// selections the original command intended after editing.
func (e *Editor) redo() {
	if e.Config.ReadOnly {
		return
	}
	tx, err := e.History.PerformRedo()
	if err != nil {
		e.logAbsorbed("redo", err)
		return
	}
	if err := e.applyHistoryTx(tx); err != nil {
		e.logAbsorbed("redo", err)
		return
	}
	if sels := tx.Selections(); len(sels) > 0 {
		e.installSelections(sels)
	}
	e.recalcScroll()
}

// applyHistoryTx runs an already-popped undo/redo transaction through
// edit.Apply without touching History again (PerformUndo/PerformRedo
// already pushed the matching entry onto the other stack).
func (e *Editor) applyHistoryTx(tx *edit.EditTransaction) error {
	newRope, newTree, err := edit.Apply(context.Background(), e.Rope, e.Tree, e.Parser, tx)
	if err != nil {
		return err
	}
	e.Rope = newRope
	e.Tree = newTree
	return nil
}

// paste replaces every selection's text with the clipboard contents,
// leaving each lineage's cursor collapsed at the end of the pasted text.
// Edit.Apply shifts same-group edits against each other internally, so
// every Replace call below states its position in the pre-image's own
// coordinates; only the installed Select positions need this loop's own
// running shift.
func (e *Editor) paste() {
	if e.Config.ReadOnly || e.Clipboard == nil {
		return
	}
	text, err := e.Clipboard.Get()
	if err != nil || text == "" {
		return
	}
	b := edit.NewTransactionBuilder(e.Selections)
	all := e.Selections.All()
	order := lineageOrderByStart(all)
	shift := 0
	for _, lineage := range order {
		sel := all[lineage]
		start := sel.Range.From()
		end := sel.Range.To()
		old, sErr := e.Rope.Slice(start, end)
		if sErr != nil {
			continue
		}
		b.Replace(lineage, start, old, text)
		caretAt := start + coord.CharIndex(shift) + coord.CharIndex(len([]rune(text)))
		b.Select(lineage, selection.Selection{Range: selection.Point(caretAt)})
		shift += len([]rune(text)) - int(end-start)
	}
	tx, err := b.Build()
	if err != nil {
		e.logAbsorbed("paste", err)
		return
	}
	if err := e.applyAndInstall(tx); err != nil {
		e.logAbsorbed("paste", err)
	}
}

// nudgeCaret moves every selection's caret by delta characters without
// changing mode, collapsing to a point (arrow keys always produce a
// cursor, never a mode-shaped selection).
func (e *Editor) nudgeCaret(delta int) {
	length := e.Rope.Len()
	move := func(s selection.Selection) selection.Selection {
		caret := int(s.Range.CaretAt(e.Selections.CursorDir)) + delta
		if caret < 0 {
			caret = 0
		}
		if caret > length {
			caret = length
		}
		return selection.Selection{Range: selection.Point(coord.CharIndex(caret))}
	}
	next := selection.NewSelectionSet(move(e.Selections.Primary), e.Selections.Mode)
	next.CursorDir = e.Selections.CursorDir
	for _, s := range e.Selections.Secondary {
		next.Secondary = append(next.Secondary, move(s))
	}
	next.Normalize()
	e.Selections = next
	e.recalcScroll()
}
