package editor

import (
	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/edit"
	"github.com/coreseekdev/texere-core/pkg/keymap"
	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/selection"
)

// handleInsertKey inserts a character/Enter/Tab at each selection's
// start and collapses to a caret after it, or deletes backward on
// Backspace/delete-word-backward, per spec.md §4.4's Insert-mode rules.
// Esc returns to Normal.
func (e *Editor) handleInsertKey(ev keymap.KeyEvent) {
	switch ev.Code {
	case keymap.KeyEsc:
		e.Mode = Normal
		return
	case keymap.KeyChar:
		e.insertText(string(ev.Char))
		return
	case keymap.KeyEnter:
		e.insertText("\n")
		return
	case keymap.KeyTab:
		e.insertText("\t")
		return
	case keymap.KeyBackspace:
		if ev.Modifiers == keymap.ModCtrl || ev.Modifiers == keymap.ModAlt {
			e.deleteWordBackward()
		} else {
			e.deleteCharBackward()
		}
	}
}

// insertText inserts text at every selection's start, collapsing each
// cursor to a caret just past the inserted text. Edit.Apply shifts
// same-group edits against each other internally (it sorts by Start and
// accumulates each edit's own delta), so every Insert/Replace/Delete call
// below states its position in the pre-image's own coordinates; only the
// installed Select positions need this loop's own running shift, since
// those describe where each lineage's caret lands in the post-image.
func (e *Editor) insertText(text string) {
	if e.Config.ReadOnly || text == "" {
		return
	}
	b := edit.NewTransactionBuilder(e.Selections)
	all := e.Selections.All()
	order := lineageOrderByStart(all)
	shift := 0
	for _, lineage := range order {
		sel := all[lineage]
		at := sel.Range.From()
		b.Insert(lineage, at, text)
		caretAt := at + coord.CharIndex(shift) + coord.CharIndex(len([]rune(text)))
		b.Select(lineage, selection.Selection{Range: selection.Point(caretAt)})
		shift += len([]rune(text))
	}
	tx, err := b.Build()
	if err != nil {
		e.logAbsorbed("insert", err)
		return
	}
	if err := e.applyAndInstall(tx); err != nil {
		e.logAbsorbed("insert", err)
	}
}

// deleteCharBackward removes one character before each caret, clamped
// at buffer start.
func (e *Editor) deleteCharBackward() {
	if e.Config.ReadOnly {
		return
	}
	b := edit.NewTransactionBuilder(e.Selections)
	all := e.Selections.All()
	order := lineageOrderByStart(all)
	shift := 0
	any := false
	for _, lineage := range order {
		sel := all[lineage]
		caret := sel.Range.CaretAt(e.Selections.CursorDir)
		if caret <= 0 {
			b.Select(lineage, selection.Selection{Range: selection.Point(caret + coord.CharIndex(shift))})
			continue
		}
		old, err := e.Rope.Slice(caret-1, caret)
		if err != nil {
			continue
		}
		b.Delete(lineage, caret-1, old)
		b.Select(lineage, selection.Selection{Range: selection.Point(caret - 1 + coord.CharIndex(shift))})
		shift -= 1
		any = true
	}
	if !any {
		return
	}
	tx, err := b.Build()
	if err != nil {
		e.logAbsorbed("delete char backward", err)
		return
	}
	if err := e.applyAndInstall(tx); err != nil {
		e.logAbsorbed("delete char backward", err)
	}
}

// deleteWordBackward removes the previous word boundary before each
// caret, per 4.1's Word rule (uax29 word segmentation, same boundary
// finder the Word selection mode steps across).
func (e *Editor) deleteWordBackward() {
	if e.Config.ReadOnly {
		return
	}
	wb := rope.NewWordBoundary(e.Rope)
	b := edit.NewTransactionBuilder(e.Selections)
	all := e.Selections.All()
	order := lineageOrderByStart(all)
	shift := 0
	any := false
	for _, lineage := range order {
		sel := all[lineage]
		caret := sel.Range.CaretAt(e.Selections.CursorDir)
		if caret <= 0 {
			b.Select(lineage, selection.Selection{Range: selection.Point(caret + coord.CharIndex(shift))})
			continue
		}
		start, _ := wb.PrevWordBounds(int(caret))
		from := coord.CharIndex(start)
		if from >= caret {
			b.Select(lineage, selection.Selection{Range: selection.Point(caret + coord.CharIndex(shift))})
			continue
		}
		old, err := e.Rope.Slice(from, caret)
		if err != nil {
			continue
		}
		b.Delete(lineage, from, old)
		b.Select(lineage, selection.Selection{Range: selection.Point(from + coord.CharIndex(shift))})
		shift -= int(caret - from)
		any = true
	}
	if !any {
		return
	}
	tx, err := b.Build()
	if err != nil {
		e.logAbsorbed("delete word backward", err)
		return
	}
	if err := e.applyAndInstall(tx); err != nil {
		e.logAbsorbed("delete word backward", err)
	}
}
