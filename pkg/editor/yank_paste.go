package editor

import (
	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/edit"
	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/selection"
)

// yank copies every selection's text into its own Yanked slot and the
// shared system Clipboard receives the last selection's text (in All()
// order) — every cursor keeps its own copy for a paired replace, while a
// frontend pasting from outside only ever sees one of them, per spec.md
// §4.4's multi-cursor yank rule.
func (e *Editor) yank() {
	e.Selections.Primary = withYankedText(e.Rope, e.Selections.Primary)
	lastText := sliceOrEmpty(e.Rope, e.Selections.Primary.Range)
	for i, s := range e.Selections.Secondary {
		e.Selections.Secondary[i] = withYankedText(e.Rope, s)
		lastText = sliceOrEmpty(e.Rope, s.Range)
	}
	if e.Clipboard != nil {
		if err := e.Clipboard.Set(lastText); err != nil {
			e.logAbsorbed("yank", err)
		}
	}
}

func withYankedText(r *rope.Rope, s selection.Selection) selection.Selection {
	text, err := r.Slice(s.Range.From(), s.Range.To())
	if err != nil {
		return s
	}
	return s.WithYanked(rope.New(text))
}

func sliceOrEmpty(r *rope.Rope, rng selection.Range) string {
	text, err := r.Slice(rng.From(), rng.To())
	if err != nil {
		return ""
	}
	return text
}

// deleteSelections removes every selection's text, collapsing each
// cursor to the deletion point, and pushes the transaction as an
// ordinary undoable edit (spec's "d" command). Edit.Apply shifts
// same-group edits against each other internally, so every Replace call
// below states its position in the pre-image's own coordinates; only the
// installed Select positions need this loop's own running shift.
//
// For a contiguous mode (selection.Mode.IsContiguous), each kill also
// consumes the gap up to the neighbouring selection in the direction of
// travel (LastStepDir), so multiple simultaneous selections under a
// contiguous mode glue back together with no leftover separator between
// them. The neighbour is always another selection of the set: a lone
// selection, or the last one in the direction of travel, deletes only its
// own text, and the cursors left behind are zero-width points, so a
// repeated delete of a lone cursor removes nothing.
func (e *Editor) deleteSelections() {
	if e.Config.ReadOnly {
		return
	}
	b := edit.NewTransactionBuilder(e.Selections)
	all := e.Selections.All()
	order := lineageOrderByStart(all)
	contiguous := e.Selections.Mode.IsContiguous()
	backward := e.LastStepDir == selection.DirBackward
	shift := 0
	any := false
	for i, lineage := range order {
		sel := all[lineage]
		start := sel.Range.From()
		end := sel.Range.To()
		if contiguous {
			if backward && i > 0 {
				if prevEnd := all[order[i-1]].Range.To(); prevEnd < start {
					start = prevEnd
				}
			} else if !backward && i < len(order)-1 {
				if nextStart := all[order[i+1]].Range.From(); nextStart > end {
					end = nextStart
				}
			}
		}
		if start == end {
			b.Select(lineage, selection.Selection{Range: selection.Point(start + coord.CharIndex(shift))})
			continue
		}
		old, err := e.Rope.Slice(start, end)
		if err != nil {
			continue
		}
		b.Replace(lineage, start, old, "")
		b.Select(lineage, selection.Selection{Range: selection.Point(start + coord.CharIndex(shift))})
		shift -= int(end - start)
		any = true
	}
	if !any {
		return
	}
	tx, err := b.Build()
	if err != nil {
		e.logAbsorbed("delete", err)
		return
	}
	if err := e.applyAndInstall(tx); err != nil {
		e.logAbsorbed("delete", err)
	}
}

// changeSelections deletes every selection's text like deleteSelections
// and then enters Insert mode at the collapsed cursors, spec's "Change"
// binding (mapped to Backspace per keymap.LookupNormal).
func (e *Editor) changeSelections() {
	e.deleteSelections()
	if !e.Config.ReadOnly {
		e.Mode = Insert
	}
}

// replaceWithYank substitutes each selection's text with its own Yanked
// slot (falling back to the shared Clipboard if the lineage has nothing
// yanked yet), spec's "r" command.
func (e *Editor) replaceWithYank() {
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
		replacement := yankedTextOf(e, sel)
		if replacement == "" {
			continue
		}
		start := sel.Range.From()
		end := sel.Range.To()
		old, err := e.Rope.Slice(start, end)
		if err != nil {
			continue
		}
		b.Replace(lineage, start, old, replacement)
		caretStart := start + coord.CharIndex(shift)
		caretEnd := caretStart + coord.CharIndex(len([]rune(replacement)))
		b.Select(lineage, selection.Selection{Range: selection.NewRange(caretStart, caretEnd)})
		shift += len([]rune(replacement)) - int(end-start)
		any = true
	}
	if !any {
		return
	}
	tx, err := b.Build()
	if err != nil {
		e.logAbsorbed("replace with yank", err)
		return
	}
	if err := e.applyAndInstall(tx); err != nil {
		e.logAbsorbed("replace with yank", err)
	}
}

func yankedTextOf(e *Editor, s selection.Selection) string {
	if s.Yanked != nil {
		return s.Yanked.String()
	}
	if e.Clipboard != nil {
		if text, err := e.Clipboard.Get(); err == nil {
			return text
		}
	}
	return ""
}
