package editor

import (
	"github.com/coreseekdev/texere-core/pkg/dispatch"
	"github.com/coreseekdev/texere-core/pkg/keymap"
	"github.com/coreseekdev/texere-core/pkg/selection"
)

// HandleKey is the single entry point a frontend calls per key event: it
// tries the universal bindings first, then falls through to the active
// mode's own handler, mirroring spec's handle_key precedence, and
// returns whatever outbound dispatches that handling produced (nil for
// the overwhelming majority of keys).
func (e *Editor) HandleKey(ev keymap.KeyEvent) []dispatch.Dispatch {
	if cmd, ok := keymap.LookupUniversal(ev); ok {
		e.handleUniversal(cmd)
		return nil
	}
	switch e.Mode {
	case Insert:
		e.handleInsertKey(ev)
		return nil
	case Jump:
		e.handleJumpKey(ev)
		return nil
	default:
		return e.handleNormalKey(ev)
	}
}

// handleNormalKey dispatches a Normal-mode key through keymap.LookupNormal.
func (e *Editor) handleNormalKey(ev keymap.KeyEvent) []dispatch.Dispatch {
	cmd, ok := keymap.LookupNormal(ev)
	if !ok {
		return nil
	}
	switch cmd {
	case keymap.CmdCharacterForward:
		e.switchMode(selection.Character())
	case keymap.CmdWord:
		e.switchMode(selection.Word())
	case keymap.CmdLineMode:
		e.switchMode(selection.Line(false))
	case keymap.CmdToken:
		e.switchMode(selection.Token())
	case keymap.CmdNamedNodeMode:
		e.switchMode(selection.NamedNode())
	case keymap.CmdSiblingNode:
		e.switchMode(selection.SiblingNode())
	case keymap.CmdParentNode:
		e.switchMode(selection.ParentNode())
	case keymap.CmdResetToCustom:
		e.switchMode(selection.Custom())
		e.collapseToCaret()
	case keymap.CmdStepForward:
		e.step(selection.DirForward)
	case keymap.CmdStepBackward:
		e.step(selection.DirBackward)
	case keymap.CmdToggleCursorDirection:
		e.Selections.CursorDir = e.Selections.CursorDir.Toggle()
	case keymap.CmdToggleHighlight:
		e.Selections.Highlight = !e.Selections.Highlight
	case keymap.CmdClearExtension:
		e.Selections.Highlight = false
		e.collapseToCaret()
	case keymap.CmdCenter:
		row, _ := e.GetCursorPoint()
		e.Scroll.AlignCenter(row)
	case keymap.CmdAlignTop:
		row, _ := e.GetCursorPoint()
		e.Scroll.AlignTop(row)
	case keymap.CmdAlignBottom:
		row, _ := e.GetCursorPoint()
		e.Scroll.AlignBottom(row)
	case keymap.CmdYank:
		e.yank()
	case keymap.CmdDelete:
		e.deleteSelections()
	case keymap.CmdChange:
		e.changeSelections()
	case keymap.CmdReplaceWithYank:
		e.replaceWithYank()
	case keymap.CmdInsert:
		e.Mode = Insert
	case keymap.CmdAddSelection:
		e.addSelection()
	case keymap.CmdSelectKids:
		e.selectKids()
	case keymap.CmdSelectionHistoryBackward:
		e.selectionHistoryBackward()
	case keymap.CmdJumpForward:
		e.enterJumpMode(selection.DirForward)
	case keymap.CmdJumpBackward:
		e.enterJumpMode(selection.DirBackward)
	case keymap.CmdExchangeForward:
		e.exchange(selection.DirForward)
	case keymap.CmdExchangeBackward:
		e.exchange(selection.DirBackward)
	case keymap.CmdRaise:
		e.raise()
	case keymap.CmdMatchMode:
		// Entering Match mode needs a pattern a frontend supplies out of
		// band (no text-entry mini-buffer in this engine). Re-pressing
		// "m" re-applies the last pattern SetMatchPattern installed and
		// echoes it back so the frontend's search panel stays in sync;
		// with no prior pattern there's nothing to echo.
		if e.LastMatchPattern != "" {
			e.switchMode(selection.Match(e.LastMatchPattern))
			return []dispatch.Dispatch{dispatch.NewSetSearch(e.LastMatchPattern)}
		}
	}
	return nil
}

// switchMode installs mode, regenerating selections when the previous
// and new modes aren't similar (selection.Similar).
func (e *Editor) switchMode(mode selection.Mode) {
	prev := e.Selections.Mode
	e.Selections.SwitchMode(mode)
	if !selection.Similar(prev.Kind, mode.Kind) {
		e.step(selection.DirCurrent)
	}
}

// SetMatchPattern switches to Match mode against pattern, the frontend's
// way of supplying the regex a real editor would collect via a
// mini-buffer prompt.
func (e *Editor) SetMatchPattern(pattern string) error {
	e.switchMode(selection.Match(pattern))
	e.LastMatchPattern = pattern
	return nil
}

// step regenerates the selection set by stepping every cursor dir once
// under the current mode, pushing the prior set onto selection history.
func (e *Editor) step(dir selection.Direction) {
	prev := e.Selections
	next, err := e.Selections.Generate(dir, e.ctx())
	if err != nil {
		e.logAbsorbed("step", err)
		return
	}
	e.pushSelectionHistory(prev)
	e.Selections = next
	if dir != selection.DirCurrent {
		e.LastStepDir = dir
	}
	e.recalcScroll()
}

// collapseToCaret resets the primary selection to a zero-width cursor at
// its caret and discards the secondaries.
func (e *Editor) collapseToCaret() {
	caret := e.Selections.Primary.Range.CaretAt(e.Selections.CursorDir)
	e.Selections = selection.NewSelectionSet(selection.Selection{Range: selection.Point(caret)}, e.Selections.Mode)
}

// addSelection appends a secondary selection immediately after the
// primary's end, under the current mode, per spec's "a" command.
func (e *Editor) addSelection() {
	after := e.Selections.Primary.Range.To()
	sel := selection.Selection{Range: selection.Point(after)}
	e.Selections.Secondary = append(e.Selections.Secondary, sel)
	e.Selections.Normalize()
}

// selectKids replaces the primary selection with its syntax node's named
// children: first child becomes primary, the rest secondaries.
func (e *Editor) selectKids() {
	if e.Tree == nil {
		return
	}
	caret := e.Selections.Primary.Range.CaretAt(e.Selections.CursorDir)
	n := e.Tree.NodeAt(caret)
	if n == nil {
		return
	}
	kids := namedChildrenOf(n)
	if len(kids) == 0 {
		return
	}
	primary := selectionFromRange(kids[0])
	set := selection.NewSelectionSet(primary, e.Selections.Mode)
	for _, k := range kids[1:] {
		set.Secondary = append(set.Secondary, selectionFromRange(k))
	}
	set.Normalize()
	e.Selections = set
	e.recalcScroll()
}

// selectionHistoryBackward pops SelHistory until a genuinely different
// set is found, installing it, per the resolved rule that "b" never
// drains past the first differing entry.
func (e *Editor) selectionHistoryBackward() {
	for len(e.SelHistory) > 0 {
		n := len(e.SelHistory) - 1
		candidate := e.SelHistory[n]
		e.SelHistory = e.SelHistory[:n]
		if !sameRanges(candidate, e.Selections) {
			e.Selections = candidate
			e.recalcScroll()
			return
		}
	}
}
