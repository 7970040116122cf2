package editor

import (
	"github.com/coreseekdev/texere-core/pkg/jump"
	"github.com/coreseekdev/texere-core/pkg/keymap"
	"github.com/coreseekdev/texere-core/pkg/selection"
)

// enterJumpMode generates labelled candidates from the primary
// selection in dir under the current mode and switches to Jump mode; a
// failed generation (no candidates) is absorbed and the editor stays in
// Normal.
func (e *Editor) enterJumpMode(dir selection.Direction) {
	jumps, err := jump.Generate(e.Selections.Mode, e.Selections.Primary, dir, e.Selections.CursorDir, e.ctx())
	if err != nil {
		e.logAbsorbed("jump", err)
		return
	}
	e.Jumps = jumps
	e.JumpDir = dir
	e.JumpMode = e.Selections.Mode
	e.Mode = Jump
}

// handleJumpKey resolves a labelled key to install that jump's
// selection and return to Normal; "j"/"J" re-enters Jump from the
// currently-labelled extremum; Esc cancels back to Normal leaving
// selections untouched.
func (e *Editor) handleJumpKey(ev keymap.KeyEvent) {
	switch ev.Code {
	case keymap.KeyEsc:
		e.Jumps = nil
		e.Mode = Normal
		return
	case keymap.KeyChar:
		switch ev.Char {
		case 'j':
			e.reenterJump(selection.DirForward)
			return
		case 'J':
			e.reenterJump(selection.DirBackward)
			return
		}
		if j, ok := jump.ByLabel(e.Jumps, ev.Char); ok {
			e.Selections = selection.NewSelectionSet(j.Selection, e.JumpMode)
			e.Jumps = nil
			e.Mode = Normal
			e.recalcScroll()
		}
	}
}

// reenterJump re-generates Jump candidates starting from the current
// extremum (the last candidate of the prior generation) in dir.
func (e *Editor) reenterJump(dir selection.Direction) {
	if len(e.Jumps) == 0 {
		e.enterJumpMode(dir)
		return
	}
	last := e.Jumps[len(e.Jumps)-1].Selection
	jumps, err := jump.Generate(e.JumpMode, last, dir, e.Selections.CursorDir, e.ctx())
	if err != nil {
		e.logAbsorbed("jump", err)
		e.Jumps = nil
		e.Mode = Normal
		return
	}
	e.Jumps = jumps
	e.JumpDir = dir
}
