package keymap

// NormalCommand is the closed set of Normal-mode single-letter commands
// from spec.md §6's key-binding reference.
type NormalCommand int

const (
	CmdAddSelection NormalCommand = iota
	CmdSelectionHistoryBackward
	CmdCharacterForward
	CmdDelete
	CmdStepForward
	CmdStepBackward
	CmdToggleHighlight
	CmdInsert
	CmdJumpForward
	CmdJumpBackward
	CmdSelectKids
	CmdLineMode
	CmdMatchMode
	CmdNamedNodeMode
	CmdToggleCursorDirection
	CmdParentNode
	CmdReplaceWithYank
	CmdSiblingNode
	CmdToken
	CmdWord
	CmdExchangeForward
	CmdExchangeBackward
	CmdYank
	CmdCenter
	CmdClearExtension
	CmdChange
	CmdResetToCustom
	CmdRaise
	CmdAlignTop
	CmdAlignBottom
)

// normalTable maps a plain (unmodified) character to its Normal-mode
// command, per spec's "single-letter keys, Shift via uppercase" table.
var normalTable = map[rune]NormalCommand{
	'a': CmdAddSelection,
	'b': CmdSelectionHistoryBackward,
	'c': CmdCharacterForward,
	'd': CmdDelete,
	'f': CmdStepForward,
	'F': CmdStepBackward,
	'h': CmdToggleHighlight,
	'i': CmdInsert,
	'j': CmdJumpForward,
	'J': CmdJumpBackward,
	'k': CmdSelectKids,
	'l': CmdLineMode,
	'm': CmdMatchMode,
	'n': CmdNamedNodeMode,
	'o': CmdToggleCursorDirection,
	'p': CmdParentNode,
	'r': CmdReplaceWithYank,
	's': CmdSiblingNode,
	't': CmdToken,
	'w': CmdWord,
	'x': CmdExchangeForward,
	'X': CmdExchangeBackward,
	'y': CmdYank,
	'z': CmdCenter,
	'0': CmdResetToCustom,
	'R': CmdRaise,
	'T': CmdAlignTop,
	'B': CmdAlignBottom,
}

// LookupNormal resolves a key event to a Normal-mode command. Esc and
// Backspace are handled via KeyCode rather than the rune table, since
// they carry no Char.
func LookupNormal(ev KeyEvent) (NormalCommand, bool) {
	switch ev.Code {
	case KeyEsc:
		return CmdClearExtension, true
	case KeyBackspace:
		return CmdChange, true
	case KeyChar:
		cmd, ok := normalTable[ev.Char]
		return cmd, ok
	default:
		return 0, false
	}
}

// UniversalCommand is the closed set of bindings consulted before a
// mode's own handler, active in every mode.
type UniversalCommand int

const (
	CmdSelectAll UniversalCommand = iota
	CmdPaste
	CmdRedo
	CmdUndo
	CmdMoveCaretLeft
	CmdMoveCaretRight
)

// LookupUniversal resolves a key event to a universal command, consulted
// by handle_key before delegating to the active mode's handler.
func LookupUniversal(ev KeyEvent) (UniversalCommand, bool) {
	switch {
	case ev.Code == KeyChar && ev.Modifiers == ModCtrl && (ev.Char == 'a' || ev.Char == 'A'):
		return CmdSelectAll, true
	case ev.Code == KeyChar && ev.Modifiers == ModCtrl && (ev.Char == 'v' || ev.Char == 'V'):
		return CmdPaste, true
	case ev.Code == KeyChar && ev.Modifiers == ModCtrl && (ev.Char == 'y' || ev.Char == 'Y'):
		return CmdRedo, true
	case ev.Code == KeyChar && ev.Modifiers == ModCtrl && (ev.Char == 'z' || ev.Char == 'Z'):
		return CmdUndo, true
	case ev.Code == KeyLeft:
		return CmdMoveCaretLeft, true
	case ev.Code == KeyRight:
		return CmdMoveCaretRight, true
	default:
		return 0, false
	}
}
