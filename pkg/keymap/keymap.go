// Package keymap defines the closed KeyCode/KeyModifiers/KeyEvent/
// MouseEvent sets the engine's key dispatcher consumes, plus the
// Normal-mode and universal binding tables from spec.md §6. Grounded on
// the pack's mode-handling convention of small iota sum types with a
// String() method and a table-driven dispatcher (dshills-keystorm's
// mode.Mode/CursorStyle shape), adapted to this engine's own closed
// KeyCode/KeyModifiers sets rather than keystorm's own key.Event type.
package keymap

// KeyCode is the closed set of recognized keys. Char carries its rune in
// KeyEvent.Char; all other variants are standalone.
type KeyCode int

const (
	KeyChar KeyCode = iota
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyNull
)

func (k KeyCode) String() string {
	switch k {
	case KeyChar:
		return "Char"
	case KeyEnter:
		return "Enter"
	case KeyEsc:
		return "Esc"
	case KeyTab:
		return "Tab"
	case KeyBackTab:
		return "BackTab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyNull:
		return "Null"
	default:
		return "F" // F1..F12 share a display prefix; callers that care use the constant name
	}
}

// KeyModifiers is the closed set of modifier combinations; exactly one
// value is active at a time (no bitmask composition — CtrlAlt is its own
// member, not Ctrl|Alt).
type KeyModifiers int

const (
	ModNone KeyModifiers = iota
	ModCtrl
	ModAlt
	ModShift
	ModCtrlAlt
	ModCtrlShift
	ModAltShift
	ModCtrlAltShift
)

// KeyEvent is a single key press: a KeyCode plus its modifiers, and the
// rune when Code == KeyChar.
type KeyEvent struct {
	Code      KeyCode
	Modifiers KeyModifiers
	Char      rune
}

// Char builds a plain, unmodified character key event.
func Char(r rune) KeyEvent {
	return KeyEvent{Code: KeyChar, Char: r}
}

// CharWithMods builds a character key event carrying modifiers.
func CharWithMods(r rune, mods KeyModifiers) KeyEvent {
	return KeyEvent{Code: KeyChar, Char: r, Modifiers: mods}
}

// Special builds a non-character key event.
func Special(code KeyCode, mods KeyModifiers) KeyEvent {
	return KeyEvent{Code: code, Modifiers: mods}
}

// MouseKind distinguishes mouse event variants.
type MouseKind int

const (
	MouseScrollUp MouseKind = iota
	MouseScrollDown
	MouseLeftClick
)

// MouseEvent is a single mouse interaction; Row/Column are meaningful for
// MouseLeftClick (viewport-relative, before scroll offset is applied).
type MouseEvent struct {
	Kind   MouseKind
	Row    int
	Column int
}
