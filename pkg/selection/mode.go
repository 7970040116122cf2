package selection

// ModeKind is the tag of the SelectionMode sum type.
type ModeKind int

const (
	ModeCustom ModeKind = iota
	ModeCharacter
	ModeWord
	ModeLine
	ModeToken
	ModeNamedNode
	ModeSiblingNode
	ModeParentNode
	ModeMatch
	ModeInside
	ModeBookmark
	ModeSyntaxTree
)

func (k ModeKind) String() string {
	switch k {
	case ModeCustom:
		return "Custom"
	case ModeCharacter:
		return "Character"
	case ModeWord:
		return "Word"
	case ModeLine:
		return "Line"
	case ModeToken:
		return "Token"
	case ModeNamedNode:
		return "NamedNode"
	case ModeSiblingNode:
		return "SiblingNode"
	case ModeParentNode:
		return "ParentNode"
	case ModeMatch:
		return "Match"
	case ModeInside:
		return "Inside"
	case ModeBookmark:
		return "Bookmark"
	case ModeSyntaxTree:
		return "SyntaxTree"
	default:
		return "Unknown"
	}
}

// InsideKind names the delimiter pair an Inside mode encloses within.
type InsideKind int

const (
	InsideParentheses InsideKind = iota
	InsideBrackets
	InsideBraces
	InsideQuotes
)

func (k InsideKind) delimiters() (open, close rune) {
	switch k {
	case InsideBrackets:
		return '[', ']'
	case InsideBraces:
		return '{', '}'
	case InsideQuotes:
		return '"', '"'
	default:
		return '(', ')'
	}
}

// Mode is the current SelectionMode governing navigation, carrying the
// per-variant payload (regex pattern for Match, delimiter kind for
// Inside) alongside the tag.
type Mode struct {
	Kind       ModeKind
	Regex      string     // ModeMatch
	Inside     InsideKind // ModeInside
	LineFull   bool       // ModeLine: true = include trailing newline, false = trimmed
}

// Custom, Character, Word, etc. are convenience constructors for the
// common zero-payload modes.
func Custom() Mode      { return Mode{Kind: ModeCustom} }
func Character() Mode   { return Mode{Kind: ModeCharacter} }
func Word() Mode        { return Mode{Kind: ModeWord} }
func Line(full bool) Mode { return Mode{Kind: ModeLine, LineFull: full} }
func Token() Mode       { return Mode{Kind: ModeToken} }
func NamedNode() Mode   { return Mode{Kind: ModeNamedNode} }
func SiblingNode() Mode { return Mode{Kind: ModeSiblingNode} }
func ParentNode() Mode  { return Mode{Kind: ModeParentNode} }
func Match(regex string) Mode { return Mode{Kind: ModeMatch, Regex: regex} }
func Inside(kind InsideKind) Mode { return Mode{Kind: ModeInside, Inside: kind} }
func Bookmark() Mode    { return Mode{Kind: ModeBookmark} }
func SyntaxTreeMode() Mode { return Mode{Kind: ModeSyntaxTree} }

// ContiguousModes lists the modes whose "kill" command extends the delete
// to the gap up to the next selection in the direction of travel (§9's
// resolved open question).
var ContiguousModes = map[ModeKind]bool{
	ModeWord:        true,
	ModeLine:        true,
	ModeToken:       true,
	ModeNamedNode:   true,
	ModeSiblingNode: true,
	ModeMatch:       true,
	ModeCharacter:   true,
}

// IsContiguous reports whether m's kind is in ContiguousModes.
func (m Mode) IsContiguous() bool { return ContiguousModes[m.Kind] }

// similarNodeModes are the node-based modes that a directional step should
// treat as interchangeable (switching between them preserves direction
// rather than resetting to Current), per spec.md §4.1.
var similarNodeModes = map[ModeKind]bool{
	ModeToken:       true,
	ModeNamedNode:   true,
	ModeSiblingNode: true,
	ModeParentNode:  true,
	ModeSyntaxTree:  true,
}

// Similar reports whether switching from a to b should preserve direction.
func Similar(a, b ModeKind) bool {
	if a == b {
		return true
	}
	return similarNodeModes[a] && similarNodeModes[b]
}
