package selection

import (
	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/dlclark/regexp2"
)

// stepMatch scans the whole buffer for mode.Regex using regexp2's
// .NET-flavored engine (lookaround, backreferences) per SPEC_FULL.md's
// Match mode grounding.
func stepMatch(mode Mode, current Selection, dir Direction, ctx Context) (Selection, error) {
	re, err := regexp2.Compile(mode.Regex, regexp2.None)
	if err != nil {
		return current, ErrRegexCompilation
	}
	text := ctx.Rope.String()

	type span struct{ start, end int }
	var spans []span
	m, _ := re.FindStringMatch(text)
	for m != nil {
		byteStart := m.Index
		byteEnd := m.Index + m.Length
		start := len([]rune(text[:byteStart]))
		end := len([]rune(text[:byteEnd]))
		spans = append(spans, span{start, end})
		m, _ = re.FindNextMatch(m)
	}
	if len(spans) == 0 {
		return current, nil
	}
	caret := current.Range.CaretAt(CursorEnd)
	switch dir {
	case DirForward:
		for _, s := range spans {
			if coord.CharIndex(s.start) > caret {
				return Selection{Range: withDirection(coord.CharIndex(s.start), coord.CharIndex(s.end), true)}, nil
			}
		}
		return current, nil
	case DirBackward:
		for i := len(spans) - 1; i >= 0; i-- {
			if coord.CharIndex(spans[i].end) < caret {
				return Selection{Range: withDirection(coord.CharIndex(spans[i].start), coord.CharIndex(spans[i].end), true)}, nil
			}
		}
		return current, nil
	default:
		for _, s := range spans {
			if current.Range.From() >= coord.CharIndex(s.start) && current.Range.From() < coord.CharIndex(s.end) {
				return Selection{Range: withDirection(coord.CharIndex(s.start), coord.CharIndex(s.end), true)}, nil
			}
		}
		if len(spans) > 0 {
			return Selection{Range: withDirection(coord.CharIndex(spans[0].start), coord.CharIndex(spans[0].end), true)}, nil
		}
		return current, nil
	}
}
