package selection

import "github.com/coreseekdev/texere-core/pkg/coord"

// stepInside finds the nearest enclosing delimiter pair of mode.Inside's
// kind around the current caret and selects its contents, excluding the
// delimiters themselves. Scanning is a plain nesting-depth walk over the
// rope's text rather than a tree query: delimiter pairing is defined
// textually in spec.md §4.1 ("nearest enclosing pair of delimiters"), not
// in terms of named syntax nodes.
func stepInside(mode Mode, current Selection, ctx Context) (Selection, error) {
	runes := []rune(ctx.Rope.String())
	caret := int(current.Range.CaretAt(CursorStart))
	if caret > len(runes) {
		caret = len(runes)
	}
	openPos, closePos, ok := insideDelimiterSpan(mode, caret, runes)
	if !ok {
		return current, nil
	}
	return Selection{Range: withDirection(coord.CharIndex(openPos+1), coord.CharIndex(closePos), true)}, nil
}

// insideDelimiterSpan locates the nearest enclosing delimiter pair of
// mode.Inside's kind around caret, returning the positions of the open and
// close delimiter characters themselves (not the content between them).
func insideDelimiterSpan(mode Mode, caret int, runes []rune) (openPos, closePos int, ok bool) {
	open, close := mode.Inside.delimiters()
	if open == close {
		return insideQuoteSpan(runes, open, caret)
	}

	depth := 0
	openPos = -1
	for i := caret - 1; i >= 0; i-- {
		switch runes[i] {
		case close:
			depth++
		case open:
			if depth == 0 {
				openPos = i
			} else {
				depth--
			}
		}
		if openPos >= 0 {
			break
		}
	}
	if openPos < 0 {
		return 0, 0, false
	}
	depth = 0
	closePos = -1
	for i := openPos + 1; i < len(runes); i++ {
		switch runes[i] {
		case open:
			depth++
		case close:
			if depth == 0 {
				closePos = i
			} else {
				depth--
			}
		}
		if closePos >= 0 {
			break
		}
	}
	if closePos < 0 {
		return 0, 0, false
	}
	return openPos, closePos, true
}

func insideQuoteSpan(runes []rune, quote rune, caret int) (openPos, closePos int, ok bool) {
	var positions []int
	for i, r := range runes {
		if r == quote && (i == 0 || runes[i-1] != '\\') {
			positions = append(positions, i)
		}
	}
	for i := 0; i+1 < len(positions); i += 2 {
		start, end := positions[i], positions[i+1]
		if caret >= start && caret <= end {
			return start, end, true
		}
	}
	return 0, 0, false
}

// InsideEnclosingBounds returns the full delimiter span enclosing
// current's caret under mode, including the delimiter characters
// themselves — unlike stepInside/Step, which select only the content
// between them. Raise (pkg/editor) needs the full span: it replaces the
// enclosing group, delimiters and all, with the current selection's text.
func InsideEnclosingBounds(mode Mode, current Selection, ctx Context) (Range, bool) {
	runes := []rune(ctx.Rope.String())
	caret := int(current.Range.CaretAt(CursorStart))
	if caret > len(runes) {
		caret = len(runes)
	}
	openPos, closePos, ok := insideDelimiterSpan(mode, caret, runes)
	if !ok {
		return Range{}, false
	}
	return NewRange(coord.CharIndex(openPos), coord.CharIndex(closePos+1)), true
}
