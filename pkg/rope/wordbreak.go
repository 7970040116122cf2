package rope

import (
	"unicode"

	"github.com/clipperhouse/uax29/words"
)

// WordBoundary locates Unicode word boundaries within a Rope's snapshot,
// backing the engine's Word selection mode. Segmentation follows UAX #29
// (the same algorithm ICU and most editors use for "ctrl+left/right" word
// motion) rather than the ASCII letter/digit/underscore heuristic a naive
// port would use, so CJK text and combining marks land on sensible
// boundaries.
type WordBoundary struct {
	text    string
	offsets []int // rune-indexed start offset of each segment
	words   []string
}

// NewWordBoundary builds a word index over the rope's current content. The
// index is a snapshot: callers rebuild it after an edit, mirroring how
// pkg/selection recomputes step() targets against the post-edit rope.
func NewWordBoundary(r *Rope) *WordBoundary {
	text := r.String()
	segments := words.SegmentAllString(text)
	wb := &WordBoundary{text: text}
	runeOff := 0
	for _, w := range segments {
		for _, sub := range splitSubWords(w) {
			wb.offsets = append(wb.offsets, runeOff)
			wb.words = append(wb.words, sub)
			runeOff += len([]rune(sub))
		}
	}
	wb.offsets = append(wb.offsets, runeOff) // sentinel: end of text
	return wb
}

// splitSubWords further divides a single uax29 word segment at `_` runs
// and at lower-to-upper case transitions. UAX #29 alone treats `_` as
// ExtendNumLet (it glues to neighbouring alnum runes, never breaking) and
// never looks at case at all, so "main_fn" and "helloWorld" each arrive
// here as one segment; spec's Word mode wants them as two ("main", "fn"
// and "hello", "World"), matching snake_case/camelCase identifier
// boundaries the way most structural editors split them.
func splitSubWords(w string) []string {
	runes := []rune(w)
	if len(runes) == 0 {
		return nil
	}
	parts := make([]string, 0, 1)
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		switch {
		case cur == '_' && prev != '_':
			parts = append(parts, string(runes[start:i]))
			start = i
		case prev == '_' && cur != '_':
			parts = append(parts, string(runes[start:i]))
			start = i
		case unicode.IsUpper(cur) && unicode.IsLower(prev):
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}

// isWordSegment reports whether segment i is a "word" in the UAX #29 sense
// (contains at least one letter or digit; an underscore alone does not
// count) as opposed to whitespace or punctuation filler between words.
func (wb *WordBoundary) isWordSegment(i int) bool {
	for _, r := range wb.words[i] {
		if isWordRune(r) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return r > 127 // treat any non-ASCII rune as word-forming; uax29 already
	// split on script/whitespace boundaries, so this only needs to reject
	// ASCII punctuation and space. `_` is deliberately excluded: splitSubWords
	// already carves it into its own segment, which must classify as filler,
	// not a word, so "main_fn" yields "main"/"fn" with nothing selected for "_".
}

func (wb *WordBoundary) segmentAt(pos int) int {
	if len(wb.words) == 0 {
		return -1
	}
	for i, off := range wb.offsets[:len(wb.offsets)-1] {
		if pos >= off && pos < wb.offsets[i+1] {
			return i
		}
	}
	return len(wb.words) - 1
}

func (wb *WordBoundary) isWordSegmentSafe(i int) bool {
	if i < 0 || i >= len(wb.words) {
		return false
	}
	return wb.isWordSegment(i)
}

// NextWordStart returns the character offset where the next word segment
// after pos begins.
func (wb *WordBoundary) NextWordStart(pos int) int {
	i := wb.segmentAt(pos)
	for j := i + 1; j < len(wb.words); j++ {
		if wb.isWordSegment(j) {
			return wb.offsets[j]
		}
	}
	return wb.offsets[len(wb.offsets)-1]
}

// NextWordEnd returns the character offset just past the end of the next
// word segment at-or-after pos.
func (wb *WordBoundary) NextWordEnd(pos int) int {
	i := wb.segmentAt(pos)
	if i < 0 {
		i = 0
	}
	for j := i; j < len(wb.words); j++ {
		if wb.isWordSegment(j) && wb.offsets[j] >= pos {
			return wb.offsets[j+1]
		}
	}
	return wb.offsets[len(wb.offsets)-1]
}

// PrevWordStart returns the character offset where the word segment before
// pos begins.
func (wb *WordBoundary) PrevWordStart(pos int) int {
	i := wb.segmentAt(pos)
	for j := i; j >= 0; j-- {
		if wb.isWordSegment(j) && wb.offsets[j] < pos {
			return wb.offsets[j]
		}
	}
	return 0
}

// PrevWordEnd returns the character offset just past the end of the word
// segment before pos.
func (wb *WordBoundary) PrevWordEnd(pos int) int {
	i := wb.segmentAt(pos)
	for j := i - 1; j >= 0; j-- {
		if wb.isWordSegment(j) {
			return wb.offsets[j+1]
		}
	}
	return 0
}

// CurrentWordStart returns the start offset of the word segment containing
// pos, or pos itself if pos sits on non-word filler.
func (wb *WordBoundary) CurrentWordStart(pos int) int {
	i := wb.segmentAt(pos)
	if !wb.isWordSegmentSafe(i) {
		return pos
	}
	return wb.offsets[i]
}

// CurrentWordEnd returns the end offset of the word segment containing pos,
// or pos itself if pos sits on non-word filler.
func (wb *WordBoundary) CurrentWordEnd(pos int) int {
	i := wb.segmentAt(pos)
	if !wb.isWordSegmentSafe(i) {
		return pos
	}
	return wb.offsets[i+1]
}

// WordAt returns the word segment containing pos and its [start, end) span.
func (wb *WordBoundary) WordAt(pos int) (string, int, int) {
	i := wb.segmentAt(pos)
	if !wb.isWordSegmentSafe(i) {
		return "", pos, pos
	}
	return wb.words[i], wb.offsets[i], wb.offsets[i+1]
}

// SelectWord returns the [start, end) span of the word at pos, for the
// Word selection mode's "select" step.
func (wb *WordBoundary) SelectWord(pos int) (int, int) {
	return wb.CurrentWordStart(pos), wb.CurrentWordEnd(pos)
}

// NextWordBounds returns the [start, end) of the first word segment
// starting at-or-after pos, used when the Word mode advances the selection
// to the next token rather than extending the current one.
func (wb *WordBoundary) NextWordBounds(pos int) (int, int) {
	i := wb.segmentAt(pos)
	if i < 0 {
		i = 0
	}
	for j := i; j < len(wb.words); j++ {
		if wb.isWordSegment(j) && wb.offsets[j] >= pos {
			return wb.offsets[j], wb.offsets[j+1]
		}
	}
	end := wb.offsets[len(wb.offsets)-1]
	return end, end
}

// PrevWordBounds returns the [start, end) of the word segment immediately
// before pos, used when the Word mode steps backward.
func (wb *WordBoundary) PrevWordBounds(pos int) (int, int) {
	i := wb.segmentAt(pos)
	for j := i; j >= 0; j-- {
		if wb.isWordSegment(j) && wb.offsets[j+1] <= pos {
			return wb.offsets[j], wb.offsets[j+1]
		}
	}
	return 0, 0
}
