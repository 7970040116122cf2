// Package selection implements the Selection/SelectionSet data model and
// the per-mode "step" navigation engine: the function that, given a
// current Selection and a direction, yields the next Selection under a
// SelectionMode.
package selection

import (
	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/google/uuid"
)

// Range is a half-open CharIndex span addressed by anchor/head rather than
// start/end: the anchor is the end that stays put while extending, the
// head is the end that moves. A zero-width range (Anchor == Head) is a
// cursor.
type Range struct {
	Anchor coord.CharIndex
	Head   coord.CharIndex
}

// NewRange builds a Range from an explicit anchor/head pair.
func NewRange(anchor, head coord.CharIndex) Range {
	return Range{Anchor: anchor, Head: head}
}

// Point returns a zero-width Range (a cursor) at pos.
func Point(pos coord.CharIndex) Range { return Range{Anchor: pos, Head: pos} }

// From returns the lesser of Anchor/Head.
func (r Range) From() coord.CharIndex {
	if r.Anchor < r.Head {
		return r.Anchor
	}
	return r.Head
}

// To returns the greater of Anchor/Head.
func (r Range) To() coord.CharIndex {
	if r.Anchor > r.Head {
		return r.Anchor
	}
	return r.Head
}

// Len returns To() - From().
func (r Range) Len() coord.CharIndex { return r.To() - r.From() }

// IsCursor reports whether the range is zero-width.
func (r Range) IsCursor() bool { return r.Anchor == r.Head }

// IsForward reports whether Anchor <= Head.
func (r Range) IsForward() bool { return r.Anchor <= r.Head }

// Contains reports whether pos falls in [From, To).
func (r Range) Contains(pos coord.CharIndex) bool { return pos >= r.From() && pos < r.To() }

// Overlaps reports whether r and other share a character position.
func (r Range) Overlaps(other Range) bool {
	return r.From() < other.To() && other.From() < r.To()
}

// ToCoordRange converts to a plain coord.Range for rope/syntax calls.
func (r Range) ToCoordRange() coord.Range { return coord.Range{Start: r.From(), End: r.To()} }

// CaretAt returns the logical caret position for the given CursorDirection.
func (r Range) CaretAt(dir CursorDirection) coord.CharIndex {
	if dir == CursorEnd {
		return r.To()
	}
	return r.From()
}

// withDirection returns an equivalent Range whose Anchor/Head order
// matches forward, used when a step needs to produce a range with a known
// orientation (e.g. always anchor-before-head for a freshly selected
// node).
func withDirection(from, to coord.CharIndex, forward bool) Range {
	if forward {
		return Range{Anchor: from, Head: to}
	}
	return Range{Anchor: to, Head: from}
}

// CursorDirection names which end of a Range the logical caret sits on.
type CursorDirection int

const (
	CursorStart CursorDirection = iota
	CursorEnd
)

// Toggle flips Start<->End.
func (d CursorDirection) Toggle() CursorDirection {
	if d == CursorStart {
		return CursorEnd
	}
	return CursorStart
}

// Selection is one cursor: a Range plus the optional tree-node identity it
// last tracked and its private yank slot.
type Selection struct {
	Range   Range
	NodeID  *uuid.UUID
	Yanked  *rope.Rope
}

// NewSelection returns a Selection with no node identity and no yanked text.
func NewSelection(r Range) Selection { return Selection{Range: r} }

// WithNodeID returns a copy of s tagged with the given node identity.
func (s Selection) WithNodeID(id uuid.UUID) Selection {
	s.NodeID = &id
	return s
}

// WithYanked returns a copy of s carrying r as its yanked text.
func (s Selection) WithYanked(r *rope.Rope) Selection {
	s.Yanked = r
	return s
}

// Direction is the step direction requested of a SelectionMode.
type Direction int

const (
	DirCurrent Direction = iota
	DirForward
	DirBackward
)

// Bookmarks is an ordered arena of persistent CharIndex positions, owned by
// the editor (not any one SelectionSet) because a bookmark outlives the
// selection lineage that created it.
type Bookmarks []coord.CharIndex

// Add inserts pos in sorted order, ignoring an exact duplicate.
func (b *Bookmarks) Add(pos coord.CharIndex) {
	for _, p := range *b {
		if p == pos {
			return
		}
	}
	i := 0
	for i < len(*b) && (*b)[i] < pos {
		i++
	}
	*b = append(*b, 0)
	copy((*b)[i+1:], (*b)[i:])
	(*b)[i] = pos
}

// Next returns the first bookmark strictly after pos, or (0, false).
func (b Bookmarks) Next(pos coord.CharIndex) (coord.CharIndex, bool) {
	for _, p := range b {
		if p > pos {
			return p, true
		}
	}
	return 0, false
}

// Prev returns the last bookmark strictly before pos, or (0, false).
func (b Bookmarks) Prev(pos coord.CharIndex) (coord.CharIndex, bool) {
	var found coord.CharIndex
	ok := false
	for _, p := range b {
		if p < pos {
			found, ok = p, true
		}
	}
	return found, ok
}
