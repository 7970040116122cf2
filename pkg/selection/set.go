package selection

import "sort"

// SelectionSet is a primary Selection plus ordered, non-overlapping
// secondaries sharing one Mode.
type SelectionSet struct {
	Primary      Selection
	Secondary    []Selection
	Mode         Mode
	CursorDir    CursorDirection
	Highlight    bool // widens each step to the union of anchor and caret
}

// NewSelectionSet returns a set containing only the given primary.
func NewSelectionSet(primary Selection, mode Mode) *SelectionSet {
	return &SelectionSet{Primary: primary, Mode: mode}
}

// All returns every selection, primary first, in the order they'd be
// stored after a Normalize (secondaries sorted by range start).
func (s *SelectionSet) All() []Selection {
	out := make([]Selection, 0, len(s.Secondary)+1)
	out = append(out, s.Primary)
	out = append(out, s.Secondary...)
	return out
}

// Normalize sorts Secondary by range start, matching the invariant
// "ordering of secondaries is by range start" (spec.md §3).
func (s *SelectionSet) Normalize() {
	sort.Slice(s.Secondary, func(i, j int) bool {
		return s.Secondary[i].Range.From() < s.Secondary[j].Range.From()
	})
}

// Generate applies Step to every selection in the set independently,
// preserving cursor lineage. When two results collide (overlap), the
// later one in iteration order is discarded; the primary always survives.
func (s *SelectionSet) Generate(dir Direction, ctx Context) (*SelectionSet, error) {
	newPrimary, err := Step(s.Mode, s.Primary, dir, s.CursorDir, ctx)
	if err != nil && err != ErrRegexCompilation {
		return s, err
	}
	if s.Highlight {
		newPrimary = highlightExtend(s.Primary, newPrimary)
	}
	newPrimary.Yanked = s.Primary.Yanked

	kept := []Selection{}
	for _, sel := range s.Secondary {
		next, serr := Step(s.Mode, sel, dir, s.CursorDir, ctx)
		if serr != nil && serr != ErrRegexCompilation {
			continue
		}
		if s.Highlight {
			next = highlightExtend(sel, next)
		}
		next.Yanked = sel.Yanked
		if next.Range.Overlaps(newPrimary.Range) {
			continue
		}
		collides := false
		for _, k := range kept {
			if k.Range.Overlaps(next.Range) {
				collides = true
				break
			}
		}
		if !collides {
			kept = append(kept, next)
		}
	}

	out := &SelectionSet{Primary: newPrimary, Secondary: kept, Mode: s.Mode, CursorDir: s.CursorDir, Highlight: s.Highlight}
	out.Normalize()
	return out, nil
}

// highlightExtend widens next to cover the union of prev's anchor and
// next's caret, realizing the "selection extension" behavior the original
// source left commented out (§9).
func highlightExtend(prev, next Selection) Selection {
	anchor := prev.Range.Anchor
	head := next.Range.Head
	return Selection{Range: Range{Anchor: anchor, Head: head}, NodeID: next.NodeID, Yanked: next.Yanked}
}

// SwitchMode changes the set's mode only; ranges and CursorDir are left
// as they are. Callers may use Similar to decide whether
// to re-run Generate(DirCurrent, ...) (dissimilar modes) or keep the
// current ranges as-is (similar modes, e.g. Token -> NamedNode).
func (s *SelectionSet) SwitchMode(mode Mode) {
	s.Mode = mode
}
