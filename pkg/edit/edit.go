// Package edit implements the EditTransaction model: a composable,
// invertible batch of (Edit, Select) actions spanning a selection set.
package edit

import (
	"errors"
	"fmt"
	"sort"

	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/selection"
)

// ErrOutOfBounds is returned when an Edit's Start exceeds the rope length.
var ErrOutOfBounds = errors.New("edit: out of bounds")

// ErrInvariantViolation is returned when an Edit's Old text does not match
// the slice it claims to replace.
var ErrInvariantViolation = errors.New("edit: old text does not match buffer slice")

// ErrOverlap is returned when two Edits in the same ActionGroup overlap.
var ErrOverlap = errors.New("edit: overlapping edits in one action group")

// Edit is a single textual replacement: Old occupied [Start, Start+Old.Len())
// before the edit; New occupies that span afterward.
type Edit struct {
	Start coord.CharIndex
	Old   *rope.Rope
	New   *rope.Rope
}

// End returns the end of the pre-image span this edit replaces.
func (e Edit) End() coord.CharIndex { return e.Start + coord.CharIndex(e.Old.Len()) }

// Delta returns the net character-count change New introduces over Old.
func (e Edit) Delta() int { return e.New.Len() - e.Old.Len() }

// Invert swaps Old and New, yielding the edit that undoes e.
func (e Edit) Invert() Edit { return Edit{Start: e.Start, Old: e.New, New: e.Old} }

// Shift returns a copy of e with Start moved by delta characters, used by
// Merge to renormalize a later transaction's coordinates.
func (e Edit) Shift(delta int) Edit {
	e.Start = e.Start + coord.CharIndex(delta)
	return e
}

// ActionKind tags an Action as an Edit or a Select.
type ActionKind int

const (
	ActionEdit ActionKind = iota
	ActionSelect
)

// Action is one member of an ActionGroup: either an Edit or a Select,
// tagged with the cursor lineage it belongs to (the index of the
// selection in the pre-image SelectionSet's All() ordering).
type Action struct {
	Kind    ActionKind
	Lineage int
	Edit    Edit
	Select  selection.Selection
}

// EditAction builds an Edit action for the given cursor lineage.
func EditAction(lineage int, e Edit) Action {
	return Action{Kind: ActionEdit, Lineage: lineage, Edit: e}
}

// SelectAction builds a Select action for the given cursor lineage.
func SelectAction(lineage int, s selection.Selection) Action {
	return Action{Kind: ActionSelect, Lineage: lineage, Select: s}
}

// ActionGroup is a list of actions that are logically simultaneous: no
// action shifts a later action's coordinates within the same group.
type ActionGroup []Action

// edits returns g's Edit actions, in group order.
func (g ActionGroup) edits() []Edit {
	var out []Edit
	for _, a := range g {
		if a.Kind == ActionEdit {
			out = append(out, a.Edit)
		}
	}
	return out
}

func (g ActionGroup) validate() error {
	edits := g.edits()
	sort.Slice(edits, func(i, j int) bool { return edits[i].Start < edits[j].Start })
	for i := 1; i < len(edits); i++ {
		if edits[i].Start < edits[i-1].End() {
			return fmt.Errorf("%w: edit at %d overlaps edit ending at %d", ErrOverlap, edits[i].Start, edits[i-1].End())
		}
	}
	return nil
}

// EditTransaction is an ordered list of ActionGroups plus the pre-image
// SelectionSet they were built against.
type EditTransaction struct {
	PreImage *selection.SelectionSet
	Groups   []ActionGroup
}

// FromActionGroups constructs a transaction, validating that edits within
// each group do not overlap.
func FromActionGroups(pre *selection.SelectionSet, groups []ActionGroup) (*EditTransaction, error) {
	for _, g := range groups {
		if err := g.validate(); err != nil {
			return nil, err
		}
	}
	return &EditTransaction{PreImage: pre, Groups: groups}, nil
}

// Edits returns every Edit across all groups, in source (group, then
// within-group) order.
func (t *EditTransaction) Edits() []Edit {
	var out []Edit
	for _, g := range t.Groups {
		out = append(out, g.edits()...)
	}
	return out
}

// Selections returns the final Select action per cursor lineage, ordered
// primary-first (lineage 0 is always the primary by construction).
func (t *EditTransaction) Selections() []selection.Selection {
	byLineage := map[int]selection.Selection{}
	var order []int
	for _, g := range t.Groups {
		for _, a := range g {
			if a.Kind != ActionSelect {
				continue
			}
			if _, seen := byLineage[a.Lineage]; !seen {
				order = append(order, a.Lineage)
			}
			byLineage[a.Lineage] = a.Select
		}
	}
	sort.Ints(order)
	out := make([]selection.Selection, 0, len(order))
	for _, l := range order {
		out = append(out, byLineage[l])
	}
	return out
}

// Bounds returns the min/max CharIndex touched by any edit in t.
func (t *EditTransaction) Bounds() (coord.CharIndex, coord.CharIndex) {
	edits := t.Edits()
	if len(edits) == 0 {
		return 0, 0
	}
	min, max := edits[0].Start, edits[0].End()
	for _, e := range edits[1:] {
		if e.Start < min {
			min = e.Start
		}
		if e.End() > max {
			max = e.End()
		}
	}
	return min, max
}

// Invert returns the transaction that undoes t: every Edit has Old/New
// swapped, and groups are reversed so replaying left-to-right undoes the
// latest group first.
func (t *EditTransaction) Invert() *EditTransaction {
	groups := make([]ActionGroup, len(t.Groups))
	for i, g := range t.Groups {
		inv := make(ActionGroup, 0, len(g))
		for _, a := range g {
			if a.Kind == ActionEdit {
				inv = append(inv, EditAction(a.Lineage, a.Edit.Invert()))
			} else {
				inv = append(inv, a)
			}
		}
		groups[len(t.Groups)-1-i] = inv
	}
	return &EditTransaction{PreImage: t.PreImage, Groups: groups}
}

// Merge concatenates transactions, shifting each subsequent transaction's
// edit coordinates by the net length delta of all previously applied
// edits whose start is at or before the current edit's start.
func Merge(pre *selection.SelectionSet, txs []*EditTransaction) *EditTransaction {
	var merged []ActionGroup
	var earlier []Edit
	for _, tx := range txs {
		for _, g := range tx.Groups {
			shifted := make(ActionGroup, len(g))
			for i, a := range g {
				if a.Kind == ActionEdit {
					delta := 0
					for _, prev := range earlier {
						if prev.Start <= a.Edit.Start {
							delta += prev.Delta()
						}
					}
					a.Edit = a.Edit.Shift(delta)
				}
				shifted[i] = a
			}
			merged = append(merged, shifted)
		}
		earlier = append(earlier, tx.Edits()...)
	}
	return &EditTransaction{PreImage: pre, Groups: merged}
}
