package edit

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/syntax"
	"github.com/sirupsen/logrus"
)

// Apply performs apply_edit_transaction: given the current rope/tree and a
// transaction, produces the post-image rope and tree. Groups are applied in
// order, and each group's edits in Start order, against the rope as it
// stands at that point; the tree is
// then fully reparsed (via parser.Reparse, with edit descriptors as
// incremental hints — a pure-Go reference grammar has no obligation to
// actually reuse the old tree, only to accept the hint).
//
// A group whose Old text has drifted from the buffer (ErrInvariantViolation)
// or whose Start has run past the buffer's end (ErrOutOfBounds) is fatal
// only to that ActionGroup: Apply logs the inconsistency and skips the
// group entirely (none of its edits land), then proceeds with the
// transaction's remaining groups rather than discarding every other
// cursor's edit along with it. Any other error (a rope operation actually
// failing) still aborts the whole call without mutating anything, since
// that signals a real bug rather than a stale-state race.
func Apply(ctx context.Context, r *rope.Rope, tree syntax.Tree, parser syntax.Parser, tx *EditTransaction) (*rope.Rope, syntax.Tree, error) {
	cur := r
	var syntaxEdits []syntax.Edit

	// Edits within one group are simultaneous: all Starts are stated
	// against that group's own pre-image, so applying them one at a time
	// to the progressively-mutated rope requires shifting each edit's
	// Start by the cumulative delta of the group's own edits applied so
	// far (the same renormalization Merge applies across transactions).
	// A later group's edits are already stated relative to the rope as
	// it stands after earlier groups, per spec's two-group exchange
	// transaction, so the shift resets to zero at each group boundary.
	for gi, g := range tx.Groups {
		edits := append([]Edit(nil), g.edits()...)
		sort.Slice(edits, func(i, j int) bool { return edits[i].Start < edits[j].Start })

		groupRope := cur
		var groupSyntaxEdits []syntax.Edit
		delta := 0
		skipped := false
		for _, e := range edits {
			shifted := e.Shift(delta)
			if int(shifted.Start) > groupRope.Len() {
				logSkippedGroup(gi, fmt.Errorf("%w: edit start %d beyond buffer length %d", ErrOutOfBounds, shifted.Start, groupRope.Len()))
				skipped = true
				break
			}
			oldEnd := shifted.End()
			actual, err := groupRope.Slice(shifted.Start, oldEnd)
			if err != nil {
				logSkippedGroup(gi, fmt.Errorf("%w: %v", ErrOutOfBounds, err))
				skipped = true
				break
			}
			if actual != shifted.Old.String() {
				logSkippedGroup(gi, fmt.Errorf("%w: at %d expected %q, found %q", ErrInvariantViolation, shifted.Start, shifted.Old.String(), actual))
				skipped = true
				break
			}

			startPos, _ := groupRope.CharToPosition(shifted.Start)
			oldEndPos, _ := groupRope.CharToPosition(oldEnd)

			next, err := groupRope.Replace(shifted.Start, oldEnd, shifted.New.String())
			if err != nil {
				return nil, nil, err
			}

			newEndPos, _ := next.CharToPosition(shifted.Start + coord.CharIndex(shifted.New.Len()))
			groupSyntaxEdits = append(groupSyntaxEdits, syntax.Edit{
				StartChar:  shifted.Start,
				OldEndChar: oldEnd,
				NewEndChar: shifted.Start + coord.CharIndex(shifted.New.Len()),
				StartPos:   startPos,
				OldEndPos:  oldEndPos,
				NewEndPos:  newEndPos,
			})
			groupRope = next
			delta += e.Delta()
		}
		if skipped {
			continue
		}
		cur = groupRope
		syntaxEdits = append(syntaxEdits, groupSyntaxEdits...)
	}

	if parser == nil {
		return cur, tree, nil
	}
	newTree, err := parser.Reparse(ctx, tree, syntaxEdits, cur.String())
	if err != nil {
		return nil, nil, err
	}
	return cur, newTree, nil
}

// logSkippedGroup records a group Apply dropped rather than letting
// abort the whole transaction, per the engine's documented preference for
// partial progress over an all-or-nothing multi-cursor command.
func logSkippedGroup(index int, err error) {
	kind := "out_of_bounds"
	if errors.Is(err, ErrInvariantViolation) {
		kind = "invariant_violation"
	}
	logrus.WithFields(logrus.Fields{
		"group":      index,
		"error_kind": kind,
	}).Warnf("edit: skipping action group: %v", err)
}
