// Package jump implements labelled jump-target generation: starting from
// the current selection, it repeatedly steps the active SelectionMode in
// one direction and labels each resulting candidate with a single
// character, the way the editor's Jump mode presents "press a letter to
// teleport" targets.
package jump

import (
	"errors"

	"github.com/coreseekdev/texere-core/pkg/selection"
	"github.com/google/uuid"
)

// Alphabet is the ordered set of label characters: a..z and A..Z minus
// j/J (reserved to re-enter Jump forward/backward from the current
// extremum), then 0..9, then ',' and '.'.
var Alphabet = buildAlphabet()

func buildAlphabet() []rune {
	var out []rune
	for c := 'a'; c <= 'z'; c++ {
		if c == 'j' {
			continue
		}
		out = append(out, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		if c == 'J' {
			continue
		}
		out = append(out, c)
	}
	for c := '0'; c <= '9'; c++ {
		out = append(out, c)
	}
	out = append(out, ',', '.')
	return out
}

// MaxCandidates bounds how many jumps a single session labels, per the
// "up to 64 candidates" traversal limit; Alphabet itself only has 62
// members, so this ceiling is never the binding constraint in practice.
const MaxCandidates = 64

// ErrNoCandidates is returned when stepping the mode from the start
// selection produces nothing (e.g. already at the buffer's edge).
var ErrNoCandidates = errors.New("jump: no candidates")

// Jump pairs a label character with the selection it would install, and a
// uuid identity distinguishing it from a same-labelled jump generated in a
// later session (a debugging/testing aid only: key dispatch looks at
// Label alone).
type Jump struct {
	ID        uuid.UUID
	Label     rune
	Selection selection.Selection
}

// Generate walks mode in direction dir from start, one Step call per
// candidate, labelling each distinct selection it lands on with the next
// Alphabet character, until the mode stops advancing, MaxCandidates is
// reached, or the alphabet is exhausted.
func Generate(mode selection.Mode, start selection.Selection, dir selection.Direction, cursorDir selection.CursorDirection, ctx selection.Context) ([]Jump, error) {
	var jumps []Jump
	cur := start
	limit := MaxCandidates
	if len(Alphabet) < limit {
		limit = len(Alphabet)
	}
	for i := 0; i < limit; i++ {
		next, err := selection.Step(mode, cur, dir, cursorDir, ctx)
		if err != nil {
			break
		}
		if next.Range == cur.Range {
			break
		}
		jumps = append(jumps, Jump{
			ID:        newID(),
			Label:     Alphabet[len(jumps)],
			Selection: next,
		})
		cur = next
	}
	if len(jumps) == 0 {
		return nil, ErrNoCandidates
	}
	return jumps, nil
}

// ByLabel finds the jump carrying label, if any.
func ByLabel(jumps []Jump, label rune) (Jump, bool) {
	for _, j := range jumps {
		if j.Label == label {
			return j, true
		}
	}
	return Jump{}, false
}

// newID is a var so tests can stub determinism if ever needed; production
// code always uses uuid.New.
var newID = uuid.New
