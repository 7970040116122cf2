package rope

import "fmt"

// BoundsError reports an operation attempted outside the rope's valid
// character range.
type BoundsError struct {
	Op     string
	Start  int
	End    int
	Length int
}

func (e *BoundsError) Error() string {
	if e.Start == e.End {
		return fmt.Sprintf("rope: %s at %d out of bounds (length %d)", e.Op, e.Start, e.Length)
	}
	return fmt.Sprintf("rope: %s [%d,%d) out of bounds (length %d)", e.Op, e.Start, e.End, e.Length)
}

func errOutOfBounds(op string, start, end, length int) error {
	return &BoundsError{Op: op, Start: start, End: end, Length: length}
}
