package rope

import (
	"strings"

	"github.com/coreseekdev/texere-core/pkg/coord"
)

// CharToByte converts a character offset to the corresponding byte offset.
func (r *Rope) CharToByte(pos coord.CharIndex) (int, error) {
	if pos < 0 || int(pos) > r.Len() {
		return 0, errOutOfBounds("char_to_byte", int(pos), int(pos), r.Len())
	}
	return byteOffsetOf(r.String(), int(pos)), nil
}

// ByteToChar converts a byte offset to the corresponding character offset.
// byteOff must land on a rune boundary.
func (r *Rope) ByteToChar(byteOff int) (coord.CharIndex, error) {
	s := r.String()
	if byteOff < 0 || byteOff > len(s) {
		return 0, errOutOfBounds("byte_to_char", byteOff, byteOff, len(s))
	}
	return coord.CharIndex(len([]rune(s[:byteOff]))), nil
}

// isCRLF reports whether the rune pair at (r, next) forms a CRLF line
// ending, so line-boundary logic can treat it as a single terminator.
func isCRLF(a, b rune) bool { return a == '\r' && b == '\n' }

// LineCount returns the number of lines, counting a trailing unterminated
// line as one and an empty rope as one (matching the row count a cursor can
// occupy).
func (r *Rope) LineCount() int {
	text := r.String()
	if text == "" {
		return 1
	}
	n := 1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			n++
		case '\r':
			if i+1 >= len(text) || text[i+1] != '\n' {
				n++
			}
		}
	}
	return n
}

// LineStart returns the character offset where line (0-based) begins.
func (r *Rope) LineStart(line int) (coord.CharIndex, error) {
	if line < 0 {
		return 0, errOutOfBounds("line_start", line, line, r.LineCount())
	}
	if line == 0 {
		return 0, nil
	}
	runes := []rune(r.String())
	cur := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\n':
			cur++
			if cur == line {
				return coord.CharIndex(i + 1), nil
			}
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				continue
			}
			cur++
			if cur == line {
				return coord.CharIndex(i + 1), nil
			}
		}
	}
	return 0, errOutOfBounds("line_start", line, line, r.LineCount())
}

// Line returns line text (0-based) without its terminator.
func (r *Rope) Line(line int) (string, error) {
	s, err := r.LineWithEnding(line)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// LineWithEnding returns line text (0-based) including its terminator, if
// any (the last line of a buffer has none).
func (r *Rope) LineWithEnding(line int) (string, error) {
	start, err := r.LineStart(line)
	if err != nil {
		return "", err
	}
	runes := []rune(r.String())
	end := len(runes)
	for i := int(start); i < len(runes); i++ {
		if runes[i] == '\n' {
			end = i + 1
			break
		}
		if runes[i] == '\r' && (i+1 >= len(runes) || runes[i+1] != '\n') {
			end = i + 1
			break
		}
		if runes[i] == '\r' && runes[i+1] == '\n' {
			end = i + 2
			break
		}
	}
	return string(runes[start:end]), nil
}

// PositionToChar converts a row/column Position to a CharIndex.
func (r *Rope) PositionToChar(p coord.Position) (coord.CharIndex, error) {
	start, err := r.LineStart(p.Row)
	if err != nil {
		return 0, err
	}
	return start + coord.CharIndex(p.Column), nil
}

// CharToPosition converts a CharIndex to its row/column Position.
func (r *Rope) CharToPosition(ci coord.CharIndex) (coord.Position, error) {
	if ci < 0 || int(ci) > r.Len() {
		return coord.Position{}, errOutOfBounds("char_to_position", int(ci), int(ci), r.Len())
	}
	runes := []rune(r.String())
	row, col := 0, 0
	for i := 0; i < int(ci); i++ {
		if runes[i] == '\n' {
			row++
			col = 0
			continue
		}
		if runes[i] == '\r' && (i+1 >= len(runes) || runes[i+1] != '\n') {
			row++
			col = 0
			continue
		}
		col++
	}
	return coord.Position{Row: row, Column: col}, nil
}
