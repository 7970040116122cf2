package selection

import (
	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/rope"
)

func clampChar(pos coord.CharIndex, length int) coord.CharIndex {
	if pos < 0 {
		return 0
	}
	if int(pos) > length {
		return coord.CharIndex(length)
	}
	return pos
}

func stepCharacter(current Selection, dir Direction, cursorDir CursorDirection, ctx Context) (Selection, error) {
	length := ctx.Rope.Len()
	caret := current.Range.CaretAt(cursorDir)
	switch dir {
	case DirForward:
		caret = clampChar(caret+1, length)
	case DirBackward:
		caret = clampChar(caret-1, length)
	}
	end := clampChar(caret+1, length)
	if caret >= end {
		if caret > 0 {
			return Selection{Range: Point(caret)}, nil
		}
		end = caret
	}
	return Selection{Range: Range{Anchor: caret, Head: end}}, nil
}

func stepWord(current Selection, dir Direction, cursorDir CursorDirection, ctx Context) (Selection, error) {
	wb := rope.NewWordBoundary(ctx.Rope)
	caret := current.Range.CaretAt(cursorDir)
	switch dir {
	case DirForward:
		start, end := wb.NextWordBounds(int(caret) + 1)
		return Selection{Range: withDirection(coord.CharIndex(start), coord.CharIndex(end), true)}, nil
	case DirBackward:
		start, end := wb.PrevWordBounds(int(caret))
		return Selection{Range: withDirection(coord.CharIndex(start), coord.CharIndex(end), true)}, nil
	default:
		start, end := wb.SelectWord(int(caret))
		return Selection{Range: withDirection(coord.CharIndex(start), coord.CharIndex(end), true)}, nil
	}
}

func stepLine(mode Mode, current Selection, dir Direction, cursorDir CursorDirection, ctx Context) (Selection, error) {
	caret := current.Range.CaretAt(cursorDir)
	if cursorDir == CursorEnd && caret > current.Range.From() {
		// To() is exclusive: a full line's end sits on the next row.
		caret--
	}
	pos, err := ctx.Rope.CharToPosition(caret)
	if err != nil {
		return current, err
	}
	line := pos.Row
	switch dir {
	case DirForward:
		line++
	case DirBackward:
		line--
	}
	if line < 0 {
		line = 0
	}
	if line >= ctx.Rope.LineCount() {
		line = ctx.Rope.LineCount() - 1
	}
	start, err := ctx.Rope.LineStart(line)
	if err != nil {
		return current, err
	}
	var text string
	if mode.LineFull {
		text, err = ctx.Rope.LineWithEnding(line)
	} else {
		text, err = ctx.Rope.Line(line)
	}
	if err != nil {
		return current, err
	}
	end := start + coord.CharIndex(len([]rune(text)))
	return Selection{Range: withDirection(start, end, true)}, nil
}
