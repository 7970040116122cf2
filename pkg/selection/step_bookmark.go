package selection

func stepBookmark(current Selection, dir Direction, cursorDir CursorDirection, ctx Context) (Selection, error) {
	caret := current.Range.CaretAt(cursorDir)
	switch dir {
	case DirForward:
		if pos, ok := ctx.Bookmarks.Next(caret); ok {
			return Selection{Range: Point(pos)}, nil
		}
		return current, nil
	case DirBackward:
		if pos, ok := ctx.Bookmarks.Prev(caret); ok {
			return Selection{Range: Point(pos)}, nil
		}
		return current, nil
	default:
		return current, nil
	}
}
