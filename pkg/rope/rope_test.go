package rope

import (
	"testing"

	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndString(t *testing.T) {
	r := New("hello world")
	assert.Equal(t, "hello world", r.String())
	assert.Equal(t, 11, r.Len())
}

func TestEmptyRope(t *testing.T) {
	r := Empty()
	assert.Equal(t, "", r.String())
	assert.Equal(t, 0, r.Len())
}

func TestInsert(t *testing.T) {
	r := New("hello world")
	r2, err := r.Insert(5, ",")
	require.NoError(t, err)
	assert.Equal(t, "hello, world", r2.String())
	// original untouched
	assert.Equal(t, "hello world", r.String())
}

func TestInsertOutOfBounds(t *testing.T) {
	r := New("abc")
	_, err := r.Insert(10, "x")
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	r := New("hello, world")
	r2, err := r.Delete(5, 6)
	require.NoError(t, err)
	assert.Equal(t, "hello world", r2.String())
}

func TestReplace(t *testing.T) {
	r := New("the quick fox")
	r2, err := r.Replace(4, 9, "slow")
	require.NoError(t, err)
	assert.Equal(t, "the slow fox", r2.String())
}

func TestSliceBounds(t *testing.T) {
	r := New("abcdef")
	s, err := r.Slice(2, 4)
	require.NoError(t, err)
	assert.Equal(t, "cd", s)

	_, err = r.Slice(4, 2)
	assert.Error(t, err)

	_, err = r.Slice(0, 100)
	assert.Error(t, err)
}

func TestSplitConcat(t *testing.T) {
	r := New("abcdefgh")
	left, right, err := r.Split(3)
	require.NoError(t, err)
	assert.Equal(t, "abc", left.String())
	assert.Equal(t, "defgh", right.String())

	joined := left.Concat(right)
	assert.Equal(t, r.String(), joined.String())
}

func TestUnicodeRoundtrip(t *testing.T) {
	text := "héllo 世界 🎉!"
	r := New(text)
	assert.Equal(t, len([]rune(text)), r.Len())

	r2, err := r.Insert(coord.CharIndex(len([]rune("héllo "))), "大")
	require.NoError(t, err)
	assert.Contains(t, r2.String(), "大")
}

func TestLineOps(t *testing.T) {
	r := New("one\ntwo\nthree")
	assert.Equal(t, 3, r.LineCount())

	l0, err := r.Line(0)
	require.NoError(t, err)
	assert.Equal(t, "one", l0)

	l1, err := r.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "two", l1)

	start, err := r.LineStart(2)
	require.NoError(t, err)
	assert.Equal(t, coord.CharIndex(8), start)
}

func TestCharToPositionRoundtrip(t *testing.T) {
	r := New("abc\ndef\nghi")
	pos, err := r.CharToPosition(5) // 'e' in "def"
	require.NoError(t, err)
	assert.Equal(t, coord.Position{Row: 1, Column: 1}, pos)

	ci, err := r.PositionToChar(pos)
	require.NoError(t, err)
	assert.Equal(t, coord.CharIndex(5), ci)
}

func TestIterator(t *testing.T) {
	r := New("abc")
	it := r.NewIterator()
	var got []rune
	for it.Next() {
		got = append(got, it.Current())
	}
	assert.Equal(t, []rune("abc"), got)
}

func TestWordBoundaryBasic(t *testing.T) {
	r := New("the quick fox")
	wb := NewWordBoundary(r)

	start, end := wb.SelectWord(4) // inside "quick"
	assert.Equal(t, "quick", r.MustSlice(coord.CharIndex(start), coord.CharIndex(end)))

	next := wb.NextWordStart(0)
	assert.Equal(t, 4, next)

	prev := wb.PrevWordStart(9)
	assert.Equal(t, 4, prev)
}

func TestWordBoundaryEmpty(t *testing.T) {
	r := Empty()
	wb := NewWordBoundary(r)
	assert.Equal(t, 0, wb.NextWordStart(0))
	assert.Equal(t, 0, wb.PrevWordStart(0))
	start, end := wb.SelectWord(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}
