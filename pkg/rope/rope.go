// Package rope implements the persistent text container the engine addresses
// with coord.CharIndex positions: a leaf/internal-node tree with O(1) length
// queries, following the "Ropes: an Alternative to Strings" (Boehm,
// Atkinson, Plass) design. The tree is never rebalanced, so the cost of
// slice/insert/delete grows with its depth, which grows with each edit.
//
// A Rope is immutable: every mutating operation returns a new Rope and
// leaves the receiver untouched, so a Rope can be captured by an undo stack
// entry or a selection's yank slot without defensive copying.
package rope

import (
	"strings"
	"unicode/utf8"

	"github.com/coreseekdev/texere-core/pkg/coord"
)

// Rope is an immutable sequence of characters.
type Rope struct {
	root   node
	length int // characters
	size   int // bytes
}

// node is the interface satisfied by both tree node kinds.
type node interface {
	charLen() int
	byteLen() int
	slice(start, end int) string
}

type leaf struct {
	text string
}

type branch struct {
	left, right   node
	leftChars     int
	leftBytes     int
}

func (n *leaf) charLen() int { return utf8.RuneCountInString(n.text) }
func (n *leaf) byteLen() int { return len(n.text) }

func (n *leaf) slice(start, end int) string {
	bs := byteOffsetOf(n.text, start)
	be := byteOffsetOf(n.text, end)
	return n.text[bs:be]
}

func (n *branch) charLen() int { return n.leftChars + n.right.charLen() }
func (n *branch) byteLen() int { return n.leftBytes + n.right.byteLen() }

func (n *branch) slice(start, end int) string {
	if end <= n.leftChars {
		return n.left.slice(start, end)
	}
	if start >= n.leftChars {
		return n.right.slice(start-n.leftChars, end-n.leftChars)
	}
	return n.left.slice(start, n.leftChars) + n.right.slice(0, end-n.leftChars)
}

// byteOffsetOf walks s counting runes to find the byte offset of the
// charIdx-th rune boundary.
func byteOffsetOf(s string, charIdx int) int {
	b := 0
	for i := 0; i < charIdx; i++ {
		_, sz := utf8.DecodeRuneInString(s[b:])
		b += sz
	}
	return b
}

// New builds a Rope from text. An empty string yields Empty().
func New(text string) *Rope {
	if text == "" {
		return Empty()
	}
	return &Rope{root: &leaf{text: text}, length: utf8.RuneCountInString(text), size: len(text)}
}

// Empty returns a zero-length Rope.
func Empty() *Rope {
	return &Rope{root: &leaf{text: ""}}
}

// Len returns the character count. Safe on a nil Rope.
func (r *Rope) Len() int {
	if r == nil {
		return 0
	}
	return r.length
}

// ByteLen returns the byte count. Safe on a nil Rope.
func (r *Rope) ByteLen() int {
	if r == nil {
		return 0
	}
	return r.size
}

// String renders the full content.
func (r *Rope) String() string {
	if r == nil || r.length == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(r.size)
	collect(r.root, &b)
	return b.String()
}

func collect(n node, b *strings.Builder) {
	switch v := n.(type) {
	case *leaf:
		b.WriteString(v.text)
	case *branch:
		collect(v.left, b)
		collect(v.right, b)
	}
}

// Slice returns the text in [start, end) of characters.
func (r *Rope) Slice(start, end coord.CharIndex) (string, error) {
	if r == nil {
		if start == 0 && end == 0 {
			return "", nil
		}
		return "", errOutOfBounds("slice", int(start), int(end), 0)
	}
	if start < 0 || int(end) > r.length || start > end {
		return "", errOutOfBounds("slice", int(start), int(end), r.length)
	}
	if start == end {
		return "", nil
	}
	return r.root.slice(int(start), int(end)), nil
}

// MustSlice is Slice without the error return, for call sites that have
// already validated the range (e.g. against a Selection drawn from this
// same Rope). It panics on an invalid range — a programmer error, not a
// recoverable command failure.
func (r *Rope) MustSlice(start, end coord.CharIndex) string {
	s, err := r.Slice(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func concat(l, rr node) node {
	if l.charLen() == 0 {
		return rr
	}
	if rr.charLen() == 0 {
		return l
	}
	return &branch{left: l, right: rr, leftChars: l.charLen(), leftBytes: l.byteLen()}
}

func split(n node, pos int) (node, node) {
	if lf, ok := n.(*leaf); ok {
		b := byteOffsetOf(lf.text, pos)
		left, right := lf.text[:b], lf.text[b:]
		var ln, rn node
		if left != "" {
			ln = &leaf{text: left}
		} else {
			ln = &leaf{text: ""}
		}
		if right != "" {
			rn = &leaf{text: right}
		} else {
			rn = &leaf{text: ""}
		}
		return ln, rn
	}
	br := n.(*branch)
	if pos <= br.leftChars {
		ll, lr := split(br.left, pos)
		return ll, concat(lr, br.right)
	}
	rl, rr := split(br.right, pos-br.leftChars)
	return concat(br.left, rl), rr
}

func insertAt(n node, pos int, text string) node {
	if n.charLen() == 0 {
		return &leaf{text: text}
	}
	if lf, ok := n.(*leaf); ok {
		b := byteOffsetOf(lf.text, pos)
		return concat(&leaf{text: lf.text[:b] + text}, &leaf{text: lf.text[b:]})
	}
	br := n.(*branch)
	if pos <= br.leftChars {
		nl := insertAt(br.left, pos, text)
		return &branch{left: nl, right: br.right, leftChars: nl.charLen(), leftBytes: nl.byteLen()}
	}
	nr := insertAt(br.right, pos-br.leftChars, text)
	return &branch{left: br.left, right: nr, leftChars: br.leftChars, leftBytes: br.leftBytes}
}

func deleteRange(n node, start, end int) node {
	if n.charLen() == 0 || start >= end {
		return n
	}
	if lf, ok := n.(*leaf); ok {
		bs := byteOffsetOf(lf.text, start)
		be := byteOffsetOf(lf.text, end)
		return &leaf{text: lf.text[:bs] + lf.text[be:]}
	}
	br := n.(*branch)
	if end <= br.leftChars {
		return concat(deleteRange(br.left, start, end), br.right)
	}
	if start >= br.leftChars {
		return concat(br.left, deleteRange(br.right, start-br.leftChars, end-br.leftChars))
	}
	return concat(deleteRange(br.left, start, br.leftChars), deleteRange(br.right, 0, end-br.leftChars))
}

// Insert returns a new Rope with text inserted at pos.
func (r *Rope) Insert(pos coord.CharIndex, text string) (*Rope, error) {
	if r == nil {
		if pos == 0 {
			return New(text), nil
		}
		return nil, errOutOfBounds("insert", int(pos), int(pos), 0)
	}
	if pos < 0 || int(pos) > r.length {
		return nil, errOutOfBounds("insert", int(pos), int(pos), r.length)
	}
	if text == "" {
		return r, nil
	}
	newRoot := insertAt(r.root, int(pos), text)
	return &Rope{root: newRoot, length: r.length + utf8.RuneCountInString(text), size: r.size + len(text)}, nil
}

// Delete returns a new Rope with [start, end) removed.
func (r *Rope) Delete(start, end coord.CharIndex) (*Rope, error) {
	if r == nil {
		return nil, errOutOfBounds("delete", int(start), int(end), 0)
	}
	if start < 0 || int(end) > r.length || start > end {
		return nil, errOutOfBounds("delete", int(start), int(end), r.length)
	}
	if start == end {
		return r, nil
	}
	removed := r.root.slice(int(start), int(end))
	newRoot := deleteRange(r.root, int(start), int(end))
	return &Rope{root: newRoot, length: r.length - utf8.RuneCountInString(removed), size: r.size - len(removed)}, nil
}

// Replace deletes [start, end) and inserts text in its place, returning the
// resulting Rope. It is a convenience composition of Delete then Insert;
// pkg/edit's Apply checks the "old" slice with Slice before calling it.
func (r *Rope) Replace(start, end coord.CharIndex, text string) (*Rope, error) {
	deleted, err := r.Delete(start, end)
	if err != nil {
		return nil, err
	}
	return deleted.Insert(start, text)
}

// Split divides the rope at pos into [0,pos) and [pos,len).
func (r *Rope) Split(pos coord.CharIndex) (*Rope, *Rope, error) {
	if r == nil {
		if pos == 0 {
			return Empty(), Empty(), nil
		}
		return nil, nil, errOutOfBounds("split", int(pos), int(pos), 0)
	}
	if pos < 0 || int(pos) > r.length {
		return nil, nil, errOutOfBounds("split", int(pos), int(pos), r.length)
	}
	if pos == 0 {
		return Empty(), r, nil
	}
	if int(pos) == r.length {
		return r, Empty(), nil
	}
	l, rr := split(r.root, int(pos))
	left := &Rope{root: l, length: int(pos), size: l.byteLen()}
	right := &Rope{root: rr, length: r.length - int(pos), size: rr.byteLen()}
	return left, right, nil
}

// Concat joins two ropes.
func (r *Rope) Concat(other *Rope) *Rope {
	if r == nil || r.length == 0 {
		return other
	}
	if other == nil || other.length == 0 {
		return r
	}
	return &Rope{root: concat(r.root, other.root), length: r.length + other.length, size: r.size + other.size}
}

// Equal reports whether two ropes hold identical text.
func (r *Rope) Equal(other *Rope) bool {
	return r.String() == other.String()
}
