// Package editor implements the engine facade: the single type a
// frontend actually talks to, holding the rope, syntax tree, selection
// set, mode, undo/redo stacks, cursor direction, and scroll offset, and
// translating key/mouse events into edits. Grounded on the
// dshills-keystorm engine's construction/dispatch shape
// (internal/engine/engine.go, internal/input/mode/mode.go) but carrying
// no internal lock, per spec's single-threaded concurrency model.
package editor

import (
	"context"
	"io"

	"github.com/coreseekdev/texere-core/pkg/clipboard"
	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/config"
	"github.com/coreseekdev/texere-core/pkg/edit"
	"github.com/coreseekdev/texere-core/pkg/history"
	"github.com/coreseekdev/texere-core/pkg/jump"
	"github.com/coreseekdev/texere-core/pkg/keymap"
	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/scroll"
	"github.com/coreseekdev/texere-core/pkg/selection"
	"github.com/coreseekdev/texere-core/pkg/syntax"
	"github.com/sirupsen/logrus"
)

// Kind is the editor's own top-level mode: Normal, Insert, or Jump. Not
// to be confused with selection.Mode, the SelectionMode governing
// navigation within Normal mode.
type Kind int

const (
	Normal Kind = iota
	Insert
	Jump
)

// Editor is the engine facade. The zero value is not usable; construct
// with New or NewFromReader.
type Editor struct {
	Rope      *rope.Rope
	Tree      syntax.Tree
	Parser    syntax.Parser
	Clipboard clipboard.Clipboard
	Config    config.Config

	Selections *selection.SelectionSet
	Mode       Kind

	Scroll  *scroll.Controller
	History *history.History

	// SelHistory is the bounded ring of recently installed SelectionSets,
	// most recent last, per spec.md §4.6.
	SelHistory []*selection.SelectionSet

	Bookmarks selection.Bookmarks

	// Jumps holds the active Jump-mode candidates; JumpDir/JumpMode
	// record what was being traversed, so j/J can re-enter from the
	// labelled extremum.
	Jumps    []jump.Jump
	JumpDir  selection.Direction
	JumpMode selection.Mode

	// LastMatchPattern is the regex SetMatchPattern most recently
	// installed, re-applied (and echoed back via dispatch.SetSearch) when
	// "m" is pressed again after leaving Match mode.
	LastMatchPattern string

	// LastStepDir is the direction most recently passed to step() (f/F),
	// defaulting to forward. deleteSelections consults it to decide which
	// neighbour a contiguous-mode kill extends its gap towards.
	LastStepDir selection.Direction

	Width, Height int

	Logger *logrus.Logger
}

// New constructs an Editor over text, parsed once at construction with
// parser. clip may be nil: yank then only fills each selection's own
// yank slot, and paste does nothing.
func New(cfg config.Config, parser syntax.Parser, clip clipboard.Clipboard, text string) (*Editor, error) {
	tree, err := parser.Parse(context.Background(), text)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	sels := selection.NewSelectionSet(selection.Selection{Range: selection.Point(0)}, selection.Custom())
	sels.CursorDir = selection.CursorEnd
	return &Editor{
		Rope:        rope.New(text),
		Tree:        tree,
		Parser:      parser,
		Clipboard:   clip,
		Config:      cfg,
		Selections:  sels,
		Mode:        Normal,
		Scroll:      scroll.New(24),
		History:     history.New(0),
		Logger:      logger,
		LastStepDir: selection.DirForward,
	}, nil
}

// NewFromReader mirrors the teacher's NewFromReader convenience,
// slurping the reader's full content before constructing.
func NewFromReader(cfg config.Config, parser syntax.Parser, clip clipboard.Clipboard, r io.Reader) (*Editor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(cfg, parser, clip, string(data))
}

// ctx returns the selection.Context that Step and Generate run against:
// the current rope, tree and bookmarks, plus the primary range of the
// newest SelHistory entry as PriorPrimary when there is one.
func (e *Editor) ctx() selection.Context {
	c := selection.Context{Rope: e.Rope, Tree: e.Tree, Bookmarks: e.Bookmarks}
	if n := len(e.SelHistory); n > 0 {
		c.PriorPrimary = e.SelHistory[n-1].Primary.Range
		c.PriorOK = true
	}
	return c
}

// GetText returns the full buffer content.
func (e *Editor) GetText() string { return e.Rope.String() }

// ScrollOffset returns the current first-visible-row.
func (e *Editor) ScrollOffset() int { return e.Scroll.Offset }

// SetDimension updates the viewport geometry and re-clamps scroll.
func (e *Editor) SetDimension(width, height int) {
	e.Width, e.Height = width, height
	e.Scroll.SetHeight(height)
	e.recalcScroll()
}

// GetCursorPoint returns the primary selection's caret as (row, column).
func (e *Editor) GetCursorPoint() (int, int) {
	caret := e.Selections.Primary.Range.CaretAt(e.Selections.CursorDir)
	pos, err := e.Rope.CharToPosition(caret)
	if err != nil {
		return 0, 0
	}
	return pos.Row, pos.Column
}

// GetSelectedTexts returns every selection's text, ordered by range
// start (spec.md §6).
func (e *Editor) GetSelectedTexts() []string {
	all := orderedByStart(e.Selections.All())
	out := make([]string, 0, len(all))
	for _, s := range all {
		text, err := e.Rope.Slice(s.Range.From(), s.Range.To())
		if err != nil {
			continue
		}
		out = append(out, text)
	}
	return out
}

// lineageOrderByStart returns the indices of sels (lineages, per
// Action.Lineage's "index in the pre-image SelectionSet's All()
// ordering" convention) sorted by range start, for commands that must
// apply simultaneous per-lineage edits left to right while keeping each
// edit's declared lineage equal to its original All() position.
func lineageOrderByStart(sels []selection.Selection) []int {
	order := make([]int, len(sels))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && sels[order[j]].Range.From() < sels[order[j-1]].Range.From(); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

func orderedByStart(sels []selection.Selection) []selection.Selection {
	out := append([]selection.Selection(nil), sels...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Range.From() < out[j-1].Range.From(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// recalcScroll re-centers the viewport on the primary caret's row if it
// left the visible band, per spec.md §4.7, called after every selection
// change.
func (e *Editor) recalcScroll() {
	row, _ := e.GetCursorPoint()
	e.Scroll.Follow(row)
}

// pushSelectionHistory appends set to the bounded ring if it differs
// from the current last entry, per spec.md §4.6.
func (e *Editor) pushSelectionHistory(set *selection.SelectionSet) {
	if len(e.SelHistory) > 0 && sameRanges(e.SelHistory[len(e.SelHistory)-1], set) {
		return
	}
	limit := e.Config.SelectionHistorySize
	if limit <= 0 {
		limit = config.DefaultSelectionHistorySize
	}
	e.SelHistory = append(e.SelHistory, set)
	if len(e.SelHistory) > limit {
		e.SelHistory = e.SelHistory[len(e.SelHistory)-limit:]
	}
}

func sameRanges(a, b *selection.SelectionSet) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Primary.Range != b.Primary.Range || len(a.Secondary) != len(b.Secondary) {
		return false
	}
	for i := range a.Secondary {
		if a.Secondary[i].Range != b.Secondary[i].Range {
			return false
		}
	}
	return true
}

// logAbsorbed records a recoverable error the engine swallowed, per
// spec.md §7: the caller never sees the error, but it is not silently
// dropped either.
func (e *Editor) logAbsorbed(command string, err error) {
	e.Logger.WithFields(logrus.Fields{
		"command":    command,
		"error_kind": err.Error(),
	}).Warn("command absorbed a recoverable error")
}

// applyAndInstall runs tx through edit.Apply, installs the resulting
// rope/tree and the selections named by tx's Select actions, records tx
// on the undo stack, and recalculates scroll. It is the single choke
// point every mutating Normal/Insert command funnels through so
// undo/redo/scroll stay consistent. A command that builds a mutating
// transaction is expected to include a Select action per lineage naming
// the post-edit cursor it wants; a transaction with none leaves the
// current selection set untouched.
func (e *Editor) applyAndInstall(tx *edit.EditTransaction) error {
	newRope, newTree, err := edit.Apply(context.Background(), e.Rope, e.Tree, e.Parser, tx)
	if err != nil {
		return err
	}
	e.History.Push(tx)
	e.Rope = newRope
	e.Tree = newTree
	e.installSelections(tx.Selections())
	e.recalcScroll()
	return nil
}

// installSelections rebuilds the SelectionSet from a transaction's final
// per-lineage Select actions, primary first. A transaction carrying no
// Select actions leaves the current set untouched.
func (e *Editor) installSelections(sels []selection.Selection) {
	if len(sels) == 0 {
		return
	}
	set := selection.NewSelectionSet(sels[0], e.Selections.Mode)
	set.CursorDir = e.Selections.CursorDir
	set.Secondary = append([]selection.Selection(nil), sels[1:]...)
	set.Normalize()
	e.Selections = set
}

// HandleMouse applies a scroll-wheel or left-click mouse event.
func (e *Editor) HandleMouse(ev keymap.MouseEvent) {
	switch ev.Kind {
	case keymap.MouseScrollUp:
		e.Scroll.Scroll(-1, e.lastLine())
	case keymap.MouseScrollDown:
		e.Scroll.Scroll(1, e.lastLine())
	case keymap.MouseLeftClick:
		absRow := ev.Row + e.Scroll.Offset
		at, err := e.Rope.PositionToChar(coord.Position{Row: absRow, Column: ev.Column})
		if err != nil {
			return
		}
		e.Selections = selection.NewSelectionSet(selection.Selection{Range: selection.Point(at)}, selection.Custom())
		e.recalcScroll()
	}
}

func (e *Editor) lastLine() int {
	n := e.Rope.LineCount() - 1
	if n < 0 {
		return 0
	}
	return n
}
