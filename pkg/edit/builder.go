package edit

import (
	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/rope"
	"github.com/coreseekdev/texere-core/pkg/selection"
)

// TransactionBuilder assembles ActionGroups without hand-computing
// offsets: an implementation convenience for Normal-mode commands,
// grounded on the teacher's concordia.OperationBuilder fluent style
// (Retain/Insert/Delete chaining that auto-merges adjacent ops) adapted to
// build per-cursor (Edit, Select) groups rather than a single linear
// ChangeSet.
type TransactionBuilder struct {
	pre    *selection.SelectionSet
	groups []ActionGroup
}

// NewTransactionBuilder starts a builder against the given pre-image
// selection set.
func NewTransactionBuilder(pre *selection.SelectionSet) *TransactionBuilder {
	return &TransactionBuilder{pre: pre}
}

// Group starts a new ActionGroup; actions added via Replace/Select until
// the next Group() call (or Build()) belong to it.
func (b *TransactionBuilder) Group() *TransactionBuilder {
	b.groups = append(b.groups, ActionGroup{})
	return b
}

func (b *TransactionBuilder) current() *ActionGroup {
	if len(b.groups) == 0 {
		b.groups = append(b.groups, ActionGroup{})
	}
	return &b.groups[len(b.groups)-1]
}

// Replace adds an Edit action replacing [start, start+len(old)) with new
// text, for the given cursor lineage.
func (b *TransactionBuilder) Replace(lineage int, start coord.CharIndex, old, new string) *TransactionBuilder {
	g := b.current()
	*g = append(*g, EditAction(lineage, Edit{Start: start, Old: rope.New(old), New: rope.New(new)}))
	return b
}

// Insert adds an Edit action inserting text at pos with no deletion, for
// the given cursor lineage.
func (b *TransactionBuilder) Insert(lineage int, pos coord.CharIndex, text string) *TransactionBuilder {
	return b.Replace(lineage, pos, "", text)
}

// Delete adds an Edit action deleting [start, end) (old must be supplied
// by the caller, who has the rope in hand), for the given cursor lineage.
func (b *TransactionBuilder) Delete(lineage int, start coord.CharIndex, old string) *TransactionBuilder {
	return b.Replace(lineage, start, old, "")
}

// Select adds a Select action installing sel for the given cursor
// lineage.
func (b *TransactionBuilder) Select(lineage int, sel selection.Selection) *TransactionBuilder {
	g := b.current()
	*g = append(*g, SelectAction(lineage, sel))
	return b
}

// Build validates and returns the assembled transaction.
func (b *TransactionBuilder) Build() (*EditTransaction, error) {
	return FromActionGroups(b.pre, b.groups)
}
