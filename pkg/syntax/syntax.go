// Package syntax defines the boundary between the editor and a syntax
// grammar. A grammar is an external collaborator: given source text and
// optionally a previous Tree, it yields a new Tree. The editor never
// inspects how a Tree was produced — it only walks Node relationships
// (parent, children, siblings, named-ness) to drive the NamedNode,
// SiblingNode, ParentNode, and SyntaxTree selection modes.
//
// This package intentionally carries no cgo tree-sitter binding. The
// teacher pack's treesitter.go shows what a real binding's surface looks
// like (Parser.Parse(ctx, oldTree, content) -> Tree, Node.RootNode /
// Children / Parent), and this package mirrors that shape so a real
// grammar — tree-sitter or otherwise — can be dropped in behind these
// interfaces without touching pkg/selection or pkg/editor.
package syntax

import (
	"context"
	"errors"

	"github.com/coreseekdev/texere-core/pkg/coord"
)

// ErrNoLanguage is returned by a Parser asked to parse without a language
// configured.
var ErrNoLanguage = errors.New("syntax: no language configured")

// ErrOperationLimit is returned when a Parser aborts a parse it judged too
// expensive to finish (mirrors tree-sitter's cancellation flag).
var ErrOperationLimit = errors.New("syntax: operation limit reached")

// Node is a single node of a concrete or abstract syntax tree. Offsets are
// character offsets into the source the tree was parsed from, matching
// coord.CharIndex throughout the rest of the module (a real tree-sitter
// binding reports byte offsets; an adapter converts via pkg/rope's
// byte/char conversion before handing nodes to the editor).
type Node interface {
	// Kind is the grammar's name for this node's production (e.g.
	// "function_definition", "identifier").
	Kind() string
	// IsNamed reports whether the grammar marks this node as a named node
	// (as opposed to anonymous punctuation/keyword tokens) — the
	// distinction the NamedNode selection mode steps across.
	IsNamed() bool
	// Range returns the node's span in the source buffer.
	Range() coord.Range
	// Parent returns the enclosing node, or nil at the tree root.
	Parent() Node
	// ChildCount returns the number of direct children.
	ChildCount() int
	// Child returns the i-th direct child.
	Child(i int) Node
	// NextSibling and PrevSibling return the adjacent sibling under the
	// same parent, or nil at the first/last position.
	NextSibling() Node
	PrevSibling() Node
}

// Tree is an immutable parse result. Like rope.Rope, a Tree is never
// mutated in place — re-parsing produces a new Tree, optionally informed
// by the previous one for incremental speedups.
type Tree interface {
	RootNode() Node
	// NodeAt returns the smallest node whose range contains pos, or nil if
	// pos falls outside the tree's span.
	NodeAt(pos coord.CharIndex) Node
}

// Edit describes a single text mutation, for incremental re-parse. Offsets
// are character offsets; StartPos/OldEndPos/NewEndPos let a grammar that
// tracks row/column (most do) update its internal bookkeeping without
// rescanning the whole buffer.
type Edit struct {
	StartChar  coord.CharIndex
	OldEndChar coord.CharIndex
	NewEndChar coord.CharIndex
	StartPos   coord.Position
	OldEndPos  coord.Position
	NewEndPos  coord.Position
}

// Parser produces a Tree from source text, optionally reusing a previous
// Tree plus the Edits applied since it was produced.
type Parser interface {
	// Parse parses content from scratch.
	Parse(ctx context.Context, content string) (Tree, error)
	// Reparse parses content given the tree it was derived from and the
	// edits applied to get there, allowing (but not requiring) incremental
	// reuse of unaffected subtrees.
	Reparse(ctx context.Context, oldTree Tree, edits []Edit, content string) (Tree, error)
	// Language names the grammar this parser implements (e.g. "go",
	// "javascript"), for diagnostics.
	Language() string
}

// ErrorNode is implemented by a Node whose grammar tracks parse errors
// (e.g. an unclosed bracket group). Faultless exchange (pkg/editor) type-
// asserts for this optionally: a grammar that doesn't track errors is
// treated as never erroring, which just means exchange trusts the
// non-blank-text check alone for that grammar.
type ErrorNode interface {
	HasError() bool
}

// HasError reports whether n (or its underlying grammar) flags a parse
// error, false if the grammar doesn't implement ErrorNode.
func HasError(n Node) bool {
	if en, ok := n.(ErrorNode); ok {
		return en.HasError()
	}
	return false
}

// WalkUp collects the chain of ancestors from n up to the tree root,
// nearest first — the ordering pkg/selection's ParentNode mode steps
// through.
func WalkUp(n Node) []Node {
	var chain []Node
	for cur := n; cur != nil; cur = cur.Parent() {
		chain = append(chain, cur)
	}
	return chain
}

// NamedChildren returns only the named children of n, in order — the set
// NamedNode mode's first/last/next/prev steps operate over.
func NamedChildren(n Node) []Node {
	var out []Node
	for i := 0; i < n.ChildCount(); i++ {
		if c := n.Child(i); c.IsNamed() {
			out = append(out, c)
		}
	}
	return out
}
