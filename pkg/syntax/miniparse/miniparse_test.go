package miniparse

import (
	"context"
	"testing"

	"github.com/coreseekdev/texere-core/pkg/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) syntax.Tree {
	t.Helper()
	tr, err := New().Parse(context.Background(), src)
	require.NoError(t, err)
	return tr
}

func TestParseCallExpression(t *testing.T) {
	tr := parse(t, `foo(1, bar, "s")`)
	root := tr.RootNode()
	require.Equal(t, KindDocument, root.Kind())
	require.Equal(t, 1, root.ChildCount())

	call := root.Child(0)
	assert.Equal(t, KindCall, call.Kind())
	assert.True(t, call.IsNamed())
	require.Equal(t, 4, call.ChildCount())

	callee := call.Child(0)
	assert.Equal(t, KindIdent, callee.Kind())
	assert.Equal(t, KindNumber, call.Child(1).Kind())
	assert.Equal(t, KindIdent, call.Child(2).Kind())
	assert.Equal(t, KindString, call.Child(3).Kind())
}

func TestSiblingNavigation(t *testing.T) {
	tr := parse(t, `f(a, b, c)`)
	call := tr.RootNode().Child(0)
	b := call.Child(2)
	assert.Equal(t, "b", sourceText(b, `f(a, b, c)`))
	assert.Equal(t, "a", sourceText(b.PrevSibling(), `f(a, b, c)`))
	assert.Equal(t, "c", sourceText(b.NextSibling(), `f(a, b, c)`))
	assert.Nil(t, b.NextSibling().NextSibling())
}

func TestParentChain(t *testing.T) {
	tr := parse(t, `outer(inner(x))`)
	outer := tr.RootNode().Child(0)
	inner := outer.Child(1)
	x := inner.Child(1)

	chain := syntax.WalkUp(x)
	require.Len(t, chain, 4) // x, inner, outer, document
	assert.Equal(t, KindIdent, chain[0].Kind())
	assert.Equal(t, KindCall, chain[1].Kind())
	assert.Equal(t, KindCall, chain[2].Kind())
	assert.Equal(t, KindDocument, chain[3].Kind())
}

func TestNodeAt(t *testing.T) {
	tr := parse(t, `foo(42)`)
	n := tr.NodeAt(4) // inside "42"
	require.NotNil(t, n)
	assert.Equal(t, KindNumber, n.Kind())
}

func TestBlockAndArray(t *testing.T) {
	tr := parse(t, `{ x, [1, 2] }`)
	block := tr.RootNode().Child(0)
	assert.Equal(t, KindBlock, block.Kind())
	assert.Equal(t, KindArray, block.Child(1).Kind())
	assert.Len(t, syntax.NamedChildren(block), 2)
}

func TestUnclosedGroupFlagsError(t *testing.T) {
	tr := parse(t, `foo(1, 2`)
	call := tr.RootNode().Child(0)
	assert.Equal(t, KindCall, call.Kind())
	assert.True(t, syntax.HasError(call))
}

func TestWellFormedGroupHasNoError(t *testing.T) {
	tr := parse(t, `foo(1, 2)`)
	call := tr.RootNode().Child(0)
	assert.False(t, syntax.HasError(call))
}

func sourceText(n syntax.Node, src string) string {
	r := n.Range()
	return string([]rune(src)[r.Start:r.End])
}
