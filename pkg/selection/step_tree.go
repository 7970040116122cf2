package selection

import (
	"github.com/coreseekdev/texere-core/pkg/coord"
	"github.com/coreseekdev/texere-core/pkg/syntax"
)

type nodeFilter func(syntax.Node) bool

func tokenFilter(n syntax.Node) bool  { return n.ChildCount() == 0 }
func namedFilter(n syntax.Node) bool  { return n.ChildCount() == 0 && n.IsNamed() }

// collectLeaves walks the tree in source order gathering every node
// satisfying filter, used by the Token/NamedNode families.
func collectLeaves(n syntax.Node, filter nodeFilter, out *[]syntax.Node) {
	if n.ChildCount() == 0 {
		if filter(n) {
			*out = append(*out, n)
		}
		return
	}
	for i := 0; i < n.ChildCount(); i++ {
		collectLeaves(n.Child(i), filter, out)
	}
}

// smallestCovering finds the smallest node containing pos, preferring one
// whose range exactly equals want when provided (the tie-break spec.md
// §4.1 calls for when several nodes share the caret).
func smallestCovering(tree syntax.Tree, pos coord.CharIndex, want *Range) syntax.Node {
	n := tree.NodeAt(pos)
	if n == nil {
		return tree.RootNode()
	}
	if want != nil {
		for cur := n; cur != nil; cur = cur.Parent() {
			r := cur.Range()
			if r.Start == want.From() && r.End == want.To() {
				return cur
			}
		}
	}
	return n
}

func stepTree(current Selection, dir Direction, ctx Context, filter nodeFilter) (Selection, error) {
	if ctx.Tree == nil {
		return current, nil
	}
	var leaves []syntax.Node
	collectLeaves(ctx.Tree.RootNode(), filter, &leaves)
	if len(leaves) == 0 {
		return current, nil
	}
	caret := current.Range.CaretAt(CursorEnd)
	switch dir {
	case DirForward:
		for _, n := range leaves {
			if n.Range().Start >= caret+1 {
				return selectionFromNode(n), nil
			}
		}
		return selectionFromNode(leaves[len(leaves)-1]), nil
	case DirBackward:
		for i := len(leaves) - 1; i >= 0; i-- {
			if leaves[i].Range().Start < caret {
				return selectionFromNode(leaves[i]), nil
			}
		}
		return selectionFromNode(leaves[0]), nil
	default:
		r := current.Range
		n := smallestCovering(ctx.Tree, current.Range.CaretAt(CursorStart), &r)
		for !filter(n) && n.Parent() != nil {
			n = n.Parent()
		}
		return selectionFromNode(n), nil
	}
}

func stepSibling(current Selection, dir Direction, ctx Context) (Selection, error) {
	if ctx.Tree == nil {
		return current, nil
	}
	n := resolveCurrentNode(current, ctx)
	switch dir {
	case DirForward:
		if sib := n.NextSibling(); sib != nil {
			return selectionFromNode(sib), nil
		}
		return selectionFromNode(n), nil
	case DirBackward:
		if sib := n.PrevSibling(); sib != nil {
			return selectionFromNode(sib), nil
		}
		return selectionFromNode(n), nil
	default:
		return selectionFromNode(n), nil
	}
}

func stepParent(current Selection, dir Direction, ctx Context) (Selection, error) {
	if ctx.Tree == nil {
		return current, nil
	}
	n := resolveCurrentNode(current, ctx)
	switch dir {
	case DirBackward:
		// Backward descends to the named child most recently descended
		// from: ctx.PriorPrimary (the editor's previous SelHistory entry,
		// threaded in by Context) names the selection active right before
		// this one, and if that range nests inside one of n's named
		// children, that child wins. Otherwise — no history, or the prior
		// selection wasn't a descendant of n at all — fall back to the
		// first named child.
		children := syntax.NamedChildren(n)
		if len(children) == 0 {
			return selectionFromNode(n), nil
		}
		if ctx.PriorOK {
			for _, c := range children {
				r := c.Range()
				if r.Start <= ctx.PriorPrimary.From() && ctx.PriorPrimary.To() <= r.End {
					return selectionFromNode(c), nil
				}
			}
		}
		return selectionFromNode(children[0]), nil
	default:
		p := n.Parent()
		for p != nil && !p.IsNamed() {
			p = p.Parent()
		}
		if p == nil {
			return selectionFromNode(n), nil
		}
		return selectionFromNode(p), nil
	}
}

func stepSyntaxTree(current Selection, dir Direction, ctx Context) (Selection, error) {
	if ctx.Tree == nil {
		return current, nil
	}
	n := resolveCurrentNode(current, ctx)
	switch dir {
	case DirForward:
		if n.ChildCount() > 0 {
			return selectionFromNode(n.Child(0)), nil
		}
		return selectionFromNode(n), nil
	case DirBackward:
		if p := n.Parent(); p != nil {
			return selectionFromNode(p), nil
		}
		return selectionFromNode(n), nil
	default:
		return selectionFromNode(n), nil
	}
}

func resolveCurrentNode(current Selection, ctx Context) syntax.Node {
	r := current.Range
	return smallestCovering(ctx.Tree, current.Range.CaretAt(CursorStart), &r)
}

func selectionFromNode(n syntax.Node) Selection {
	r := n.Range()
	return Selection{Range: withDirection(r.Start, r.End, true)}
}
