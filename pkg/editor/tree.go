package editor

import (
	"github.com/coreseekdev/texere-core/pkg/selection"
	"github.com/coreseekdev/texere-core/pkg/syntax"
)

// namedChildrenOf returns n's named children via the shared syntax
// helper, kept local so normal.go doesn't need to import syntax itself.
func namedChildrenOf(n syntax.Node) []syntax.Node {
	return syntax.NamedChildren(n)
}

// selectionFromRange builds a forward Selection spanning n's range. No
// NodeID is set; later steps find the node again from the range.
func selectionFromRange(n syntax.Node) selection.Selection {
	r := n.Range()
	return selection.Selection{Range: selection.NewRange(r.Start, r.End)}
}
