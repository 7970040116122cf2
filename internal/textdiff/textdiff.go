// Package textdiff renders readable diffs for test failure messages. It
// wraps the diffmatchpatch library to show a test author exactly where two
// rope contents diverge instead of dumping two raw strings.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff computes a human-readable diff between want and got, formatted the
// way diffmatchpatch's PrettyText renders it (insertions/deletions inline,
// equal runs untouched) but stripped of the ANSI color codes PrettyText
// embeds, since test output doesn't get a terminal to interpret them.
func Diff(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&b, "{+%s+}", d.Text)
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&b, "[-%s-]", d.Text)
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Assert fails t (via the given Fatalf-shaped reporter) with a readable
// diff when want != got. Kept independent of *testing.T so it can be used
// from any helper that accepts a require.TestingT-like interface.
func Assert(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, want, got string, msgAndArgs ...any) {
	t.Helper()
	if want == got {
		return
	}
	prefix := ""
	if len(msgAndArgs) > 0 {
		if format, ok := msgAndArgs[0].(string); ok {
			prefix = fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
		}
	}
	t.Fatalf("%stext mismatch\n  diff: %s", prefix, Diff(want, got))
}
