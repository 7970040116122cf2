package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCloseCurrentWindow(t *testing.T) {
	d := NewCloseCurrentWindow("win-2")
	assert.Equal(t, CloseCurrentWindow, d.Kind)
	assert.Equal(t, "win-2", d.ChangeFocusedTo)
}

func TestNewSetSearch(t *testing.T) {
	d := NewSetSearch(`\bfoo\b`)
	assert.Equal(t, SetSearch, d.Kind)
	assert.Equal(t, `\bfoo\b`, d.Regex)
}
