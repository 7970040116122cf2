package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffMarksInsertionsAndDeletions(t *testing.T) {
	out := Diff("hello world", "hello there")
	assert.Contains(t, out, "hello ")
	assert.Contains(t, out, "[-world-]")
	assert.Contains(t, out, "{+there+}")
}

func TestDiffIdenticalTextsProduceNoMarkers(t *testing.T) {
	out := Diff("same text", "same text")
	assert.Equal(t, "same text", out)
}
