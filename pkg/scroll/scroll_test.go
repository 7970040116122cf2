package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowDoesNothingWhenInBand(t *testing.T) {
	c := New(20)
	c.Offset = 5
	c.Follow(10)
	assert.Equal(t, 5, c.Offset)
}

func TestFollowRecentersWhenAboveOffset(t *testing.T) {
	c := New(20)
	c.Offset = 10
	c.Follow(3)
	assert.Equal(t, 0, c.Offset) // max(0, 3-9) = 0
}

func TestFollowRecentersWhenBelowBand(t *testing.T) {
	c := New(20) // band = 18
	c.Offset = 0
	c.Follow(25)
	assert.Equal(t, 16, c.Offset) // 25 - 18/2 = 25-9=16
}

func TestAlignTopAndBottom(t *testing.T) {
	c := New(20)
	c.AlignTop(7)
	assert.Equal(t, 7, c.Offset)

	c.AlignBottom(30)
	assert.Equal(t, 12, c.Offset) // 30 - 18
}

func TestAlignClampsAtZero(t *testing.T) {
	c := New(20)
	c.AlignBottom(2)
	assert.Equal(t, 0, c.Offset)
	c.AlignTop(-5)
	assert.Equal(t, 0, c.Offset)
}

func TestScrollClamps(t *testing.T) {
	c := New(20)
	c.Scroll(-5, 100)
	assert.Equal(t, 0, c.Offset)
	c.Scroll(200, 100)
	assert.Equal(t, 100, c.Offset)
}
