// Package scroll implements the viewport scroll controller: after every
// selection change the engine asks it to keep the caret's row in view,
// re-centering only when the caret has actually left the visible band,
// the way a terminal editor's clampScroll keeps the cursor on screen
// without jittering the viewport on every keystroke.
package scroll

// Controller tracks a single scroll offset (first visible row) against a
// viewport height.
type Controller struct {
	Offset int
	Height int
}

// New creates a Controller with the given viewport height.
func New(height int) *Controller {
	return &Controller{Height: height}
}

// SetHeight updates the viewport height only; Offset is left as it is
// until the next Follow, Align or Scroll call.
func (c *Controller) SetHeight(height int) {
	c.Height = height
}

// Follow re-centers the viewport on cursorRow if it has scrolled out of
// the visible band: off the top, or within two rows of the bottom. This
// mirrors spec's "cursor_row < scroll_offset or cursor_row - scroll_offset
// >= height - 2" re-center trigger; a cursor that stays comfortably inside
// the band leaves Offset untouched.
func (c *Controller) Follow(cursorRow int) {
	band := c.Height - 2
	if cursorRow < c.Offset || cursorRow-c.Offset >= band {
		c.AlignCenter(cursorRow)
	}
}

// AlignCenter sets Offset so cursorRow sits at the middle of the band.
func (c *Controller) AlignCenter(cursorRow int) {
	c.Offset = cursorRow - (c.Height-2)/2
	if c.Offset < 0 {
		c.Offset = 0
	}
}

// AlignTop sets Offset so cursorRow is the first visible line.
func (c *Controller) AlignTop(cursorRow int) {
	c.Offset = cursorRow
	if c.Offset < 0 {
		c.Offset = 0
	}
}

// AlignBottom sets Offset so cursorRow is the last visible line.
func (c *Controller) AlignBottom(cursorRow int) {
	c.Offset = cursorRow - (c.Height - 2)
	if c.Offset < 0 {
		c.Offset = 0
	}
}

// Scroll applies a raw mouse-wheel delta (positive scrolls down, negative
// scrolls up), clamping at zero and at lastLine so the viewport never
// scrolls past the content.
func (c *Controller) Scroll(delta int, lastLine int) {
	c.Offset += delta
	if c.Offset < 0 {
		c.Offset = 0
	}
	if c.Offset > lastLine {
		c.Offset = lastLine
	}
}
