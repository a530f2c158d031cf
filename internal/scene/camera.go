// Package scene hosts the scroller in a terminal: it turns the screen into
// scroll geometry, turns configured art into tiles and draws them.
//
// One world unit is one character cell. The origin is the screen centre and
// y grows upward, so a cell's row is centre - y.
package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-scroller/internal/scroll"
)

// Camera is an orthographic view of a screen-sized area.
type Camera struct {
	Width  int
	Height int
}

// Viewport implements scroll.Geometry.
func (c Camera) Viewport() (scroll.Viewport, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return scroll.Viewport{}, fmt.Errorf("scene: screen is %dx%d", c.Width, c.Height)
	}
	return scroll.Viewport{
		HalfHeight: float64(c.Height) / 2,
		Aspect:     float64(c.Width) / float64(c.Height),
	}, nil
}
