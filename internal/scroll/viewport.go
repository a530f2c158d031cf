package scroll

import (
	"fmt"
	"math"
)

// Viewport describes the visible area in world units.
type Viewport struct {
	HalfHeight float64
	Aspect     float64 // width / height
}

// Geometry is the host's view of the camera. It is queried once at
// initialization; a resize requires a new Scroller.
type Geometry interface {
	Viewport() (Viewport, error)
}

// GeometryFunc adapts a function to Geometry.
type GeometryFunc func() (Viewport, error)

// Viewport calls f.
func (f GeometryFunc) Viewport() (Viewport, error) {
	return f()
}

// ScreenBounds returns the half-extent of the viewport along the primary
// axis: half-height for vertical scrolling, half-height*aspect for
// horizontal scrolling.
func ScreenBounds(g Geometry, axis Axis) (float64, error) {
	if g == nil {
		return 0, configErr(ErrNoViewport)
	}
	vp, err := g.Viewport()
	if err != nil {
		return 0, configErr(fmt.Errorf("%w: %w", ErrNoViewport, err))
	}
	if !positive(vp.HalfHeight) || !positive(vp.Aspect) {
		return 0, configErr(fmt.Errorf("%w: half-height %v, aspect %v", ErrNoViewport, vp.HalfHeight, vp.Aspect))
	}

	if axis.Horizontal {
		return vp.HalfHeight * vp.Aspect, nil
	}
	return vp.HalfHeight, nil
}

// Threshold is the distance from the viewport centre a tile centre must pass
// before it is recycled: the tile is then fully outside the viewport.
func Threshold(screenBounds, extent float64) float64 {
	return screenBounds + extent/2
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
