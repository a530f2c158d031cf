// Package scroll implements the infinite tile scroller: a fixed pool of tiles
// translated along one axis and recycled ahead of the lead tile once they
// leave the viewport.
//
// The package knows nothing about terminals or any other renderer. Hosts
// supply geometry, a tile factory, a variant selector and a clock.
package scroll

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

// Direction is the direction tiles travel in.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lower-case name used in configs and flags.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Horizontal reports whether d scrolls along the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// ParseDirection parses a direction name, ignoring case and surrounding space.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("scroll: %w: %q", ErrUnknownDirection, s)
}

// Axis carries everything direction-specific. It is resolved once and
// handed to the viewport, pool, placement and scheduler code so nothing
// else branches on Direction.
type Axis struct {
	Direction  Direction
	Vector     core.Vec2 // unit movement per second of speed
	Horizontal bool
	Sign       float64 // placement sign: new seat = lead + Sign*extent
	leadsHigh  bool    // lead tile has the greatest coordinate
}

var axes = [...]Axis{
	Up:    {Direction: Up, Vector: core.V(0, 1), Sign: -1},
	Down:  {Direction: Down, Vector: core.V(0, -1), Sign: 1, leadsHigh: true},
	Left:  {Direction: Left, Vector: core.V(-1, 0), Horizontal: true, Sign: 1, leadsHigh: true},
	Right: {Direction: Right, Vector: core.V(1, 0), Horizontal: true, Sign: -1},
}

// Resolve maps a direction to its axis. Invalid directions resolve to Left.
func Resolve(d Direction) Axis {
	if !d.Valid() {
		d = Left
	}
	return axes[d]
}

// Along returns the coordinate of p on the primary axis.
func (a Axis) Along(p core.Vec2) float64 {
	if a.Horizontal {
		return p.X
	}
	return p.Y
}

// Shift moves p by d along the primary axis, keeping the other coordinate.
func (a Axis) Shift(p core.Vec2, d float64) core.Vec2 {
	if a.Horizontal {
		p.X += d
	} else {
		p.Y += d
	}
	return p
}

// Leads reports whether p is strictly farther ahead than q.
func (a Axis) Leads(p, q core.Vec2) bool {
	if a.leadsHigh {
		return a.Along(p) > a.Along(q)
	}
	return a.Along(p) < a.Along(q)
}

// Offscreen reports whether p has passed threshold on the side tiles exit
// through: Left x < -t, Right x > t, Up y > t, Down y < -t.
func (a Axis) Offscreen(p core.Vec2, threshold float64) bool {
	return a.Along(p)*a.Along(a.Vector) > threshold
}
