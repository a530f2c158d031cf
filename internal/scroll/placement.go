package scroll

import "github.com/vovakirdan/tui-scroller/internal/core"

// InitialOffset is the starting position of slot i: (i-1) extents along the
// primary axis, so slot 0 trails, slot 1 sits at the origin and slot 2 leads.
func InitialOffset(axis Axis, i int, extent float64) core.Vec2 {
	return axis.Shift(core.Vec2{}, float64(i-1)*extent*axis.Sign)
}

// Lead returns the slot farthest ahead, ignoring slot exclude. Ties go to
// the lowest index.
func Lead(p *Pool, exclude int) (int, bool) {
	lead := -1
	var leadPos core.Vec2
	p.Each(func(i int, t Tile) {
		if i == exclude {
			return
		}
		if lead < 0 || p.axis.Leads(t.Pos, leadPos) {
			lead = i
			leadPos = t.Pos
		}
	})
	return lead, lead >= 0
}

// RecycledSeat is where a replacement for slot exclude goes: one extent
// beyond the current lead tile. The orthogonal coordinate is the lead's.
func RecycledSeat(p *Pool, exclude int) (core.Vec2, bool) {
	i, ok := Lead(p, exclude)
	if !ok {
		return core.Vec2{}, false
	}
	lead, _ := p.At(i)
	return p.axis.Shift(lead.Pos, p.axis.Sign*p.extent), true
}
