package scroll

import (
	"github.com/vovakirdan/tui-scroller/internal/core"
)

// PoolSize is the number of tiles kept alive: one trailing, one centred and
// one leading.
const PoolSize = 3

// Handle is an opaque host-side renderable.
type Handle any

// Factory creates and releases host-side tiles.
type Factory interface {
	Create(variant string) (Handle, error)
	Destroy(h Handle)
}

// Selector chooses the variant for each new tile.
type Selector interface {
	Pick(variants []string) string
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(variants []string) string

// Pick calls f.
func (f SelectorFunc) Pick(variants []string) string {
	return f(variants)
}

// Bounded is implemented by handles that know their visual size.
// ok is false when the handle has no visual bounds.
type Bounded interface {
	Bounds() (size core.Vec2, ok bool)
}

// Scaled is implemented by handles with a generic scale, used when no
// visual bounds are available.
type Scaled interface {
	Scale() core.Vec2
}

// Measure returns the size of h along the axis, preferring visual bounds,
// then scale, then 1.
func Measure(h Handle, axis Axis) float64 {
	if b, ok := h.(Bounded); ok {
		if size, ok := b.Bounds(); ok {
			return axis.Along(size)
		}
	}
	if s, ok := h.(Scaled); ok {
		return axis.Along(s.Scale())
	}
	return 1
}

// Tile is one active slot's content.
type Tile struct {
	Handle  Handle
	Variant string
	Pos     core.Vec2
}

// Pool owns the PoolSize tile slots. Only the Scroller mutates it.
type Pool struct {
	factory  Factory
	selector Selector
	variants []string
	axis     Axis
	extent   float64
	slots    [PoolSize]*Tile
}

// NewPool measures the tile extent from a sample of the first variant and
// returns an empty pool. Every tile is assumed to share that extent.
func NewPool(f Factory, sel Selector, variants []string, axis Axis) (*Pool, error) {
	if len(variants) == 0 {
		return nil, configErr(ErrNoVariants)
	}
	if f == nil {
		return nil, configErr(ErrNoFactory)
	}

	sample, err := f.Create(variants[0])
	if err != nil {
		return nil, &ResourceError{Slot: -1, Variant: variants[0], Err: err}
	}
	extent := Measure(sample, axis)
	f.Destroy(sample)

	if !positive(extent) {
		return nil, configErr(ErrBadExtent)
	}

	return &Pool{
		factory:  f,
		selector: sel,
		variants: append([]string(nil), variants...),
		axis:     axis,
		extent:   extent,
	}, nil
}

// Extent is the shared tile size along the primary axis.
func (p *Pool) Extent() float64 {
	return p.extent
}

// Len returns the number of slots.
func (p *Pool) Len() int {
	return PoolSize
}

// At returns the tile in slot i.
func (p *Pool) At(i int) (Tile, bool) {
	if i < 0 || i >= PoolSize || p.slots[i] == nil {
		return Tile{}, false
	}
	return *p.slots[i], true
}

// Each calls fn for every occupied slot in index order.
func (p *Pool) Each(fn func(i int, t Tile)) {
	for i, t := range p.slots {
		if t != nil {
			fn(i, *t)
		}
	}
}

// Create acquires a new tile of a selected variant. The tile is not placed
// into any slot yet.
func (p *Pool) Create() (Tile, error) {
	variant := p.pick()
	h, err := p.factory.Create(variant)
	if err != nil {
		return Tile{}, &ResourceError{Slot: -1, Variant: variant, Err: err}
	}
	return Tile{Handle: h, Variant: variant}, nil
}

// Assign places t into slot i. The slot must be empty.
func (p *Pool) Assign(i int, t Tile) {
	p.slots[i] = &t
}

// Destroy releases the handle in slot i and empties the slot.
func (p *Pool) Destroy(i int) error {
	if i < 0 || i >= PoolSize || p.slots[i] == nil {
		return ErrEmptySlot
	}
	p.factory.Destroy(p.slots[i].Handle)
	p.slots[i] = nil
	return nil
}

// Replace releases slot i's handle and assigns t into it.
func (p *Pool) Replace(i int, t Tile) error {
	if err := p.Destroy(i); err != nil {
		return err
	}
	p.Assign(i, t)
	return nil
}

// Translate adds delta to every active tile.
func (p *Pool) Translate(delta core.Vec2) {
	for _, t := range p.slots {
		if t != nil {
			t.Pos = t.Pos.Add(delta)
		}
	}
}

// SetPos moves slot i without touching its handle.
func (p *Pool) SetPos(i int, pos core.Vec2) error {
	if i < 0 || i >= PoolSize || p.slots[i] == nil {
		return ErrEmptySlot
	}
	p.slots[i].Pos = pos
	return nil
}

// Close releases every handle still held.
func (p *Pool) Close() {
	for i := range p.slots {
		//nolint:errcheck // empty slots are skipped
		p.Destroy(i)
	}
}

func (p *Pool) pick() string {
	if p.selector == nil || len(p.variants) == 1 {
		return p.variants[0]
	}
	return p.selector.Pick(p.variants)
}
