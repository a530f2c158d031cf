package scene

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-scroller/internal/scroll"
)

// ErrUnknownVariant is returned when a tile of an unconfigured variant is requested.
var ErrUnknownVariant = errors.New("scene: unknown variant")

// Factory creates sprites sized for the current screen. It implements
// scroll.Factory.
type Factory struct {
	variants map[string]*Variant
	screenW  int
	screenH  int
	live     map[*Sprite]struct{}
}

// NewFactory creates a factory for the given variants and screen size.
func NewFactory(variants []*Variant, screenW, screenH int) *Factory {
	f := &Factory{
		variants: make(map[string]*Variant, len(variants)),
		screenW:  screenW,
		screenH:  screenH,
		live:     make(map[*Sprite]struct{}),
	}
	for _, v := range variants {
		f.variants[v.Name] = v
	}
	return f
}

// Create implements scroll.Factory.
func (f *Factory) Create(name string) (scroll.Handle, error) {
	v, ok := f.variants[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, name)
	}

	s := &Sprite{Variant: v, W: v.Width, H: v.Height}
	if s.W == 0 {
		s.W = f.screenW
	}
	if s.H == 0 {
		s.H = f.screenH
	}
	f.live[s] = struct{}{}
	return s, nil
}

// Destroy implements scroll.Factory.
func (f *Factory) Destroy(h scroll.Handle) {
	if s, ok := h.(*Sprite); ok {
		delete(f.live, s)
	}
}

// Live returns the number of sprites created and not yet destroyed.
func (f *Factory) Live() int {
	return len(f.live)
}

// RandomSelector picks variants uniformly from a seeded source.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a selector with the given seed.
func NewRandomSelector(seed int64) *RandomSelector {
	return &RandomSelector{rng: rand.New(rand.NewSource(seed))}
}

// Pick implements scroll.Selector.
func (r *RandomSelector) Pick(variants []string) string {
	return variants[r.rng.Intn(len(variants))]
}

func toCell(v float64) int {
	return int(math.Floor(v + 0.5))
}
