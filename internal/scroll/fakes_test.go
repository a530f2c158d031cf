package scroll

import (
	"errors"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

type fakeTile struct {
	id      int
	variant string
	size    core.Vec2
	bounded bool
	scale   core.Vec2
}

func (t *fakeTile) Bounds() (core.Vec2, bool) { return t.size, t.bounded }
func (t *fakeTile) Scale() core.Vec2          { return t.scale }

// fakeFactory hands out square tiles and records every create and destroy.
type fakeFactory struct {
	size      float64
	unbounded bool
	nextID    int
	live      map[int]*fakeTile
	created   []string
	destroyed int
	failures  int // number of upcoming Create calls that fail
	failOn    int // 1-based Create call that fails, 0 for none
	calls     int
}

var errAssetMissing = errors.New("asset missing")

func newFakeFactory(size float64) *fakeFactory {
	return &fakeFactory{size: size, live: make(map[int]*fakeTile)}
}

func (f *fakeFactory) Create(variant string) (Handle, error) {
	f.calls++
	if f.calls == f.failOn {
		return nil, errAssetMissing
	}
	if f.failures > 0 {
		f.failures--
		return nil, errAssetMissing
	}
	f.nextID++
	t := &fakeTile{
		id:      f.nextID,
		variant: variant,
		size:    core.V(f.size, f.size),
		bounded: !f.unbounded,
		scale:   core.V(f.size, f.size),
	}
	f.live[t.id] = t
	f.created = append(f.created, variant)
	return t, nil
}

func (f *fakeFactory) Destroy(h Handle) {
	t := h.(*fakeTile)
	delete(f.live, t.id)
	f.destroyed++
}

func viewport(halfHeight, aspect float64) Geometry {
	return GeometryFunc(func() (Viewport, error) {
		return Viewport{HalfHeight: halfHeight, Aspect: aspect}, nil
	})
}

// cycle picks variants round-robin so tests can see re-skinning.
func cycle() Selector {
	n := 0
	return SelectorFunc(func(variants []string) string {
		v := variants[n%len(variants)]
		n++
		return v
	})
}
