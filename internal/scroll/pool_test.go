package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

type scaledOnly struct{ s core.Vec2 }

func (h scaledOnly) Scale() core.Vec2 { return h.s }

type noBounds struct{}

func (noBounds) Bounds() (core.Vec2, bool) { return core.Vec2{}, false }

func TestMeasure(t *testing.T) {
	horizontal := Resolve(Left)
	vertical := Resolve(Up)

	bounded := &fakeTile{size: core.V(4, 2), bounded: true, scale: core.V(9, 9)}
	assert.Equal(t, 4.0, Measure(bounded, horizontal))
	assert.Equal(t, 2.0, Measure(bounded, vertical))

	// Bounds win over scale; scale is the fallback.
	fallback := &fakeTile{bounded: false, scale: core.V(3, 5)}
	assert.Equal(t, 3.0, Measure(fallback, horizontal))
	assert.Equal(t, 8.0, Measure(scaledOnly{core.V(7, 8)}, vertical))

	assert.Equal(t, 1.0, Measure(noBounds{}, horizontal))
	assert.Equal(t, 1.0, Measure("plain handle", vertical))
}

func TestNewPoolSamplesFirstVariant(t *testing.T) {
	f := newFakeFactory(2)
	p, err := NewPool(f, cycle(), []string{"grass", "rock"}, Resolve(Left))
	require.NoError(t, err)

	assert.Equal(t, 2.0, p.Extent())
	assert.Equal(t, []string{"grass"}, f.created)
	assert.Equal(t, 1, f.destroyed, "sample must be released")
	assert.Empty(t, f.live)
}

func TestNewPoolErrors(t *testing.T) {
	_, err := NewPool(newFakeFactory(1), nil, nil, Resolve(Left))
	assert.ErrorIs(t, err, ErrNoVariants)

	_, err = NewPool(nil, nil, []string{"a"}, Resolve(Left))
	assert.ErrorIs(t, err, ErrNoFactory)

	_, err = NewPool(newFakeFactory(0), nil, []string{"a"}, Resolve(Left))
	assert.ErrorIs(t, err, ErrBadExtent)

	broken := newFakeFactory(1)
	broken.failures = 1
	_, err = NewPool(broken, nil, []string{"a"}, Resolve(Left))
	var re *ResourceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, -1, re.Slot)
	assert.ErrorIs(t, err, errAssetMissing)
}

func TestPoolLifecycle(t *testing.T) {
	f := newFakeFactory(1)
	p, err := NewPool(f, cycle(), []string{"a", "b"}, Resolve(Up))
	require.NoError(t, err)

	for i := 0; i < PoolSize; i++ {
		tile, err := p.Create()
		require.NoError(t, err)
		tile.Pos = core.V(0, float64(i))
		p.Assign(i, tile)
	}
	assert.Len(t, f.live, PoolSize)

	var seen []int
	p.Each(func(i int, _ Tile) { seen = append(seen, i) })
	assert.Equal(t, []int{0, 1, 2}, seen)

	p.Translate(core.V(0, 0.5))
	tile, ok := p.At(2)
	require.True(t, ok)
	assert.Equal(t, core.V(0, 2.5), tile.Pos)

	require.NoError(t, p.Destroy(1))
	_, ok = p.At(1)
	assert.False(t, ok)
	assert.ErrorIs(t, p.Destroy(1), ErrEmptySlot)
	assert.ErrorIs(t, p.SetPos(1, core.Vec2{}), ErrEmptySlot)
	assert.ErrorIs(t, p.Destroy(PoolSize), ErrEmptySlot)

	p.Close()
	assert.Empty(t, f.live)
}

func TestPoolSingleVariantSkipsSelector(t *testing.T) {
	called := false
	sel := SelectorFunc(func([]string) string {
		called = true
		return "x"
	})
	p, err := NewPool(newFakeFactory(1), sel, []string{"only"}, Resolve(Left))
	require.NoError(t, err)

	tile, err := p.Create()
	require.NoError(t, err)
	assert.Equal(t, "only", tile.Variant)
	assert.False(t, called)
}
