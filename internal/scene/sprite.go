package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
)

// Variant is a parsed tile look.
type Variant struct {
	Name   string
	Color  core.Color
	Width  int // 0 fills the screen width
	Height int // 0 fills the screen height
	art    [][]rune
}

// NewVariant parses a variant from config.
func NewVariant(vc config.VariantConfig) (*Variant, error) {
	color, err := core.ParseColor(vc.Color)
	if err != nil {
		return nil, fmt.Errorf("scene: variant %q: %w", vc.Name, err)
	}
	if len(vc.Art) == 0 {
		return nil, fmt.Errorf("scene: variant %q has no art", vc.Name)
	}

	art := make([][]rune, len(vc.Art))
	for i, row := range vc.Art {
		art[i] = []rune(row)
		if len(art[i]) == 0 {
			art[i] = []rune{' '}
		}
	}

	return &Variant{
		Name:   vc.Name,
		Color:  color,
		Width:  vc.Width,
		Height: vc.Height,
		art:    art,
	}, nil
}

// At returns the art rune for a cell inside a tile. The pattern repeats.
func (v *Variant) At(dx, dy int) rune {
	row := v.art[dy%len(v.art)]
	return row[dx%len(row)]
}

// Sprite is the scroll.Handle for a tile on screen.
type Sprite struct {
	Variant *Variant
	W, H    int
}

// Bounds implements scroll.Bounded.
func (s *Sprite) Bounds() (core.Vec2, bool) {
	return core.V(float64(s.W), float64(s.H)), true
}

// Draw paints the sprite centred on a world position.
func (s *Sprite) Draw(dst *core.Screen, pos core.Vec2) {
	left := toCell(float64(dst.Width())/2 + pos.X - float64(s.W)/2)
	top := toCell(float64(dst.Height())/2 - pos.Y - float64(s.H)/2)

	for dy := 0; dy < s.H; dy++ {
		y := top + dy
		if y < 0 || y >= dst.Height() {
			continue
		}
		for dx := 0; dx < s.W; dx++ {
			x := left + dx
			if x < 0 || x >= dst.Width() {
				continue
			}
			dst.SetColor(x, y, s.Variant.At(dx, dy), s.Variant.Color)
		}
	}
}
