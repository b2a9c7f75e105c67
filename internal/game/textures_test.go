package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenTextures_DimensionsAndOpacity(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		gen  func(*Rand) *pixmap
		size int
	}{
		{"hedge", GenHedgeTexture, WallTexSize},
		{"floor", GenFloorTexture, FloorTexSize},
		{"ceiling", GenCeilingTexture, CeilingTexSize},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := tc.gen(NewRand(42))
			assert.Equal(t, tc.size, p.W)
			assert.Equal(t, tc.size, p.H)
			require.Len(t, p.Pix, tc.size*tc.size*4)
			for i := 3; i < len(p.Pix); i += 4 {
				if p.Pix[i] != 255 {
					t.Fatalf("pixel %d is not opaque", i/4)
				}
			}
		})
	}
}

func TestGenHedgeTexture_HasVariation(t *testing.T) {
	t.Parallel()
	p := GenHedgeTexture(NewRand(7))

	seen := map[[3]uint8]bool{}
	for i := 0; i < len(p.Pix); i += 4 {
		seen[[3]uint8{p.Pix[i], p.Pix[i+1], p.Pix[i+2]}] = true
	}
	assert.Greater(t, len(seen), 10, "leaf blobs should produce many shades")
}

func TestGenTextures_Deterministic(t *testing.T) {
	t.Parallel()
	a := GenFloorTexture(NewRand(123))
	b := GenFloorTexture(NewRand(123))
	assert.Equal(t, a.Pix, b.Pix)
}

func TestPixmapSet_ClipsOutOfBounds(t *testing.T) {
	t.Parallel()
	p := newPixmap(4, 4, RGB{10, 20, 30})
	p.set(-1, 0, RGB{255, 0, 0})
	p.set(4, 4, RGB{255, 0, 0})
	for i := 0; i < len(p.Pix); i += 4 {
		assert.Equal(t, uint8(10), p.Pix[i])
	}
}

func TestBuildFontAtlas_GlyphPlacement(t *testing.T) {
	t.Parallel()
	p := BuildFontAtlas()
	require.Equal(t, FontAtlasW, p.W)
	require.Equal(t, FontAtlasH, p.H)

	cellAlpha := func(ch rune) int {
		c := int(ch)
		ox := (c % FontCols) * FontCellW
		oy := (c / FontCols) * FontCellH
		lit := 0
		for y := 0; y < FontCellH; y++ {
			for x := 0; x < FontCellW; x++ {
				if p.Pix[((oy+y)*p.W+ox+x)*4+3] != 0 {
					lit++
				}
			}
		}
		return lit
	}

	assert.Zero(t, cellAlpha(' '), "space glyph must be empty")
	assert.Greater(t, cellAlpha('A'), 5)
	assert.Greater(t, cellAlpha('0'), 5)
	assert.Greater(t, cellAlpha('~'), 0)

	// Lit pixels are pure white.
	for i := 0; i < len(p.Pix); i += 4 {
		a := p.Pix[i+3]
		if a == 0 {
			continue
		}
		assert.Equal(t, uint8(255), p.Pix[i])
		assert.Equal(t, uint8(255), p.Pix[i+1])
		assert.Equal(t, uint8(255), p.Pix[i+2])
	}
}

func TestTextWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5*FontCellW, TextWidth("HELLO", 1))
	assert.Equal(t, 5*FontCellW*2, TextWidth("HELLO", 2))
	assert.Equal(t, 5*FontCellW, TextWidth("AB\nHELLO\nXY", 1), "widest line wins")
	assert.Zero(t, TextWidth("", 3))
}
