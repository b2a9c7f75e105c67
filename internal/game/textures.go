package game

// Procedural textures. Everything the game shows is painted at startup by
// scattering soft colour blobs into RGBA pixel buffers, so the scenery reads
// as organic without any image assets.

// pixmap is a simple RGBA8 paint target.
type pixmap struct {
	W, H int
	Pix  []uint8
}

func newPixmap(w, h int, base RGB) *pixmap {
	p := &pixmap{W: w, H: h, Pix: make([]uint8, w*h*4)}
	for i := 0; i < w*h; i++ {
		p.Pix[i*4+0] = base.R
		p.Pix[i*4+1] = base.G
		p.Pix[i*4+2] = base.B
		p.Pix[i*4+3] = 255
	}
	return p
}

func (p *pixmap) set(x, y int, c RGB) {
	if x < 0 || x >= p.W || y < 0 || y >= p.H {
		return
	}
	o := (y*p.W + x) * 4
	p.Pix[o+0] = c.R
	p.Pix[o+1] = c.G
	p.Pix[o+2] = c.B
	p.Pix[o+3] = 255
}

// fillCircle paints a filled disc; out-of-range pixels are clipped, so
// blobs near an edge simply get cut off (textures tile with REPEAT, the
// seams vanish into the noise).
func (p *pixmap) fillCircle(cx, cy, r int, c RGB) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				p.set(cx+dx, cy+dy, c)
			}
		}
	}
}

// GenHedgeTexture paints the leafy wall texture: a green base with layered
// leaf blobs in varying shades, dark gaps, and bright highlights.
func GenHedgeTexture(rng *Rand) *pixmap {
	p := newPixmap(WallTexSize, WallTexSize, Palette.HedgeBase)

	for i := 0; i < 350; i++ {
		x := rng.Intn(p.W)
		y := rng.Intn(p.H)
		shade := rng.Range(-30, 40)
		leaf := RGB{
			R: uint8(clamp(55+shade, 30, 100)),
			G: uint8(clamp(140+shade, 100, 180)),
			B: uint8(clamp(50+shade, 30, 90)),
		}
		p.fillCircle(x, y, rng.Range(4, 10), leaf)
	}
	for i := 0; i < 30; i++ {
		p.fillCircle(rng.Intn(p.W), rng.Intn(p.H), rng.Range(3, 6), Palette.HedgeDark)
	}
	for i := 0; i < 120; i++ {
		p.fillCircle(rng.Intn(p.W), rng.Intn(p.H), rng.Range(2, 5), Palette.HedgeLight)
	}
	return p
}

// GenFloorTexture paints the dirt path: sandy base with tonal speckle and
// scattered dark stones and light patches.
func GenFloorTexture(rng *Rand) *pixmap {
	p := newPixmap(FloorTexSize, FloorTexSize, Palette.PathBase)

	for i := 0; i < 400; i++ {
		x := rng.Intn(p.W)
		y := rng.Intn(p.H)
		shade := rng.Range(-30, 30)
		dirt := RGB{
			R: uint8(clamp(175+shade, 130, 210)),
			G: uint8(clamp(155+shade, 120, 190)),
			B: uint8(clamp(125+shade, 90, 160)),
		}
		p.fillCircle(x, y, rng.Range(2, 5), dirt)
	}
	for i := 0; i < 60; i++ {
		p.fillCircle(rng.Intn(p.W), rng.Intn(p.H), rng.Range(3, 6), Palette.PathDark)
	}
	for i := 0; i < 50; i++ {
		p.fillCircle(rng.Intn(p.W), rng.Intn(p.H), rng.Range(2, 4), Palette.PathLight)
	}
	return p
}

// GenCeilingTexture paints a dark per-pixel speckle, used only when the
// maze is configured with a closed ceiling.
func GenCeilingTexture(rng *Rand) *pixmap {
	p := newPixmap(CeilingTexSize, CeilingTexSize, Palette.CeilingBase)
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			v := rng.Range(-10, 10)
			p.set(x, y, Palette.CeilingBase.Add(v, v, v))
		}
	}
	return p
}
