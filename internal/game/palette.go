package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := clamp(int(c.R)+dr, 0, 255)
	g := clamp(int(c.G)+dg, 0, 255)
	b := clamp(int(c.B)+db, 0, 255)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// RGBA is an RGB colour with straight alpha in [0,1], used for overlays.
type RGBA struct {
	R, G, B, A float32
}

var Palette = struct {
	Sky         RGB
	HedgeBase   RGB
	HedgeDark   RGB
	HedgeLight  RGB
	PathBase    RGB
	PathDark    RGB
	PathLight   RGB
	CeilingBase RGB

	HUDText    RGB
	HUDAccent  RGB
	HUDWarn    RGB
	HUDGood    RGB
	HUDDim     RGB
	NotifTrap  RGB
	NotifDizzy RGB
	NotifBoost RGB
	NotifSlow  RGB
	NotifAir   RGB
}{
	Sky:         RGB{R: 135, G: 206, B: 250},
	HedgeBase:   RGB{R: 50, G: 130, B: 50},
	HedgeDark:   RGB{R: 35, G: 80, B: 35},
	HedgeLight:  RGB{R: 80, G: 170, B: 70},
	PathBase:    RGB{R: 180, G: 160, B: 130},
	PathDark:    RGB{R: 140, G: 120, B: 90},
	PathLight:   RGB{R: 200, G: 185, B: 160},
	CeilingBase: RGB{R: 40, G: 40, B: 50},

	HUDText:    RGB{R: 255, G: 255, B: 255},
	HUDAccent:  RGB{R: 255, G: 200, B: 100},
	HUDWarn:    RGB{R: 255, G: 100, B: 100},
	HUDGood:    RGB{R: 100, G: 255, B: 100},
	HUDDim:     RGB{R: 180, G: 180, B: 180},
	NotifTrap:  RGB{R: 255, G: 50, B: 50},
	NotifDizzy: RGB{R: 200, G: 50, B: 200},
	NotifBoost: RGB{R: 0, G: 255, B: 255},
	NotifSlow:  RGB{R: 100, G: 150, B: 255},
	NotifAir:   RGB{R: 255, G: 255, B: 50},
}

// tileOverlayColor returns the pulsing floor overlay colour for a tile kind.
func tileOverlayColor(kind TileKind, pulse float64) (RGBA, bool) {
	p := float32(pulse)
	switch kind {
	case TileTrapReset:
		return RGBA{1.0, 0.2, 0.2, 0.7 * p}, true
	case TileTrapTurn:
		return RGBA{0.9, 0.2, 0.9, 0.7 * p}, true
	case TileLaunch:
		return RGBA{1.0, 0.9, 0.2, 0.8 * p}, true
	case TileSlow:
		return RGBA{0.3, 0.5, 1.0, 0.5 * p}, true
	case TileFast:
		return RGBA{0.0, 1.0, 1.0, 0.8 * p}, true
	}
	return RGBA{}, false
}

// tileMinimapColor returns the minimap dot colour for a tile kind.
func tileMinimapColor(kind TileKind) (RGBA, bool) {
	switch kind {
	case TileTrapReset:
		return RGBA{1, 0, 0, 0.8}, true
	case TileTrapTurn:
		return RGBA{0.8, 0, 0.8, 0.8}, true
	case TileLaunch:
		return RGBA{1, 1, 0, 0.8}, true
	case TileSlow:
		return RGBA{0, 0, 1, 0.6}, true
	case TileFast:
		return RGBA{0, 1, 0, 0.8}, true
	}
	return RGBA{}, false
}
