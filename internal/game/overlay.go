package game

import "math"

// Overlay geometry: alpha-blended quads floating just above the floor —
// special tile markers, the hint path, and the goal pad with its beacon.
// Vertex layout is (x,y,z, r,g,b,a); built CPU-side each frame.

const overlayStride = 7

func appendOverlayQuad(buf []float32, pos [4][3]float32, c RGBA) []float32 {
	order := [6]int{0, 1, 2, 0, 2, 3}
	for _, i := range order {
		buf = append(buf,
			pos[i][0], pos[i][1], pos[i][2],
			c.R, c.G, c.B, c.A,
		)
	}
	return buf
}

func appendFloorQuad(buf []float32, x0, z0, x1, z1, y float32, c RGBA) []float32 {
	return appendOverlayQuad(buf, [4][3]float32{
		{x0, y, z0}, {x1, y, z0}, {x1, y, z1}, {x0, y, z1},
	}, c)
}

// BuildOverlay assembles the per-frame overlay vertex buffer. now is the
// wall-clock time used for the goal pulse (matching the tile pulse driven
// by the tile system's animation clock).
func BuildOverlay(m *Maze, ts *TileSystem, now float64, buf []float32) []float32 {
	buf = buf[:0]

	pulse := 0.5 + 0.5*math.Sin(ts.AnimTime*3)
	for p, kind := range ts.Tiles {
		col, ok := tileOverlayColor(kind, pulse)
		if !ok {
			continue
		}
		buf = appendFloorQuad(buf, float32(p.X), float32(p.Y), float32(p.X+1), float32(p.Y+1), 0.01, col)
	}

	if ts.HintActive {
		hp := float32(0.3 + 0.3*math.Sin(ts.AnimTime*5))
		col := RGBA{1.0, 0.5, 0.0, 0.5 * hp}
		for _, p := range m.Solution() {
			buf = appendFloorQuad(buf,
				float32(p.X)+0.2, float32(p.Y)+0.2,
				float32(p.X)+0.8, float32(p.Y)+0.8,
				0.02, col)
		}
	}

	// Goal pad: triangle-wave pulse, plus a faint vertical beacon so the
	// exit is visible over the hedges from a launch pad.
	goal := m.Goal()
	gp := float32(0.5 + 0.5*math.Abs(math.Mod(now*2, 2)-1))
	gx, gz := float32(goal.X), float32(goal.Y)
	buf = appendFloorQuad(buf, gx+0.1, gz+0.1, gx+0.9, gz+0.9, 0.02, RGBA{0, gp, 0, 0.7})

	const beaconW = 0.03
	beacon := RGBA{0, gp, 0, 0.3}
	cx, cz := gx+0.5, gz+0.5
	buf = appendOverlayQuad(buf, [4][3]float32{
		{cx - beaconW, 0, cz}, {cx + beaconW, 0, cz},
		{cx + beaconW, 2.0, cz}, {cx - beaconW, 2.0, cz},
	}, beacon)
	buf = appendOverlayQuad(buf, [4][3]float32{
		{cx, 0, cz - beaconW}, {cx, 0, cz + beaconW},
		{cx, 2.0, cz + beaconW}, {cx, 2.0, cz - beaconW},
	}, beacon)

	return buf
}
