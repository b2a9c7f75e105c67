package game

import (
	"fmt"
	"math"
)

// RenderHUD queues the whole 2D layer for this frame: crosshair, stats
// panel, minimap while airborne, help text, notifications and the pause and
// win screens. The caller flushes the rect and text buffers afterwards.
func RenderHUD(r *Renderer, s *GameSession, cam *Camera, m *Maze, ts *TileSystem, fps float64, fbW, fbH int) {
	switch s.State {
	case StatePlaying:
		drawCrosshair(r, fbW, fbH)
		drawStatsPanel(r, s, cam, m, ts, fps)
		drawHelp(r, fbH)
		if cam.Launched {
			drawMinimap(r, cam, m, ts, fbW)
		}
	case StatePaused:
		drawStatsPanel(r, s, cam, m, ts, fps)
		drawPauseScreen(r, fbW, fbH)
	case StateWon:
		drawWinScreen(r, s, ts, fbW, fbH)
	}
	drawNotification(r, s, fbW, fbH)
}

func drawCrosshair(r *Renderer, fbW, fbH int) {
	cx := float32(fbW) / 2
	cy := float32(fbH) / 2
	c := RGBA{1, 1, 1, 0.7}
	r.HudRect(cx-CrosshairArm, cy-1, CrosshairArm*2, 2, c)
	r.HudRect(cx-1, cy-CrosshairArm, 2, CrosshairArm*2, c)
}

func drawStatsPanel(r *Renderer, s *GameSession, cam *Camera, m *Maze, ts *TileSystem, fps float64) {
	gx, gy := m.Goal().X, m.Goal().Y
	cellX, cellY := cam.Cell()
	dist := math.Hypot(float64(gx-cellX), float64(gy-cellY))

	lines := []struct {
		text string
		col  RGB
	}{
		{fmt.Sprintf("FPS %.0f", fps), Palette.HUDDim},
		{fmt.Sprintf("TIME %.1f", s.Elapsed), Palette.HUDText},
		{fmt.Sprintf("CELL %d,%d", cellX, cellY), Palette.HUDText},
		{fmt.Sprintf("GOAL %.0f AWAY", dist), Palette.HUDText},
		{fmt.Sprintf("HINTS %d", ts.HintsRemaining), Palette.HUDAccent},
	}
	if ts.SpeedModifier > 1.0 {
		lines = append(lines, struct {
			text string
			col  RGB
		}{"FAST!", Palette.NotifBoost})
	} else if ts.SpeedModifier < 1.0 {
		lines = append(lines, struct {
			text string
			col  RGB
		}{"SLOW", Palette.NotifSlow})
	}
	if cam.Launched {
		lines = append(lines, struct {
			text string
			col  RGB
		}{"AIRBORNE", Palette.NotifAir})
	}

	lineH := int(FontCellH * HUDTextScale)
	pad := 8
	panelW := 0
	for _, l := range lines {
		if w := TextWidth(l.text, HUDTextScale); w > panelW {
			panelW = w
		}
	}
	panelH := len(lines)*lineH + pad*2
	r.HudRect(float32(MinimapMargin-pad), float32(MinimapMargin-pad),
		float32(panelW+pad*2), float32(panelH), RGBA{0, 0, 0, 0.45})

	y := MinimapMargin
	for _, l := range lines {
		r.DrawString(l.text, MinimapMargin, y, HUDTextScale, l.col)
		y += lineH
	}
}

func drawHelp(r *Renderer, fbH int) {
	help := []string{
		"WASD MOVE  MOUSE LOOK",
		"H HINT  R RESET  N NEW MAZE",
		"P PAUSE  ESC QUIT",
	}
	lineH := int(FontCellH * HUDTextScale)
	y := fbH - MinimapMargin - len(help)*lineH
	for _, l := range help {
		r.DrawStringAlpha(l, MinimapMargin, y, HUDTextScale, Palette.HUDDim, 0.6)
		y += lineH
	}
}

// drawMinimap renders a top-down view of the maze while the player is in the
// air: walls as thin lines, tiles and goal as dots, and a pulsing player dot.
func drawMinimap(r *Renderer, cam *Camera, m *Maze, ts *TileSystem, fbW int) {
	ox := float32(fbW - MinimapMargin - MinimapSize)
	oy := float32(MinimapMargin)
	cell := float32(MinimapSize) / float32(m.Size)

	r.HudRect(ox-4, oy-4, MinimapSize+8, MinimapSize+8, RGBA{0, 0, 0, 0.6})

	wallCol := RGBA{0.3, 0.8, 0.3, 0.9}
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			px := ox + float32(x)*cell
			py := oy + float32(y)*cell
			if m.HasWall(x, y, DirN) {
				r.HudRect(px, py, cell, 1.5, wallCol)
			}
			if m.HasWall(x, y, DirW) {
				r.HudRect(px, py, 1.5, cell, wallCol)
			}
			if y == m.Size-1 && m.HasWall(x, y, DirS) {
				r.HudRect(px, py+cell, cell, 1.5, wallCol)
			}
			if x == m.Size-1 && m.HasWall(x, y, DirE) {
				r.HudRect(px+cell, py, 1.5, cell, wallCol)
			}
		}
	}

	dot := cell * 0.5
	for p, kind := range ts.Tiles {
		col, ok := tileMinimapColor(kind)
		if !ok {
			continue
		}
		px := ox + (float32(p.X)+0.5)*cell - dot/2
		py := oy + (float32(p.Y)+0.5)*cell - dot/2
		r.HudRect(px, py, dot, dot, col)
	}

	goal := m.Goal()
	r.HudRect(ox+(float32(goal.X)+0.25)*cell, oy+(float32(goal.Y)+0.25)*cell,
		cell*0.5, cell*0.5, RGBA{0, 1, 0, 1})

	pulse := float32(0.6 + 0.4*math.Sin(ts.AnimTime*6))
	px := ox + float32(cam.X)*cell
	py := oy + float32(cam.Z)*cell
	r.HudRect(px-3, py-3, 6, 6, RGBA{1, 1, 1, pulse})
}

func drawNotification(r *Renderer, s *GameSession, fbW, fbH int) {
	n, alpha, ok := s.ActiveNotification()
	if !ok {
		return
	}
	scale := float32(HUDLargeScale)
	if !n.Large {
		scale = HUDTextScale
	}
	w := TextWidth(n.Text, scale)
	x := (fbW - w) / 2
	y := fbH / 3
	r.DrawStringAlpha(n.Text, x, y, scale, n.Color, float32(alpha))
}

func drawPauseScreen(r *Renderer, fbW, fbH int) {
	r.HudRect(0, 0, float32(fbW), float32(fbH), RGBA{0, 0, 0, 0.5})
	title := "PAUSED"
	w := TextWidth(title, HUDTitleScale)
	r.DrawString(title, (fbW-w)/2, fbH/2-FontCellH*HUDTitleScale, HUDTitleScale, Palette.HUDText)
	sub := "P TO RESUME"
	sw := TextWidth(sub, HUDTextScale)
	r.DrawString(sub, (fbW-sw)/2, fbH/2+FontCellH, HUDTextScale, Palette.HUDDim)
}

func drawWinScreen(r *Renderer, s *GameSession, ts *TileSystem, fbW, fbH int) {
	r.HudRect(0, 0, float32(fbW), float32(fbH), RGBA{0, 0, 0, 0.6})

	pulse := float32(0.5 + 0.5*math.Sin(ts.AnimTime*4))
	border := RGBA{0.1, 1.0, 0.3, 0.4 + 0.5*pulse}
	bw := float32(6)
	r.HudRect(0, 0, float32(fbW), bw, border)
	r.HudRect(0, float32(fbH)-bw, float32(fbW), bw, border)
	r.HudRect(0, 0, bw, float32(fbH), border)
	r.HudRect(float32(fbW)-bw, 0, bw, float32(fbH), border)

	title := "MAZE COMPLETE!"
	w := TextWidth(title, HUDTitleScale)
	r.DrawString(title, (fbW-w)/2, fbH/3, HUDTitleScale, Palette.HUDGood)

	timeLine := fmt.Sprintf("TIME %.1f SECONDS", s.WinTime)
	tw := TextWidth(timeLine, HUDLargeScale)
	r.DrawString(timeLine, (fbW-tw)/2, fbH/3+FontCellH*HUDTitleScale+20, HUDLargeScale, Palette.HUDText)

	prompts := []string{"N NEW MAZE", "R RUN AGAIN", "ESC QUIT"}
	y := fbH/3 + FontCellH*HUDTitleScale + 20 + FontCellH*HUDLargeScale + 30
	for _, p := range prompts {
		pw := TextWidth(p, HUDTextScale)
		r.DrawString(p, (fbW-pw)/2, y, HUDTextScale, Palette.HUDDim)
		y += FontCellH * HUDTextScale
	}
}
