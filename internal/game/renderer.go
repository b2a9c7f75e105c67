package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Ambient light level; the rest of the lighting comes from the point light
// that follows the player (see worldFragSrc).
const worldAmbient = 0.55

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// staticMesh is one uploaded vertex buffer of maze geometry.
type staticMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

type Renderer struct {
	// World (textured maze) program.
	worldProg  uint32
	wUProj     int32
	wUView     int32
	wUTex      int32
	wUAmbient  int32
	wULightPos int32

	floor   staticMesh
	walls   staticMesh
	ceiling staticMesh

	wallTex  uint32
	floorTex uint32
	ceilTex  uint32

	// Overlay (blended world-space quads) program.
	ovProg  uint32
	ovUProj int32
	ovUView int32
	ovVAO   uint32
	ovVBO   uint32

	// HUD (screen-space coloured quads) program.
	hudProg uint32
	hudURes int32
	hudVAO  uint32
	hudVBO  uint32
	hudBuf  []float32

	// Text pipeline.
	textProg     uint32
	textURes     int32
	textUFontTex int32
	textVAO      uint32
	textVBO      uint32
	textBuf      []float32
	fontTex      uint32
}

func NewRenderer() (*Renderer, error) {
	worldProg, err := linkProgram(worldVertSrc, worldFragSrc)
	if err != nil {
		return nil, fmt.Errorf("world program: %w", err)
	}
	ovProg, err := linkProgram(overlayVertSrc, overlayFragSrc)
	if err != nil {
		gl.DeleteProgram(worldProg)
		return nil, fmt.Errorf("overlay program: %w", err)
	}
	hudProg, err := linkProgram(hudVertSrc, hudFragSrc)
	if err != nil {
		gl.DeleteProgram(worldProg)
		gl.DeleteProgram(ovProg)
		return nil, fmt.Errorf("hud program: %w", err)
	}
	textProg, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		gl.DeleteProgram(worldProg)
		gl.DeleteProgram(ovProg)
		gl.DeleteProgram(hudProg)
		return nil, fmt.Errorf("text program: %w", err)
	}

	r := &Renderer{
		worldProg: worldProg,
		ovProg:    ovProg,
		hudProg:   hudProg,
		textProg:  textProg,
	}

	// World uniforms.
	gl.UseProgram(worldProg)
	r.wUProj = gl.GetUniformLocation(worldProg, gl.Str("uProj\x00"))
	r.wUView = gl.GetUniformLocation(worldProg, gl.Str("uView\x00"))
	r.wUTex = gl.GetUniformLocation(worldProg, gl.Str("uTex\x00"))
	r.wUAmbient = gl.GetUniformLocation(worldProg, gl.Str("uAmbient\x00"))
	r.wULightPos = gl.GetUniformLocation(worldProg, gl.Str("uLightPos\x00"))
	gl.Uniform1i(r.wUTex, 0)
	gl.Uniform1f(r.wUAmbient, worldAmbient)

	// Static world meshes. Layout: pos(3) uv(2) color(3).
	for _, m := range []*staticMesh{&r.floor, &r.walls, &r.ceiling} {
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(1, &m.vbo)
		gl.BindVertexArray(m.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
		stride := int32(meshStride * 4)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(3*4))
		gl.EnableVertexAttribArray(2)
		gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, glOffset(5*4))
	}

	// Overlay uniforms and streaming buffer. Layout: pos(3) color(4).
	gl.UseProgram(ovProg)
	r.ovUProj = gl.GetUniformLocation(ovProg, gl.Str("uProj\x00"))
	r.ovUView = gl.GetUniformLocation(ovProg, gl.Str("uView\x00"))
	gl.GenVertexArrays(1, &r.ovVAO)
	gl.GenBuffers(1, &r.ovVBO)
	gl.BindVertexArray(r.ovVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.ovVBO)
	ovStride := int32(overlayStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, ovStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, ovStride, glOffset(3*4))

	// HUD program and streaming buffer. Layout: pos(2) color(4).
	gl.UseProgram(hudProg)
	r.hudURes = gl.GetUniformLocation(hudProg, gl.Str("uResolution\x00"))
	gl.GenVertexArrays(1, &r.hudVAO)
	gl.GenBuffers(1, &r.hudVBO)
	gl.BindVertexArray(r.hudVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.hudVBO)
	hudStride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, hudStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, hudStride, glOffset(2*4))

	// Text program and streaming buffer. Layout: pos(2) uv(2) color(4).
	gl.UseProgram(textProg)
	r.textURes = gl.GetUniformLocation(textProg, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(textProg, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2)
	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	textStride := int32(8 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, textStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, textStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, textStride, glOffset(4*4))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.floor.vbo, r.walls.vbo, r.ceiling.vbo, r.ovVBO, r.hudVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.floor.vao, r.walls.vao, r.ceiling.vao, r.ovVAO, r.hudVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.worldProg, r.ovProg, r.hudProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.wallTex, r.floorTex, r.ceilTex, r.fontTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

// uploadPixmap creates a GL texture from a pixmap. World textures repeat;
// the font atlas clamps.
func uploadPixmap(p *pixmap, repeat bool) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	wrap := int32(gl.CLAMP_TO_EDGE)
	if repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(p.W), int32(p.H), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(p.Pix))
	return tex
}

// InitTextures generates and uploads the procedural surface textures.
func (r *Renderer) InitTextures(rng *Rand) {
	r.wallTex = uploadPixmap(GenHedgeTexture(rng), true)
	r.floorTex = uploadPixmap(GenFloorTexture(rng), true)
	r.ceilTex = uploadPixmap(GenCeilingTexture(rng), true)
}

// InitFont rasterizes the glyph atlas and uploads it to texture unit 2.
func (r *Renderer) InitFont() {
	r.fontTex = uploadPixmap(BuildFontAtlas(), false)
}

func uploadStatic(m *staticMesh, data []float32) {
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	m.count = int32(len(data) / meshStride)
	if len(data) == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

// UploadMaze replaces the static maze geometry (called on regeneration).
func (r *Renderer) UploadMaze(mesh MazeMesh) {
	uploadStatic(&r.floor, mesh.Floor)
	uploadStatic(&r.walls, mesh.Walls)
	uploadStatic(&r.ceiling, mesh.Ceiling)
	gl.BindVertexArray(0)
}

// BeginFrame clears the framebuffer to the sky colour and primes the world
// and overlay programs with this frame's camera matrices.
func (r *Renderer) BeginFrame(proj, view Mat4, lightX, lightY, lightZ float64, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(Palette.Sky.R)/255.0,
		float32(Palette.Sky.G)/255.0,
		float32(Palette.Sky.B)/255.0,
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	gl.UseProgram(r.worldProg)
	gl.UniformMatrix4fv(r.wUProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.wUView, 1, false, &view[0])
	gl.Uniform3f(r.wULightPos, float32(lightX), float32(lightY), float32(lightZ))

	gl.UseProgram(r.ovProg)
	gl.UniformMatrix4fv(r.ovUProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.ovUView, 1, false, &view[0])
}

// DrawMaze renders the three textured passes.
func (r *Renderer) DrawMaze() {
	gl.UseProgram(r.worldProg)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindTexture(gl.TEXTURE_2D, r.floorTex)
	gl.BindVertexArray(r.floor.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.floor.count)

	gl.BindTexture(gl.TEXTURE_2D, r.wallTex)
	gl.BindVertexArray(r.walls.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.walls.count)

	if r.ceiling.count > 0 {
		gl.BindTexture(gl.TEXTURE_2D, r.ceilTex)
		gl.BindVertexArray(r.ceiling.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, r.ceiling.count)
	}
}

// DrawOverlay streams and renders the blended world-space quads. Depth is
// read but not written so markers never punch holes in later passes.
func (r *Renderer) DrawOverlay(buf []float32) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(r.ovProg)
	gl.BindVertexArray(r.ovVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.ovVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)

	gl.DepthMask(false)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(buf)/overlayStride))
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
}

// HudRect queues a filled screen-space rectangle.
func (r *Renderer) HudRect(x, y, w, h float32, c RGBA) {
	x1, y1 := x+w, y+h
	pts := [6][2]float32{
		{x, y}, {x1, y}, {x1, y1},
		{x, y}, {x1, y1}, {x, y1},
	}
	for _, p := range pts {
		r.hudBuf = append(r.hudBuf, p[0], p[1], c.R, c.G, c.B, c.A)
	}
}

// FlushHUD draws all queued HUD rectangles over the scene.
func (r *Renderer) FlushHUD(fbW, fbH int) {
	if len(r.hudBuf) == 0 {
		return
	}
	gl.UseProgram(r.hudProg)
	gl.BindVertexArray(r.hudVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.hudVBO)
	gl.Uniform2f(r.hudURes, float32(fbW), float32(fbH))
	gl.BufferData(gl.ARRAY_BUFFER, len(r.hudBuf)*4, gl.Ptr(r.hudBuf), gl.STREAM_DRAW)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.hudBuf)/6))
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)

	r.hudBuf = r.hudBuf[:0]
}

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB, alpha float32) {
	if ch < 32 || ch > 126 {
		return
	}
	c := int(ch)
	column := c % FontCols
	row := c / FontCols

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale

	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0

	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, alpha,
		sx+w, sy, u1, v0, cr, cg, cb, alpha,
		sx, sy+h, u0, v1, cr, cg, cb, alpha,
		sx+w, sy, u1, v0, cr, cg, cb, alpha,
		sx+w, sy+h, u1, v1, cr, cg, cb, alpha,
		sx, sy+h, u0, v1, cr, cg, cb, alpha,
	)
}

// DrawString queues a string at screen pixel position (sx, sy).
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	r.DrawStringAlpha(text, sx, sy, scale, col, 1.0)
}

func (r *Renderer) DrawStringAlpha(text string, sx, sy int, scale float32, col RGB, alpha float32) {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col, alpha)
		x += advance
	}
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.textBuf) / 8
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
