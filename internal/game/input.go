package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input tracks per-frame key edges and cursor movement on top of GLFW's
// polled state.
type Input struct {
	win      *glfw.Window
	prevKeys map[glfw.Key]bool

	prevCursorX float64
	prevCursorY float64
	firstCursor bool
}

func NewInput(win *glfw.Window) *Input {
	return &Input{
		win:         win,
		prevKeys:    make(map[glfw.Key]bool),
		firstCursor: true,
	}
}

// Down reports whether a key is currently held.
func (in *Input) Down(key glfw.Key) bool {
	return in.win.GetKey(key) == glfw.Press
}

// JustPressed reports a key transition from released to pressed since the
// last call for that key.
func (in *Input) JustPressed(key glfw.Key) bool {
	down := in.win.GetKey(key) == glfw.Press
	was := in.prevKeys[key]
	in.prevKeys[key] = down
	return down && !was
}

// CursorDelta returns the cursor movement since the previous frame. The
// first sample after creation or ResetCursor is swallowed so captured-cursor
// warps do not register as a camera jump.
func (in *Input) CursorDelta() (dx, dy float64) {
	x, y := in.win.GetCursorPos()
	if in.firstCursor {
		in.firstCursor = false
		in.prevCursorX, in.prevCursorY = x, y
		return 0, 0
	}
	dx = x - in.prevCursorX
	dy = y - in.prevCursorY
	in.prevCursorX, in.prevCursorY = x, y
	return dx, dy
}

// ResetCursor drops the stored cursor position. Called when the cursor is
// recaptured after a pause.
func (in *Input) ResetCursor() {
	in.firstCursor = true
}
