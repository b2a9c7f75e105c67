package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxMaze builds a maze with every wall closed, for controlled collision tests.
func boxMaze(size int) *Maze {
	m := &Maze{Size: size, Cells: make([]Cell, size*size)}
	for i := range m.Cells {
		m.Cells[i].Walls = [4]bool{true, true, true, true}
	}
	return m
}

func openWall(m *Maze, x, y int, d Direction) {
	m.At(x, y).Walls[d] = false
	nx, ny := x+dirDX[d], y+dirDY[d]
	if m.InBounds(nx, ny) {
		m.At(nx, ny).Walls[dirOpposite[d]] = false
	}
}

func TestCamera_PitchClamp(t *testing.T) {
	t.Parallel()
	cam := NewCamera(0.5, 0.5, DefaultSensitivity)

	cam.Rotate(0, 10000)
	assert.InDelta(t, PitchLimit, cam.Pitch, 1e-9)

	cam.Rotate(0, -20000)
	assert.InDelta(t, -PitchLimit, cam.Pitch, 1e-9)
}

func TestCamera_YawFollowsMouse(t *testing.T) {
	t.Parallel()
	cam := NewCamera(0.5, 0.5, 0.2)
	start := cam.Yaw
	cam.Rotate(10, 0)
	assert.InDelta(t, start-2.0, cam.Yaw, 1e-9)
}

func TestCamera_Reset(t *testing.T) {
	t.Parallel()
	cam := NewCamera(0.5, 0.5, DefaultSensitivity)
	cam.X, cam.Z = 7.3, 9.1
	cam.Yaw, cam.Pitch = 145, 30
	cam.SpeedModifier = FastSpeedFactor
	cam.Launch()

	cam.Reset()
	assert.InDelta(t, 0.5, cam.X, 1e-9)
	assert.InDelta(t, 0.5, cam.Z, 1e-9)
	assert.InDelta(t, EyeHeight, cam.Y, 1e-9)
	assert.InDelta(t, SpawnYaw, cam.Yaw, 1e-9)
	assert.InDelta(t, 0.0, cam.Pitch, 1e-9)
	assert.InDelta(t, 1.0, cam.SpeedModifier, 1e-9)
	assert.False(t, cam.Launched)
}

func TestMove_BlockedByClosedWalls(t *testing.T) {
	t.Parallel()
	m := boxMaze(2)
	cam := NewCamera(0.5, 0.5, DefaultSensitivity)

	// Spawn yaw faces +X; big step straight into the east wall.
	cam.Move(0, 1, 0.5, m)
	assert.InDelta(t, 0.5, cam.X, 1e-9)
	assert.InDelta(t, 0.5, cam.Z, 1e-9)
}

func TestMove_ThroughOpenWall(t *testing.T) {
	t.Parallel()
	m := boxMaze(2)
	openWall(m, 0, 0, DirE)
	cam := NewCamera(0.5, 0.5, DefaultSensitivity)

	for i := 0; i < 20; i++ {
		cam.Move(0, 1, 0.05, m)
	}
	assert.Greater(t, cam.X, 1.0, "camera should cross into the next cell")
	cx, cz := cam.Cell()
	assert.Equal(t, 1, cx)
	assert.Equal(t, 0, cz)
}

func TestMove_SlidesAlongWall(t *testing.T) {
	t.Parallel()
	m := boxMaze(2)
	openWall(m, 0, 0, DirE)
	cam := NewCamera(0.5, 0.5, DefaultSensitivity)

	// Forward (+X) is open, strafe (+Z) runs into the south wall: the X
	// component must survive the blocked Z component.
	startX := cam.X
	cam.Move(1, 1, 0.1, m)
	assert.Greater(t, cam.X, startX)
	assert.InDelta(t, 0.5, cam.Z, 1e-9)
}

func TestMove_KeepsWallDistance(t *testing.T) {
	t.Parallel()
	m := boxMaze(2)
	cam := NewCamera(0.5, 0.5, DefaultSensitivity)

	// Creep toward the east wall in small steps: the radius keeps the
	// camera off the wall plane at x=1.
	for i := 0; i < 200; i++ {
		cam.Move(0, 1, 0.01, m)
	}
	assert.Less(t, cam.X, 1.0-PlayerRadius+1e-6)
}

func TestMove_SpeedModifierScalesStep(t *testing.T) {
	t.Parallel()
	m := boxMaze(9)
	for y := 0; y < 9; y++ {
		for x := 0; x < 8; x++ {
			openWall(m, x, y, DirE)
		}
	}

	normal := NewCamera(4.5, 4.5, DefaultSensitivity)
	normal.Move(0, 1, 0.1, m)

	boosted := NewCamera(4.5, 4.5, DefaultSensitivity)
	boosted.SpeedModifier = FastSpeedFactor
	boosted.Move(0, 1, 0.1, m)

	normalStep := normal.X - 4.5
	boostedStep := boosted.X - 4.5
	require.Greater(t, normalStep, 0.0)
	assert.InDelta(t, FastSpeedFactor, boostedStep/normalStep, 1e-6)
}

func TestLaunch_ArcAndLanding(t *testing.T) {
	t.Parallel()
	m := boxMaze(2)
	cam := NewCamera(0.5, 0.5, DefaultSensitivity)
	cam.Launch()
	require.True(t, cam.Launched)

	// Horizontal input is ignored while airborne.
	cam.Move(0, 1, 0.1, m)
	assert.InDelta(t, 0.5, cam.X, 1e-9)

	peak := cam.Y
	landed := false
	for i := 0; i < 1000; i++ {
		cam.UpdateLaunch(1.0 / 60.0)
		if cam.Y > peak {
			peak = cam.Y
		}
		if !cam.Launched {
			landed = true
			break
		}
	}
	require.True(t, landed, "launch arc should come back down")
	assert.Greater(t, peak, EyeHeight+1.0, "launch should clear the hedge tops")
	assert.InDelta(t, EyeHeight, cam.Y, 1e-9)
}

func TestLaunch_NoDoubleLaunch(t *testing.T) {
	t.Parallel()
	cam := NewCamera(0.5, 0.5, DefaultSensitivity)
	cam.Launch()
	cam.UpdateLaunch(0.3)
	velBefore := cam.launchVel
	cam.Launch()
	assert.InDelta(t, velBefore, cam.launchVel, 1e-9, "re-launch mid-air should be ignored")
}

func TestViewMatrix_PureTranslationWhenLevel(t *testing.T) {
	t.Parallel()
	cam := NewCamera(0, 0, DefaultSensitivity)
	cam.X, cam.Y, cam.Z = 1, 2, 3
	cam.Yaw, cam.Pitch = 0, 0

	got := cam.ViewMatrix()
	want := mat4Translate(-1, -2, -3)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6, "element %d", i)
	}
}

func TestCollides_OutsideGrid(t *testing.T) {
	t.Parallel()
	m := boxMaze(3)
	assert.True(t, collides(-1, 1, m, PlayerRadius))
	assert.True(t, collides(1, 4, m, PlayerRadius))
	assert.False(t, collides(1.5, 1.5, m, PlayerRadius))
}
