package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTiles(t *testing.T, seed uint64) (*Maze, *TileSystem) {
	t.Helper()
	rng := NewRand(seed)
	m := GenerateMaze(15, rng)
	return m, NewTileSystem(m, rng)
}

func TestTilePlacement_BoostOnSolutionPath(t *testing.T) {
	t.Parallel()
	m, ts := newTestTiles(t, 42)

	path := m.Solution()
	onPath := make(map[CellPos]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	fast := 0
	for p, kind := range ts.Tiles {
		if kind == TileFast {
			fast++
			assert.True(t, onPath[p], "boost tile %v is off the solution path", p)
		}
	}
	assert.Greater(t, fast, 0, "a 15x15 maze should get boost tiles")

	// Never on the entrance or the goal.
	assert.NotEqual(t, TileFast, ts.Tiles[m.Start()])
	assert.NotEqual(t, TileFast, ts.Tiles[m.Goal()])
}

func TestTilePlacement_TrapsOnDeadEnds(t *testing.T) {
	t.Parallel()
	m, ts := newTestTiles(t, 7)

	deadEnd := make(map[CellPos]bool)
	for _, p := range m.DeadEnds() {
		deadEnd[p] = true
	}

	resets, turns := 0, 0
	for p, kind := range ts.Tiles {
		switch kind {
		case TileTrapReset:
			resets++
			assert.True(t, deadEnd[p], "reset trap %v is not on a dead end", p)
		case TileTrapTurn:
			turns++
			assert.True(t, deadEnd[p], "turn trap %v is not on a dead end", p)
		}
	}
	assert.LessOrEqual(t, resets, MaxResetTraps)
	assert.LessOrEqual(t, turns, MaxTurnTraps)
}

func TestTilePlacement_SlowZonesOffPath(t *testing.T) {
	t.Parallel()
	m, ts := newTestTiles(t, 99)

	onPath := make(map[CellPos]bool)
	for _, p := range m.Solution() {
		onPath[p] = true
	}

	slow := 0
	for p, kind := range ts.Tiles {
		if kind == TileSlow {
			slow++
			assert.False(t, onPath[p], "slow zone %v is on the solution path", p)
		}
	}
	assert.LessOrEqual(t, slow, MaxSlowTiles)
}

func TestTilePlacement_LaunchPads(t *testing.T) {
	t.Parallel()
	m, ts := newTestTiles(t, 5)

	pads := 0
	for p, kind := range ts.Tiles {
		if kind == TileLaunch {
			pads++
			assert.NotEqual(t, m.Start(), p)
			assert.NotEqual(t, m.Goal(), p)
		}
	}
	assert.LessOrEqual(t, pads, 3)
	assert.Greater(t, pads, 0)
}

func TestCheck_FiresOnEntryOnly(t *testing.T) {
	t.Parallel()
	ts := &TileSystem{
		Tiles:         map[CellPos]TileKind{{3, 4}: TileTrapReset},
		SpeedModifier: 1.0,
	}

	kind, fired := ts.Check(3, 4)
	assert.Equal(t, TileTrapReset, kind)
	assert.True(t, fired, "first frame on the tile should fire")

	kind, fired = ts.Check(3, 4)
	assert.Equal(t, TileTrapReset, kind)
	assert.False(t, fired, "staying on the tile should not re-fire")

	// Leave and come back: fires again.
	_, fired = ts.Check(0, 0)
	assert.False(t, fired)
	_, fired = ts.Check(3, 4)
	assert.True(t, fired)
}

func TestCheck_SpeedModifiers(t *testing.T) {
	t.Parallel()
	ts := &TileSystem{
		Tiles: map[CellPos]TileKind{
			{1, 1}: TileFast,
			{2, 2}: TileSlow,
		},
		SpeedModifier: 1.0,
	}

	ts.Check(1, 1)
	assert.InDelta(t, FastSpeedFactor, ts.SpeedModifier, 1e-9)

	ts.Check(2, 2)
	assert.InDelta(t, SlowSpeedFactor, ts.SpeedModifier, 1e-9)

	// Off any tile the modifier returns to neutral.
	ts.Check(0, 0)
	assert.InDelta(t, 1.0, ts.SpeedModifier, 1e-9)
}

func TestResetEffects(t *testing.T) {
	t.Parallel()
	ts := &TileSystem{
		Tiles:         map[CellPos]TileKind{{1, 1}: TileFast},
		SpeedModifier: 1.0,
	}
	ts.Check(1, 1)
	require.InDelta(t, FastSpeedFactor, ts.SpeedModifier, 1e-9)

	ts.ResetEffects()
	assert.InDelta(t, 1.0, ts.SpeedModifier, 1e-9)

	// After a reset, re-entering the same tile fires again.
	_, fired := ts.Check(1, 1)
	assert.True(t, fired)
}

func TestUseHint_ChargesAndDuration(t *testing.T) {
	t.Parallel()
	ts := &TileSystem{HintsRemaining: HintCharges}

	assert.True(t, ts.UseHint())
	assert.Equal(t, HintCharges-1, ts.HintsRemaining)
	assert.True(t, ts.HintActive)

	// A second press while one is showing is refused and costs nothing.
	assert.False(t, ts.UseHint())
	assert.Equal(t, HintCharges-1, ts.HintsRemaining)

	// The hint expires after HintDuration seconds.
	ts.Update(HintDuration + 0.01)
	assert.False(t, ts.HintActive)

	assert.True(t, ts.UseHint())
	ts.Update(HintDuration + 0.01)
	assert.True(t, ts.UseHint())
	ts.Update(HintDuration + 0.01)

	// Out of charges.
	assert.False(t, ts.UseHint())
	assert.Equal(t, 0, ts.HintsRemaining)
}

func TestTileKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "trap-reset", TileTrapReset.String())
	assert.Equal(t, "launch", TileLaunch.String())
	assert.Equal(t, "none", TileNone.String())
}

func TestTileKind_OneShot(t *testing.T) {
	t.Parallel()
	assert.True(t, TileTrapReset.oneShot())
	assert.True(t, TileTrapTurn.oneShot())
	assert.True(t, TileLaunch.oneShot())
	assert.False(t, TileSlow.oneShot())
	assert.False(t, TileFast.oneShot())
}
