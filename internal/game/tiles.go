package game

// TileKind tags the special gameplay tiles scattered through the maze.
type TileKind int

const (
	TileNone TileKind = iota
	TileTrapReset
	TileTrapTurn
	TileLaunch
	TileSlow
	TileFast
)

func (k TileKind) String() string {
	switch k {
	case TileTrapReset:
		return "trap-reset"
	case TileTrapTurn:
		return "trap-turn"
	case TileLaunch:
		return "launch"
	case TileSlow:
		return "slow"
	case TileFast:
		return "fast"
	}
	return "none"
}

// oneShot tiles fire once on entry; zone tiles apply while stood on.
func (k TileKind) oneShot() bool {
	return k == TileTrapReset || k == TileTrapTurn || k == TileLaunch
}

// TileSystem places special tiles on a maze and tracks their per-frame
// effects plus the hint charges for the current run.
type TileSystem struct {
	Tiles map[CellPos]TileKind

	SpeedModifier float64
	AnimTime      float64

	HintsRemaining int
	HintActive     bool
	hintTimer      float64

	current    CellPos
	hasCurrent bool
}

// NewTileSystem seeds tiles onto a freshly generated maze:
// boost tiles along the solution path, traps on dead ends, slow zones off
// the path, and a few launch pads anywhere free.
func NewTileSystem(m *Maze, rng *Rand) *TileSystem {
	ts := &TileSystem{
		Tiles:          make(map[CellPos]TileKind),
		SpeedModifier:  1.0,
		HintsRemaining: HintCharges,
	}

	path := m.Solution()
	onPath := make(map[CellPos]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	// Boost tiles on every FastTileStride-th interior path cell.
	for i, p := range path {
		if i > 0 && i < len(path)-1 && i%FastTileStride == 0 {
			ts.Tiles[p] = TileFast
		}
	}

	// Traps only on dead ends, at most a third of them per trap kind.
	ends := m.DeadEnds()
	pick := func(kind TileKind, limit int) {
		shuffled := make([]CellPos, len(ends))
		copy(shuffled, ends)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		count := len(ends) / 3
		if count > limit {
			count = limit
		}
		placed := 0
		for _, p := range shuffled {
			if placed >= count {
				break
			}
			if _, taken := ts.Tiles[p]; taken {
				continue
			}
			ts.Tiles[p] = kind
			placed++
		}
	}
	pick(TileTrapReset, MaxResetTraps)
	pick(TileTrapTurn, MaxTurnTraps)

	// Slow zones off the solution path.
	slow := 0
	for y := 0; y < m.Size && slow < MaxSlowTiles; y++ {
		for x := 0; x < m.Size && slow < MaxSlowTiles; x++ {
			p := CellPos{x, y}
			if _, taken := ts.Tiles[p]; taken || onPath[p] {
				continue
			}
			if rng.Float64() < SlowTileChance {
				ts.Tiles[p] = TileSlow
				slow++
			}
		}
	}

	// Launch pads on any remaining free cell except entrance and goal.
	var free []CellPos
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			p := CellPos{x, y}
			if _, taken := ts.Tiles[p]; taken || p == m.Start() || p == m.Goal() {
				continue
			}
			free = append(free, p)
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	pads := m.Size * m.Size / 10
	if pads > 3 {
		pads = 3
	}
	if pads > len(free) {
		pads = len(free)
	}
	for _, p := range free[:pads] {
		ts.Tiles[p] = TileLaunch
	}

	return ts
}

// Check evaluates the tile under the player. It returns the tile kind and
// whether its effect fires this frame. One-shot tiles (traps, launch pads)
// fire only on entry; zone tiles set the speed modifier while occupied and
// fire on entry for notification purposes.
func (ts *TileSystem) Check(x, y int) (TileKind, bool) {
	ts.SpeedModifier = 1.0

	p := CellPos{x, y}
	kind, ok := ts.Tiles[p]
	if !ok {
		ts.hasCurrent = false
		return TileNone, false
	}

	entered := !ts.hasCurrent || ts.current != p
	ts.current = p
	ts.hasCurrent = true

	switch kind {
	case TileSlow:
		ts.SpeedModifier = SlowSpeedFactor
	case TileFast:
		ts.SpeedModifier = FastSpeedFactor
	}

	return kind, entered
}

// ResetEffects clears transient state after a position reset.
func (ts *TileSystem) ResetEffects() {
	ts.SpeedModifier = 1.0
	ts.hasCurrent = false
}

// UseHint consumes a hint charge and starts the solution overlay.
// Returns false when out of charges or a hint is already showing.
func (ts *TileSystem) UseHint() bool {
	if ts.HintsRemaining <= 0 || ts.HintActive {
		return false
	}
	ts.HintsRemaining--
	ts.HintActive = true
	ts.hintTimer = HintDuration
	return true
}

// Update advances tile animation and the hint countdown.
func (ts *TileSystem) Update(dt float64) {
	ts.AnimTime += dt
	if ts.HintActive {
		ts.hintTimer -= dt
		if ts.hintTimer <= 0 {
			ts.HintActive = false
			ts.hintTimer = 0
		}
	}
}
