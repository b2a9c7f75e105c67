package game

// Maze defaults.
const (
	DefaultMazeSize = 15
	WallHeight      = 1.0
	WallThickness   = 0.08
	EyeHeight       = 0.5
)

// Window defaults.
const (
	WindowWidth  = 1200
	WindowHeight = 800
	FOVDegrees   = 70.0
	NearClip     = 0.1
	FarClip      = 100.0
)

// Player movement.
const (
	BaseMoveSpeed      = 3.0
	PlayerRadius       = 0.2
	DefaultSensitivity = 0.2
	MinSensitivity     = 0.05
	MaxSensitivity     = 0.5
	PitchLimit         = 89.0
	SpawnYaw           = -90.0
)

// Launch pad physics.
const (
	LaunchVelocity = 12.0
	LaunchGravity  = 15.0
)

// Special tile tuning.
const (
	FastTileStride  = 4 // every Nth solution-path cell gets a boost tile
	MaxResetTraps   = 5
	MaxTurnTraps    = 3
	MaxSlowTiles    = 15
	SlowTileChance  = 0.1
	SlowSpeedFactor = 0.4
	FastSpeedFactor = 1.8
	TurnTrapDegrees = 90.0
	HintCharges     = 3
	HintDuration    = 5.0
)

// Procedural texture sizes.
const (
	WallTexSize    = 128
	FloorTexSize   = 128
	CeilingTexSize = 64
)

// Font atlas layout (procedural 5x7 glyphs, ASCII 0-127).
const (
	FontGlyphW = 5
	FontGlyphH = 7
	FontCellW  = 6
	FontCellH  = 8
	FontCols   = 32
	FontRows   = 4
	FontAtlasW = FontCellW * FontCols // 192
	FontAtlasH = FontCellH * FontRows // 32
)

// HUD layout.
const (
	HUDTextScale   = 2.0
	HUDLargeScale  = 3.0
	HUDTitleScale  = 5.0
	MinimapSize    = 200
	MinimapMargin  = 20
	CrosshairArm   = 10
	NotifyFadeTime = 0.5
)
