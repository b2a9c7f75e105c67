package game

import "math"

// Camera is the first-person controller: position in maze units (one cell =
// one unit on the XZ plane), yaw/pitch in degrees, plus launch-pad physics.
type Camera struct {
	X, Y, Z float64

	Yaw   float64
	Pitch float64

	BaseSpeed     float64
	SpeedModifier float64
	Sensitivity   float64
	Radius        float64

	Launched     bool
	launchHeight float64
	launchVel    float64

	spawnX, spawnZ float64
}

func NewCamera(x, z, sensitivity float64) *Camera {
	return &Camera{
		X:             x,
		Y:             EyeHeight,
		Z:             z,
		Yaw:           SpawnYaw,
		BaseSpeed:     BaseMoveSpeed,
		SpeedModifier: 1.0,
		Sensitivity:   sensitivity,
		Radius:        PlayerRadius,
		spawnX:        x,
		spawnZ:        z,
	}
}

// Rotate applies a mouse delta (window pixels) to yaw/pitch.
func (c *Camera) Rotate(dx, dy float64) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	c.Pitch = clampF(c.Pitch, -PitchLimit, PitchLimit)
}

// Reset puts the camera back at its spawn point facing into the maze and
// clears launch state and speed effects.
func (c *Camera) Reset() {
	c.X = c.spawnX
	c.Z = c.spawnZ
	c.Y = EyeHeight
	c.Yaw = SpawnYaw
	c.Pitch = 0
	c.Launched = false
	c.launchHeight = 0
	c.launchVel = 0
	c.SpeedModifier = 1.0
}

// Move advances the camera by WASD input (moveX = strafe, moveZ = forward,
// each in {-1,0,1}) with axis-separated collision so the player slides
// along walls. Horizontal input is ignored while airborne.
func (c *Camera) Move(moveX, moveZ, dt float64, m *Maze) {
	if c.Launched {
		return
	}

	yawRad := radians(c.Yaw)
	forwardX := -math.Sin(yawRad) * moveZ
	forwardZ := -math.Cos(yawRad) * moveZ
	strafeX := math.Sin(yawRad+math.Pi/2) * moveX
	strafeZ := math.Cos(yawRad+math.Pi/2) * moveX

	speed := c.BaseSpeed * c.SpeedModifier * dt
	dx := (forwardX + strafeX) * speed
	dz := (forwardZ + strafeZ) * speed

	if !collides(c.X+dx, c.Z, m, c.Radius) {
		c.X += dx
	}
	if !collides(c.X, c.Z+dz, m, c.Radius) {
		c.Z += dz
	}
}

// Launch kicks the camera into the air for a bird's-eye view.
func (c *Camera) Launch() {
	if c.Launched {
		return
	}
	c.Launched = true
	c.launchVel = LaunchVelocity
}

// UpdateLaunch integrates the launch arc and lands back at eye height.
func (c *Camera) UpdateLaunch(dt float64) {
	if !c.Launched && c.launchHeight == 0 {
		c.Y = EyeHeight
		return
	}
	c.launchVel -= LaunchGravity * dt
	c.launchHeight += c.launchVel * dt
	if c.launchHeight <= 0 {
		c.launchHeight = 0
		c.launchVel = 0
		c.Launched = false
	}
	c.Y = EyeHeight + c.launchHeight
}

// ViewMatrix builds the world-to-eye transform: pitch, then yaw, then the
// inverse translation (the fixed-function apply order of an FPS camera).
func (c *Camera) ViewMatrix() Mat4 {
	rx := mat4RotX(radians(c.Pitch))
	ry := mat4RotY(radians(-c.Yaw))
	t := mat4Translate(-c.X, -c.Y, -c.Z)
	return mat4Mul(mat4Mul(rx, ry), t)
}

// Cell returns the maze cell the camera currently stands in.
func (c *Camera) Cell() (int, int) {
	return int(math.Floor(c.X)), int(math.Floor(c.Z))
}
