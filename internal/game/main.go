package game

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	settings := LoadSettings()

	window, err := initWindow(settings)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if settings.Audio {
		if err := InitAudio(); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			go func() {
				time.Sleep(100 * time.Millisecond) // let audio context initialize
				StartAmbient()
			}()
		}
	}

	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := NewRand(seed)

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	rend.InitTextures(rng)
	rend.InitFont()

	session := NewGameSession()
	input := NewInput(window)

	var (
		maze  *Maze
		tiles *TileSystem
		cam   *Camera
	)

	// newMaze carves a fresh maze, reseeds the tiles and puts the player at
	// the entrance.
	newMaze := func() {
		maze = GenerateMaze(settings.MazeSize, rng)
		tiles = NewTileSystem(maze, rng)
		cam = NewCamera(0.5, 0.5, settings.Sensitivity)
		rend.UploadMaze(BuildMazeMesh(maze, rng, settings.Ceiling))
		session.StartRun()
		session.Notify("FIND THE EXIT!", Palette.HUDGood, 2.5, true)
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		input.ResetCursor()
		fmt.Printf("run %s: maze %dx%d seed %d\n", session.RunID, maze.Size, maze.Size, seed)
	}
	newMaze()

	fmt.Println("WASD move, mouse look, H hint, R reset, N new maze, P pause, ESC quit")

	var overlayBuf []float32
	fps := 60.0

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}
		if dt > 0 {
			fps += (1.0/dt - fps) * 0.05
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Keys that work in any state.
		if input.JustPressed(glfw.KeyN) {
			PlaySound(SoundNewMaze)
			newMaze()
		}
		if input.JustPressed(glfw.KeyR) {
			wasWon := session.State == StateWon
			cam.Reset()
			tiles.ResetEffects()
			session.ResetClock()
			session.Notify("BACK TO START", Palette.HUDDim, 1.5, false)
			if wasWon {
				window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
				input.ResetCursor()
			}
		}
		if input.JustPressed(glfw.KeyP) && session.State != StateWon {
			session.TogglePause()
			if session.State == StatePaused {
				window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
			} else {
				window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
				input.ResetCursor()
			}
		}
		if input.JustPressed(glfw.KeyEqual) {
			cam.Sensitivity = clampF(cam.Sensitivity+0.05, MinSensitivity, MaxSensitivity)
			session.Notify(fmt.Sprintf("SENSITIVITY %.2f", cam.Sensitivity), Palette.HUDDim, 1.0, false)
		}
		if input.JustPressed(glfw.KeyMinus) {
			cam.Sensitivity = clampF(cam.Sensitivity-0.05, MinSensitivity, MaxSensitivity)
			session.Notify(fmt.Sprintf("SENSITIVITY %.2f", cam.Sensitivity), Palette.HUDDim, 1.0, false)
		}

		if session.State == StatePlaying {
			if input.JustPressed(glfw.KeyH) {
				if tiles.UseHint() {
					PlaySound(SoundHint)
					session.Notify("FOLLOW THE GLOW", Palette.HUDAccent, 2.0, false)
				} else if tiles.HintsRemaining <= 0 {
					PlaySound(SoundDenied)
					session.Notify("NO HINTS LEFT", Palette.HUDWarn, 1.5, false)
				}
			}

			dx, dy := input.CursorDelta()
			cam.Rotate(dx, dy)

			var moveX, moveZ float64
			if input.Down(glfw.KeyW) {
				moveZ += 1
			}
			if input.Down(glfw.KeyS) {
				moveZ -= 1
			}
			if input.Down(glfw.KeyA) {
				moveX -= 1
			}
			if input.Down(glfw.KeyD) {
				moveX += 1
			}

			cam.UpdateLaunch(dt)
			cam.Move(moveX, moveZ, dt, maze)

			cx, cz := cam.Cell()
			kind, fired := tiles.Check(cx, cz)
			if fired {
				switch kind {
				case TileTrapReset:
					PlaySound(SoundTrap)
					cam.Reset()
					tiles.ResetEffects()
					session.ResetClock()
					session.Notify("TRAP! BACK TO START", Palette.NotifTrap, 2.5, true)
				case TileTrapTurn:
					PlaySound(SoundDizzy)
					cam.Yaw += TurnTrapDegrees
					session.Notify("DIZZY!", Palette.NotifDizzy, 2.0, true)
				case TileLaunch:
					PlaySound(SoundLaunch)
					cam.Launch()
					session.Notify("LAUNCHED!", Palette.NotifAir, 2.0, true)
				case TileFast:
					PlaySound(SoundBoost)
					session.Notify("SPEED BOOST", Palette.NotifBoost, 1.2, false)
				case TileSlow:
					PlaySound(SoundSlow)
					session.Notify("SLOWED...", Palette.NotifSlow, 1.2, false)
				}
			}
			cam.SpeedModifier = tiles.SpeedModifier

			tiles.Update(dt)

			if !cam.Launched {
				cx, cz = cam.Cell()
				if (CellPos{cx, cz}) == maze.Goal() {
					session.Win()
					PlaySound(SoundWin)
					window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
				}
			}
		} else if session.State == StateWon {
			tiles.Update(dt) // keep the win screen pulsing
		}
		session.Update(dt)

		// Render.
		aspect := float64(fbW) / float64(fbH)
		proj := mat4Perspective(FOVDegrees, aspect, NearClip, FarClip)
		view := cam.ViewMatrix()

		rend.BeginFrame(proj, view, cam.X, cam.Y, cam.Z, fbW, fbH)
		rend.DrawMaze()

		overlayBuf = BuildOverlay(maze, tiles, now, overlayBuf[:0])
		rend.DrawOverlay(overlayBuf)

		RenderHUD(rend, session, cam, maze, tiles, fps, fbW, fbH)
		rend.FlushHUD(fbW, fbH)
		rend.FlushText(fbW, fbH)

		window.SwapBuffers()
	}
}
