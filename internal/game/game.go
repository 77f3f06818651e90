// Package game wires the engine pieces into the walking demo: window,
// renderer, terrain, optional physics world, mouse capture and the
// player controller, driven by the main loop.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sableforge/driftwalk/internal/config"
	"github.com/sableforge/driftwalk/internal/engine/camera"
	"github.com/sableforge/driftwalk/internal/engine/input"
	"github.com/sableforge/driftwalk/internal/engine/physics"
	"github.com/sableforge/driftwalk/internal/engine/player"
	"github.com/sableforge/driftwalk/internal/engine/renderer"
	"github.com/sableforge/driftwalk/internal/engine/terrain"
	"github.com/sableforge/driftwalk/internal/engine/window"
)

const title = "Driftwalk"

// wall is a static obstacle, rendered and collided as a box.
type wall struct {
	Center mgl32.Vec3
	Size   mgl32.Vec3
}

// Game is the demo host.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	pump     *input.Pump
	session  *input.CaptureSession
	cam      *camera.FirstPerson

	grid   *terrain.Heightmap
	bounds *terrain.Bounds
	world  *physics.World
	walls  []wall
	ctrl   *player.Controller
}

// New creates the demo from configuration.
func New(cfg *config.Config) (*Game, error) {
	slog.Info("initializing",
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
		"terrain", cfg.Terrain.Enabled,
		"physics", cfg.Physics.Enabled,
	)

	g := &Game{cfg: cfg}

	// Window first: it owns the OpenGL context.
	var err error
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.pump = input.NewPump()
	g.cam = camera.New(cfg.Camera.FOV, cfg.Camera.Sensitivity)

	if cfg.Terrain.Enabled {
		g.grid = terrain.Generate(terrain.GenerateParams{
			Rows:      cfg.Terrain.Rows,
			Cols:      cfg.Terrain.Cols,
			CellSize:  cfg.Terrain.CellSize,
			Amplitude: cfg.Terrain.Amplitude,
		})
		min, max := g.grid.MinMax()
		g.bounds = &terrain.Bounds{Min: min, Max: max}
		g.renderer.UploadTerrain(terrain.BuildMesh(g.grid))
	}

	if cfg.Physics.Enabled {
		g.world = physics.NewWorld(mgl32.Vec3{0, -cfg.Player.Gravity, 0})
		floor := cfg.Player.FloorLevel
		if g.bounds != nil {
			floor = g.bounds.Min
		}
		g.world.SetFloor(floor)
		g.addWalls(floor)
	}
	g.renderer.UploadBox()

	g.session, err = input.NewCaptureSession(g.window)
	if err != nil {
		g.Close()
		return nil, err
	}
	g.session.ShowHint = func(visible bool) {
		if visible {
			g.window.SetTitle(title + " - click to play")
		} else {
			g.window.SetTitle(title)
		}
	}

	g.ctrl, err = player.New(g.cam, cfg.Player, player.Options{
		Terrain: g.grid,
		Bounds:  g.bounds,
		World:   g.world,
		Session: g.session,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create player controller: %w", err)
	}

	g.window.SetTitle(title + " - click to play")
	slog.Info("initialized")
	return g, nil
}

// addWalls places a few box obstacles near the spawn so physics mode
// has something to collide with.
func (g *Game) addWalls(floor float32) {
	boxes := []wall{
		{Center: mgl32.Vec3{6, floor + 1, 0}, Size: mgl32.Vec3{1, 2, 6}},
		{Center: mgl32.Vec3{-5, floor + 0.5, -7}, Size: mgl32.Vec3{4, 1, 1}},
		{Center: mgl32.Vec3{0, floor + 0.4, 9}, Size: mgl32.Vec3{3, 0.8, 3}},
	}
	for _, b := range boxes {
		half := b.Size.Mul(0.5)
		g.world.AddStaticBox(b.Center.Sub(half), b.Center.Add(half))
	}
	g.walls = boxes
}

// Run starts the main loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	statTimer := time.Now()

	slog.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.pump.Update() {
			g.running = false
			break
		}
		for _, ev := range g.pump.Events() {
			g.handleEvent(ev)
		}

		// Controller writes velocities, then the world integrates.
		g.ctrl.Update(dt)
		if g.world != nil {
			g.world.Step(dt)
		}

		g.render()
		g.window.SwapBuffers()

		// 1 Hz debug readout in the title while captured.
		if g.session.Captured() && time.Since(statTimer) >= time.Second {
			statTimer = time.Now()
			v := g.ctrl.Velocity()
			mode := "kinematic"
			if g.ctrl.PhysicsDriven() {
				mode = "physics"
			}
			g.window.SetTitle(fmt.Sprintf("%s - %s v=(%.1f %.1f %.1f) grounded=%v",
				title, mode, v.X(), v.Y(), v.Z(), g.ctrl.Grounded()))
		}
	}

	return nil
}

// handleEvent routes one input event.
func (g *Game) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		g.running = false

	case input.EventWindowResize:
		g.renderer.Resize(ev.Width, ev.Height)

	case input.EventFocusLost:
		// Losing focus always drops capture.
		g.session.Release()

	case input.EventMouseDown:
		if ev.Button == sdl.BUTTON_LEFT {
			g.session.HandleClick()
		}

	case input.EventMouseMotion:
		if g.session.Captured() {
			g.ctrl.HandleMouseMotion(float32(ev.XRel), float32(ev.YRel))
		}

	case input.EventKeyDown:
		if ev.Key == sdl.SCANCODE_ESCAPE {
			g.session.Release()
			return
		}
		if a, ok := input.Lookup(ev.Key); ok && g.session.Captured() {
			g.ctrl.HandleKey(a, true)
		}

	case input.EventKeyUp:
		if a, ok := input.Lookup(ev.Key); ok {
			g.ctrl.HandleKey(a, false)
		}
	}
}

// render draws the current frame.
func (g *Game) render() {
	g.renderer.Begin()

	view := g.cam.ViewMatrix()
	proj := g.cam.ProjectionMatrix(g.renderer.Aspect())

	g.renderer.DrawTerrain(view, proj)
	for _, w := range g.walls {
		g.renderer.DrawBox(w.Center, w.Size, view, proj)
	}

	g.renderer.End()
}

// Close cleans up resources.
func (g *Game) Close() {
	slog.Info("closing")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
