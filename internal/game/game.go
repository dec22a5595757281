package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"vectormap/internal/config"
	"vectormap/internal/raycast"
	"vectormap/internal/world"
)

// Game drives the per-frame cycle: poll input, apply at most one observer
// command, recast all rays, then draw the top-down and projection views.
type Game struct {
	config   *config.Config
	grid     *world.Grid
	observer raycast.Observer
	caster   *raycast.Caster

	input    *InputHandler
	renderer *Renderer

	// Per-frame raycast output, consumed by the renderer.
	hits    []raycast.Hit
	rayEnds []raycast.Vec2

	showHelp bool
	showFPS  bool
}

// New creates the game with the observer placed at its configured start.
func New(cfg *config.Config, grid *world.Grid) *Game {
	observer := raycast.Observer{
		Center: raycast.Vec2{X: cfg.Observer.StartX, Y: cfg.Observer.StartY},
		Dir:    raycast.Vec2{X: cfg.Observer.DirX, Y: cfg.Observer.DirY},
		Plane:  raycast.Vec2{X: cfg.Observer.PlaneX, Y: cfg.Observer.PlaneY},
		Radius: cfg.Observer.Radius,
	}

	g := &Game{
		config:   cfg,
		grid:     grid,
		observer: observer,
		caster:   raycast.NewCaster(grid, cfg.GetTileSize(), cfg.Raycast.MaxSteps),
		input:    NewInputHandler(),
		showHelp: true,
	}
	g.renderer = NewRenderer(g)
	return g
}

// Update applies at most one observer command, then recasts every column
// from the updated state.
func (g *Game) Update() error {
	switch g.input.PollCommand() {
	case CommandMoveUp:
		g.observer = g.observer.Move(raycast.MoveUp, g.config.GetMoveSpeed())
	case CommandMoveDown:
		g.observer = g.observer.Move(raycast.MoveDown, g.config.GetMoveSpeed())
	case CommandMoveLeft:
		g.observer = g.observer.Move(raycast.MoveLeft, g.config.GetMoveSpeed())
	case CommandMoveRight:
		g.observer = g.observer.Move(raycast.MoveRight, g.config.GetMoveSpeed())
	case CommandRotateLeft:
		g.observer = g.observer.Rotate(raycast.RotateLeft, g.config.GetRotationStep())
	case CommandRotateRight:
		g.observer = g.observer.Rotate(raycast.RotateRight, g.config.GetRotationStep())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showFPS = !g.showFPS
	}

	g.hits, g.rayEnds = g.caster.CastAll(g.observer, g.config.GetScreenWidth())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawWorldView(screen)
	g.renderer.DrawProjectionView(screen)
	g.renderer.DrawOverlays(screen)
}

// Layout stacks the top-down world view above the projection view.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.World.PixelWidth, g.config.World.PixelHeight + g.config.GetScreenHeight()
}
