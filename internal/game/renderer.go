package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"vectormap/internal/raycast"
)

var (
	worldBackground      = color.RGBA{12, 12, 16, 255}
	projectionBackground = color.RGBA{24, 24, 28, 255}
	labelColor           = color.RGBA{220, 220, 220, 255}
	unknownWallColor     = color.RGBA{120, 120, 120, 255}
)

// Renderer draws the two views every frame: the top-down world view with
// gridlines, walls, observer marker and ray fan, and the first-person
// projection built from the per-column hit records.
type Renderer struct {
	game *Game

	// Wall colors per tile code, precomputed from config. Shaded variants
	// contrast horizontal faces against vertical ones.
	wallColors   map[int]color.RGBA
	shadedColors map[int]color.RGBA
}

func NewRenderer(g *Game) *Renderer {
	r := &Renderer{
		game:         g,
		wallColors:   make(map[int]color.RGBA),
		shadedColors: make(map[int]color.RGBA),
	}
	offset := g.config.Graphics.ShadeOffset
	for code, rgb := range g.config.Graphics.WallColors {
		r.wallColors[code] = rgbaFromConfig(rgb, 0)
		r.shadedColors[code] = rgbaFromConfig(rgb, offset)
	}
	return r
}

// rgbaFromConfig converts a config RGB triple, applying a clamped
// per-channel offset to nonzero channels.
func rgbaFromConfig(rgb [3]int, offset int) color.RGBA {
	var out [3]uint8
	for i, ch := range rgb {
		if ch > 0 {
			ch += offset
		}
		if ch < 0 {
			ch = 0
		}
		if ch > 255 {
			ch = 255
		}
		out[i] = uint8(ch)
	}
	return color.RGBA{out[0], out[1], out[2], 255}
}

func (r *Renderer) wallColor(code int, alignment raycast.Alignment) color.RGBA {
	table := r.shadedColors
	if alignment == raycast.AlignVertical {
		table = r.wallColors
	}
	if c, ok := table[code]; ok {
		return c
	}
	return unknownWallColor
}

// DrawWorldView renders the top-down map in the upper part of the screen.
func (r *Renderer) DrawWorldView(screen *ebiten.Image) {
	cfg := r.game.config
	pw := cfg.World.PixelWidth
	ph := cfg.World.PixelHeight
	tile := float32(cfg.GetTileSize())

	view := screen.SubImage(image.Rect(0, 0, pw, ph)).(*ebiten.Image)
	view.Fill(worldBackground)

	// Gridlines
	gridColor := rgbaFromConfig(cfg.Graphics.GridlineColor, 0)
	for x := float32(0); x < float32(pw); x += tile {
		vector.StrokeLine(view, x, 0, x, float32(ph), 1, gridColor, false)
	}
	for y := float32(0); y < float32(ph); y += tile {
		vector.StrokeLine(view, 0, y, float32(pw), y, 1, gridColor, false)
	}

	// Wall tiles
	for y, row := range r.game.grid.Tiles {
		for x, code := range row {
			if code == 0 {
				continue
			}
			col, ok := r.wallColors[code]
			if !ok {
				col = unknownWallColor
			}
			vector.DrawFilledRect(view, float32(x)*tile, float32(y)*tile, tile, tile, col, false)
		}
	}

	// Ray fan from the observer center to each grid-aligned endpoint.
	// Columns whose ray failed carry a zero hit and are not drawn.
	center := r.game.observer.Center
	rayColor := rgbaFromConfig(cfg.Graphics.RayColor, 0)
	for i, end := range r.game.rayEnds {
		if r.game.hits[i].Distance <= 0 {
			continue
		}
		vector.StrokeLine(view,
			float32(center.X), float32(center.Y),
			float32(end.X), float32(end.Y),
			1, rayColor, false)
	}

	// Observer marker
	obsColor := rgbaFromConfig(cfg.Graphics.ObserverColor, 0)
	vector.DrawFilledCircle(view,
		float32(center.X), float32(center.Y),
		float32(r.game.observer.Radius), obsColor, false)

	ebitext.Draw(screen, "world", basicfont.Face7x13, 6, 14, labelColor)
}

// DrawProjectionView renders the first-person view below the world view.
// Each hit record becomes a one-pixel-wide vertical strip whose height is
// inversely proportional to the ray's travel distance.
func (r *Renderer) DrawProjectionView(screen *ebiten.Image) {
	cfg := r.game.config
	sw := cfg.GetScreenWidth()
	sh := cfg.GetScreenHeight()
	ox := (cfg.World.PixelWidth - sw) / 2
	oy := cfg.World.PixelHeight

	view := screen.SubImage(image.Rect(ox, oy, ox+sw, oy+sh)).(*ebiten.Image)
	view.Fill(projectionBackground)

	for i, hit := range r.game.hits {
		if hit.Distance <= 0 {
			continue
		}
		lineHeight := 1 / hit.Distance * float64(sh) * cfg.GetTileSize()
		col := r.wallColor(hit.Color, hit.Alignment)
		x := float32(ox + i)
		y := float32(oy) + float32(sh)/2 - float32(lineHeight)/2
		vector.DrawFilledRect(view, x, y, 1, float32(lineHeight), col, false)
	}

	ebitext.Draw(screen, "projection", basicfont.Face7x13, ox+6, oy+14, labelColor)
}

// DrawOverlays draws the optional help and FPS text on top of both views.
func (r *Renderer) DrawOverlays(screen *ebiten.Image) {
	if r.game.showHelp {
		ebitenutil.DebugPrintAt(screen, "arrows/WASD move, Q/E rotate, H help, F fps", 6, 20)
	}
	if r.game.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), 6, 36)
	}
}
