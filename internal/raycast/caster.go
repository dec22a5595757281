package raycast

import (
	"errors"
	"fmt"
	"log"
	"math"

	"vectormap/internal/world"
)

var (
	// ErrRayOutOfBounds reports a traversal that stepped outside the grid
	// without a border wall stopping it.
	ErrRayOutOfBounds = errors.New("ray left the grid without hitting a wall")
	// ErrRayNonTerminating reports a traversal that exceeded the configured
	// step limit.
	ErrRayNonTerminating = errors.New("ray exceeded the traversal step limit")
)

// Alignment describes the orientation of an intersected wall face.
type Alignment int

const (
	AlignUnknown Alignment = iota
	AlignHorizontal
	AlignVertical
)

func (a Alignment) String() string {
	switch a {
	case AlignHorizontal:
		return "horizontal"
	case AlignVertical:
		return "vertical"
	}
	return "unknown"
}

// Hit is the result of casting one ray: how far it travelled, the color
// code of the wall it stopped at, and the orientation of the wall face.
// A zero Hit (Distance 0) marks a column whose ray failed and was skipped.
type Hit struct {
	Distance  float64
	Color     int
	Alignment Alignment
}

// infiniteDelta suppresses an axis whose ray-direction component is zero
// from ever being the nearer side in the traversal.
const infiniteDelta = 1e30

// Caster walks rays from an observer through the tile grid one gridline
// crossing at a time and resolves the first wall each ray intersects.
type Caster struct {
	grid     *world.Grid
	tileSize float64
	maxSteps int
}

// NewCaster creates a caster over the given grid. maxSteps bounds the
// traversal loop so a map without a closed border cannot hang the frame.
func NewCaster(grid *world.Grid, tileSize float64, maxSteps int) *Caster {
	return &Caster{
		grid:     grid,
		tileSize: tileSize,
		maxSteps: maxSteps,
	}
}

// CastAll casts screenWidth+1 rays, one per screen column plus the far
// edge, and returns the hit records in column order together with each
// ray's grid-aligned endpoint for the top-down view. A column whose ray
// fails is logged and left as a zero Hit so one bad ray never takes down
// the frame. When a corner intersection leaves a column's alignment
// unknown, the previous column's alignment is carried over as a smoothing
// fallback.
func (c *Caster) CastAll(obs Observer, screenWidth int) ([]Hit, []Vec2) {
	if screenWidth <= 0 {
		screenWidth = 1
	}

	hits := make([]Hit, 0, screenWidth+1)
	ends := make([]Vec2, 0, screenWidth+1)

	for i := 0; i <= screenWidth; i++ {
		hit, end, err := c.CastColumn(obs, i, screenWidth)
		if err != nil {
			log.Printf("raycast: %v", err)
			hits = append(hits, Hit{})
			ends = append(ends, obs.Center)
			continue
		}
		if hit.Alignment == AlignUnknown && i > 0 {
			hit.Alignment = hits[i-1].Alignment
		}
		hits = append(hits, hit)
		ends = append(ends, end)
	}

	return hits, ends
}

// CastColumn casts the ray for a single screen column and returns the hit
// record plus the grid-aligned endpoint the ray stopped at.
func (c *Caster) CastColumn(obs Observer, column, screenWidth int) (Hit, Vec2, error) {
	// The traversal works on integer pixel coordinates that land exactly
	// on gridlines after each step.
	mapX := int(obs.Center.X)
	mapY := int(obs.Center.Y)

	// Where on the camera plane this column's ray passes through, in [-1, 1].
	cameraX := 2*float64(column)/float64(screenWidth) - 1
	rayDirX := obs.Dir.X + obs.Plane.X*cameraX
	rayDirY := obs.Dir.Y + obs.Plane.Y*cameraX

	rayLength := math.Hypot(rayDirX, rayDirY)

	// Distance travelled along the ray to cross one tile width on each
	// axis, signed to match the ray direction.
	deltaDistX := infiniteDelta
	if rayDirX != 0 {
		deltaDistX = c.tileSize / math.Abs(rayDirX) * rayLength
	}
	deltaDistY := infiniteDelta
	if rayDirY != 0 {
		deltaDistY = c.tileSize / math.Abs(rayDirY) * rayLength
	}
	if rayDirX < 0 {
		deltaDistX = -deltaDistX
	}
	if rayDirY < 0 {
		deltaDistY = -deltaDistY
	}

	// Initial distances from the observer's tile-relative position to the
	// first gridline on each axis.
	tile := int(c.tileSize)
	var sideDistX, sideDistY float64
	if rayDirX < 0 {
		sideDistX = float64(mapX%tile) / c.tileSize * deltaDistX
	} else {
		sideDistX = (c.tileSize - float64(mapX%tile)) / c.tileSize * deltaDistX
	}
	if rayDirY < 0 {
		sideDistY = float64(mapY%tile) / c.tileSize * deltaDistY
	} else {
		sideDistY = (c.tileSize - float64(mapY%tile)) / c.tileSize * deltaDistY
	}

	var hit Hit
	for steps := 0; ; steps++ {
		if steps >= c.maxSteps {
			return Hit{}, Vec2{}, fmt.Errorf("column %d gave up after %d steps: %w", column, c.maxSteps, ErrRayNonTerminating)
		}

		// Advance to whichever gridline crossing is nearer along the ray,
		// moving both map coordinates by their rounded share of the step.
		nearer := sideDistY
		if math.Abs(sideDistX) <= math.Abs(sideDistY) {
			nearer = sideDistX
		}

		stepX := math.Abs(nearer/deltaDistX) * c.tileSize
		if deltaDistX < 0 {
			stepX = -stepX
		}
		mapX += int(math.Round(stepX))

		stepY := math.Abs(nearer/deltaDistY) * c.tileSize
		if deltaDistY < 0 {
			stepY = -stepY
		}
		mapY += int(math.Round(stepY))

		sideDistX = c.distanceToGridline(mapX, rayDirX, deltaDistX)
		sideDistY = c.distanceToGridline(mapY, rayDirY, deltaDistY)

		found, color, alignment, err := c.classify(float64(mapX)/c.tileSize, float64(mapY)/c.tileSize)
		if err != nil {
			return Hit{}, Vec2{}, fmt.Errorf("column %d: %w", column, err)
		}
		if found {
			hit.Color = color
			hit.Alignment = alignment
			break
		}
	}

	dx := obs.Center.X - float64(mapX)
	dy := obs.Center.Y - float64(mapY)
	hit.Distance = math.Sqrt(dx*dx + dy*dy)

	return hit, Vec2{X: float64(mapX), Y: float64(mapY)}, nil
}

// distanceToGridline returns the signed distance along the ray from a
// grid-aligned pixel coordinate to the next gridline on one axis, scaled by
// that axis's delta. A coordinate already on a gridline is a full tile away
// from the next one. The function is deterministic per (vertex, direction,
// delta) triple and is applied independently per axis.
func (c *Caster) distanceToGridline(vertex int, rayDir, deltaDist float64) float64 {
	remainder := float64(vertex % int(c.tileSize))
	if rayDir < 0 {
		if remainder == 0 {
			remainder = c.tileSize
		}
		return remainder / c.tileSize * deltaDist
	}
	return (c.tileSize - remainder) / c.tileSize * deltaDist
}

// classify tests a grid-aligned candidate point, expressed in tile indices,
// for a wall hit. A point integral on exactly one axis crossed a single
// gridline and the face orientation is known; a point integral on both axes
// landed on a corner, where the four surrounding tiles are probed in
// priority order and the orientation is left unknown.
func (c *Caster) classify(xIndex, yIndex float64) (bool, int, Alignment, error) {
	xIntegral := math.Floor(xIndex) == xIndex
	yIntegral := math.Floor(yIndex) == yIndex

	switch {
	case xIntegral && yIntegral:
		x := int(xIndex)
		y := int(yIndex)
		probes := [4][2]int{
			{x, y},         // same-quadrant tile
			{x - 1, y - 1}, // diagonal tile
			{x - 1, y},     // horizontal neighbor
			{x, y - 1},     // vertical neighbor
		}
		for _, p := range probes {
			code, ok := c.grid.At(p[0], p[1])
			if !ok {
				return false, 0, AlignUnknown, fmt.Errorf("corner tile (%d,%d) outside %dx%d grid: %w",
					p[0], p[1], c.grid.Width, c.grid.Height, ErrRayOutOfBounds)
			}
			if code != 0 {
				return true, code, AlignUnknown, nil
			}
		}

	case xIntegral:
		x := int(xIndex)
		y := int(math.Floor(yIndex))
		for _, px := range [2]int{x, x - 1} {
			code, ok := c.grid.At(px, y)
			if !ok {
				return false, 0, AlignUnknown, fmt.Errorf("tile (%d,%d) outside %dx%d grid: %w",
					px, y, c.grid.Width, c.grid.Height, ErrRayOutOfBounds)
			}
			if code != 0 {
				return true, code, AlignVertical, nil
			}
		}

	case yIntegral:
		x := int(math.Floor(xIndex))
		y := int(yIndex)
		for _, py := range [2]int{y, y - 1} {
			code, ok := c.grid.At(x, py)
			if !ok {
				return false, 0, AlignUnknown, fmt.Errorf("tile (%d,%d) outside %dx%d grid: %w",
					x, py, c.grid.Width, c.grid.Height, ErrRayOutOfBounds)
			}
			if code != 0 {
				return true, code, AlignHorizontal, nil
			}
		}
	}

	// Neither coordinate integral: each traversal step lands on a gridline,
	// so this point cannot be a wall face.
	return false, 0, AlignUnknown, nil
}
