package world

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrMalformedRow reports a map row containing a non-digit character.
	ErrMalformedRow = errors.New("malformed map row")
	// ErrRaggedGrid reports rows of unequal length, or a map with no rows.
	ErrRaggedGrid = errors.New("ragged map grid")
)

// Grid is the 2D array of tile codes describing the world. Code 0 is an
// empty, passable tile; nonzero codes are walls keyed into the color table.
// A Grid is built once at startup and read-only afterwards.
type Grid struct {
	Tiles  [][]int
	Width  int
	Height int
}

// NewGrid wraps a tile array in a Grid after validating its shape.
func NewGrid(tiles [][]int) (*Grid, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("map contains no rows: %w", ErrRaggedGrid)
	}

	width := len(tiles[0])
	for i, row := range tiles {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d columns, expected %d: %w", i+1, len(row), width, ErrRaggedGrid)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("map rows are empty: %w", ErrRaggedGrid)
	}

	return &Grid{
		Tiles:  tiles,
		Width:  width,
		Height: len(tiles),
	}, nil
}

// LoadGrid loads a grid from a text map file. Each line is one row of
// single-digit tile codes; commas between digits are stripped, and blank
// lines and lines starting with # are skipped. The grid must match the
// dimensions implied by the configured world size.
func LoadGrid(mapPath string, wantWidth, wantHeight int) (*Grid, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	var tiles [][]int
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		tiles = append(tiles, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}

	grid, err := NewGrid(tiles)
	if err != nil {
		return nil, err
	}

	if grid.Width != wantWidth || grid.Height != wantHeight {
		return nil, fmt.Errorf("map is %dx%d, world config requires %dx%d: %w",
			grid.Width, grid.Height, wantWidth, wantHeight, ErrRaggedGrid)
	}

	return grid, nil
}

// parseRow converts one comma-optional digit line into tile codes.
func parseRow(line string) ([]int, error) {
	stripped := strings.ReplaceAll(line, ",", "")
	row := make([]int, 0, len(stripped))
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("character %q is not a digit: %w", r, ErrMalformedRow)
		}
		row = append(row, int(r-'0'))
	}
	return row, nil
}

// At returns the tile code at the given column and row, and whether the
// coordinates are inside the grid.
func (g *Grid) At(x, y int) (int, bool) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0, false
	}
	return g.Tiles[y][x], true
}

// Serialize renders the grid back to comma-stripped digit rows, in row
// order. Loading a map and serializing the result reproduces the original
// file's rows.
func (g *Grid) Serialize() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y, row := range g.Tiles {
		b.Reset()
		for _, code := range row {
			b.WriteByte(byte('0' + code))
		}
		rows[y] = b.String()
	}
	return rows
}
