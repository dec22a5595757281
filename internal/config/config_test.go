package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfigYAML = `display:
  screen_width: 640
  screen_height: 480
  window_title: "test"
world:
  pixel_width: 1024
  pixel_height: 512
  tile_size: 32
  map_file: "assets/map.csv"
observer:
  start_x: 496.0
  start_y: 240.0
  dir_x: -16.0
  dir_y: 0.0
  plane_x: 0.0
  plane_y: 16.0
  radius: 16.0
movement:
  move_speed: 2.0
  rotation_step: 0.01
raycast:
  max_steps: 4096
graphics:
  wall_colors:
    1: [175, 0, 0]
    2: [0, 175, 0]
    3: [0, 0, 175]
  shade_offset: -25
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.GetScreenWidth() != 640 || cfg.GetScreenHeight() != 480 {
		t.Errorf("unexpected screen size %dx%d", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if cfg.GetTileSize() != 32.0 {
		t.Errorf("unexpected tile size %v", cfg.GetTileSize())
	}
	if cfg.GridWidth() != 32 || cfg.GridHeight() != 16 {
		t.Errorf("unexpected grid dimensions %dx%d", cfg.GridWidth(), cfg.GridHeight())
	}
	if cfg.GetMoveSpeed() != 2.0 {
		t.Errorf("unexpected move speed %v", cfg.GetMoveSpeed())
	}
	if cfg.GetRotationStep() != 0.01 {
		t.Errorf("unexpected rotation step %v", cfg.GetRotationStep())
	}
	if got := cfg.Graphics.WallColors[2]; got != [3]int{0, 175, 0} {
		t.Errorf("unexpected wall color for code 2: %v", got)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_TileSizeMustDivideWorld(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	cfg.World.TileSize = 30
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when world size is not a multiple of tile size")
	}
}

func TestValidate_RejectsZeroValues(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	mutations := []func(*Config){
		func(c *Config) { c.Display.ScreenWidth = 0 },
		func(c *Config) { c.World.TileSize = 0 },
		func(c *Config) { c.Raycast.MaxSteps = 0 },
		func(c *Config) { c.Graphics.WallColors = nil },
	}
	for i, mutate := range mutations {
		broken := *cfg
		mutate(&broken)
		if err := broken.Validate(); err == nil {
			t.Errorf("mutation %d: expected validation error", i)
		}
	}
}
