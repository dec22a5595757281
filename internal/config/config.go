package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all renderer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Observer ObserverConfig `yaml:"observer"`
	Movement MovementConfig `yaml:"movement"`
	Raycast  RaycastConfig  `yaml:"raycast"`
	Graphics GraphicsConfig `yaml:"graphics"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	PixelWidth  int    `yaml:"pixel_width"`
	PixelHeight int    `yaml:"pixel_height"`
	TileSize    int    `yaml:"tile_size"`
	MapFile     string `yaml:"map_file"`
}

type ObserverConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	DirX   float64 `yaml:"dir_x"`
	DirY   float64 `yaml:"dir_y"`
	PlaneX float64 `yaml:"plane_x"`
	PlaneY float64 `yaml:"plane_y"`
	Radius float64 `yaml:"radius"`
}

type MovementConfig struct {
	MoveSpeed    float64 `yaml:"move_speed"`
	RotationStep float64 `yaml:"rotation_step"`
}

type RaycastConfig struct {
	MaxSteps int `yaml:"max_steps"`
}

type GraphicsConfig struct {
	WallColors    map[int][3]int `yaml:"wall_colors"`
	ShadeOffset   int            `yaml:"shade_offset"`
	ObserverColor [3]int         `yaml:"observer_color"`
	RayColor      [3]int         `yaml:"ray_color"`
	GridlineColor [3]int         `yaml:"gridline_color"`
}

// LoadConfig loads the configuration from a yaml file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate checks that the configuration describes a usable world.
// The grid dimensions are derived from the world pixel size, so the
// pixel size must divide evenly by the tile size.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.World.TileSize <= 0 {
		return fmt.Errorf("invalid tile size %d", c.World.TileSize)
	}
	if c.World.PixelWidth <= 0 || c.World.PixelHeight <= 0 {
		return fmt.Errorf("invalid world size %dx%d", c.World.PixelWidth, c.World.PixelHeight)
	}
	if c.World.PixelWidth%c.World.TileSize != 0 || c.World.PixelHeight%c.World.TileSize != 0 {
		return fmt.Errorf("world size %dx%d is not a multiple of tile size %d",
			c.World.PixelWidth, c.World.PixelHeight, c.World.TileSize)
	}
	if c.Raycast.MaxSteps <= 0 {
		return fmt.Errorf("invalid raycast max_steps %d", c.Raycast.MaxSteps)
	}
	if len(c.Graphics.WallColors) == 0 {
		return fmt.Errorf("no wall colors configured")
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() float64 {
	return float64(c.World.TileSize)
}

// GridWidth returns the number of tile columns implied by the world size.
func (c *Config) GridWidth() int {
	return c.World.PixelWidth / c.World.TileSize
}

// GridHeight returns the number of tile rows implied by the world size.
func (c *Config) GridHeight() int {
	return c.World.PixelHeight / c.World.TileSize
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotationStep() float64 {
	return c.Movement.RotationStep
}
