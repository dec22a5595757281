package main

import (
	"log"

	"vectormap/internal/config"
	"vectormap/internal/game"
	"vectormap/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// Load the world grid; a bad map is fatal before the window opens
	grid, err := world.LoadGrid(cfg.World.MapFile, cfg.GridWidth(), cfg.GridHeight())
	if err != nil {
		log.Fatalf("Failed to load world map: %v", err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.World.PixelWidth, cfg.World.PixelHeight+cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.New(cfg, grid)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
