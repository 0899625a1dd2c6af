package marquee

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional window settings for Run.
type RunConfig struct {
	// Title is the window title. Default "marquee".
	Title string
	// Width and Height are the initial window size in logical pixels.
	// Defaults 800×200.
	Width, Height int
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// TPS sets ticks per second. Zero keeps Ebitengine's default of 60.
	TPS int
}

// Run opens a resizable window and runs stage until the window closes or
// stage.Dispose is called.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "marquee"
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 200
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	stage.SetShowFPS(cfg.ShowFPS)

	Logger().Info("run", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	if err := ebiten.RunGame(stage); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run %s: %w", cfg.Title, err)
	}
	return nil
}
