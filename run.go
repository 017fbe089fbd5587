package osier

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kelseyhightower/envconfig"
)

// RunConfig configures the window and game loop created by Run.
// LoadRunConfig fills it from the environment.
type RunConfig struct {
	Title     string `envconfig:"TITLE" default:"osier"`
	Width     int    `envconfig:"WIDTH" default:"800"`
	Height    int    `envconfig:"HEIGHT" default:"600"`
	TPS       int    `envconfig:"TPS" default:"60"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`
	Resizable bool   `envconfig:"RESIZABLE" default:"true"`
}

// LoadRunConfig reads a RunConfig from environment variables named
// PREFIX_TITLE, PREFIX_WIDTH and so on. An empty prefix reads the bare names.
func LoadRunConfig(prefix string) (RunConfig, error) {
	var cfg RunConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("load run config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return RunConfig{}, fmt.Errorf("load run config: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	return cfg, nil
}

// game adapts a Page to ebiten.Game.
type game struct {
	page *Page
}

func (g *game) Update() error {
	g.page.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.page.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.page.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and drives page at cfg.TPS until the window closes.
// Input comes from an EbitenInput unless the page already has a source.
func Run(page *Page, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(page.designW), int(page.designH)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
		page.SetTPS(float64(cfg.TPS))
	}
	if page.input == nil {
		page.SetInputSource(NewEbitenInput())
	}
	page.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&game{page: page})
}
