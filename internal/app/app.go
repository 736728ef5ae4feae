package app

import (
	"context"
	"image"
	"time"

	"github.com/clawdbotatg/ogcard/internal/app/screens"
	"github.com/clawdbotatg/ogcard/internal/config"
	"github.com/clawdbotatg/ogcard/internal/export"
	"github.com/clawdbotatg/ogcard/internal/render"
	"github.com/clawdbotatg/ogcard/internal/system"
)

const defaultPreviewHold = 5 * time.Second

// App renders the OG card once per Run.
type App struct {
	Config config.Config
	Logger Logger

	// PreviewHold is how long a framebuffer preview stays on screen.
	PreviewHold time.Duration

	// Swapped out in tests.
	showOnFramebuffer func(path string, img image.Image) error
	term              terminal
}

type terminal interface {
	EnterGraphics() error
	Restore() error
}

func New(cfg config.Config) *App {
	return &App{
		Config:            cfg,
		Logger:            NoopLogger{},
		PreviewHold:       defaultPreviewHold,
		showOnFramebuffer: render.ShowOnFramebuffer,
	}
}

// Run loads fonts, draws the card and writes thumbnail.png and thumbnail.jpg
// into Config.OutDir. It returns the written paths.
func (app *App) Run(ctx context.Context) ([]string, error) {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}

	img, err := app.Render(ctx)
	if err != nil {
		return nil, err
	}

	paths, err := export.Save(app.Config.OutDir, img)
	if err != nil {
		app.Logger.Errorf("export", "%v", err)
		return paths, err
	}
	for _, p := range paths {
		app.Logger.Infof("export", "wrote %s", p)
	}

	// The images are already on disk; a failed preview does not fail the run.
	if app.Config.Framebuffer != "" {
		app.preview(ctx, img)
	}
	return paths, nil
}

// Render draws the card in memory without touching the output directory.
func (app *App) Render(ctx context.Context) (*image.RGBA, error) {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}

	fonts, err := render.LoadFontSet(app.Config.FontPath, render.DefaultFontSizes)
	if err != nil {
		app.Logger.Errorf("fonts", "%v", err)
		return nil, err
	}
	defer fonts.Close()
	if fonts.Fallback {
		app.Logger.Infof("fonts", "%s not found, using built-in bitmap font", app.Config.FontPath)
	} else {
		app.Logger.Infof("fonts", "loaded %s", app.Config.FontPath)
	}

	screen := screens.OGCardScreen{}
	if app.Config.QRCode {
		qr, err := screens.SiteQRCode()
		if err != nil {
			app.Logger.Errorf("qr", "%v", err)
			return nil, err
		}
		screen.QRCode = qr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	canvas := render.NewCanvas(render.CanvasWidth, render.CanvasHeight, fonts)
	screen.Draw(canvas)
	app.Logger.Infof("render", "card drawn, %dx%d", render.CanvasWidth, render.CanvasHeight)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

func (app *App) preview(ctx context.Context, img image.Image) {
	term := app.term
	if term == nil {
		term = system.Console{Logger: app.Logger}
	}
	if err := term.EnterGraphics(); err == nil {
		defer func() { _ = term.Restore() }()
	}

	show := app.showOnFramebuffer
	if show == nil {
		show = render.ShowOnFramebuffer
	}
	if err := show(app.Config.Framebuffer, img); err != nil {
		app.Logger.Errorf("fb", "preview failed: %v", err)
		return
	}
	app.Logger.Infof("fb", "preview shown on %s", app.Config.Framebuffer)

	timer := time.NewTimer(app.PreviewHold)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
