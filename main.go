package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clawdbotatg/ogcard/internal/app"
	"github.com/clawdbotatg/ogcard/internal/config"
)

const (
	envStdioLog  = "OGCARD_STDIO_LOG"
	debugLogPath = "./ogcard-debug.log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	// Flags
	flags := flag.NewFlagSet("ogcard", flag.ContinueOnError)
	flags.SetOutput(stdout)
	configFile := flags.String("config", "", "TOML config file; also configurable via "+config.EnvConfigFile)
	outDir := flags.String("out", "", "output directory for thumbnail.png and thumbnail.jpg (must exist); default "+config.DefaultOutDir)
	fontPath := flags.String("font", "", "font file (.ttf, .otf or .ttc); default "+config.DefaultFontPath)
	qrCode := flags.Bool("qr", false, "draw a QR code for the site under the tile grid")
	framebuffer := flags.String("fb", "", "also show the card on this framebuffer device, e.g. /dev/fb0")
	previewHold := flags.Duration("fb-hold", 5*time.Second, "how long the framebuffer preview stays on screen")
	debug := flags.Bool("debug", false, "enable debug logging to "+debugLogPath)
	stdioLog := flags.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(stdout, "stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		fileLogger, w := app.NewRotatingFileLogger(debugLogPath)
		defer w.Close()
		logger = fileLogger
		logger.Infof("main", "debug logging enabled")
	}

	// Config: defaults < file < env < explicit flags
	cfg := config.Default()
	if *configFile == "" {
		*configFile = os.Getenv(config.EnvConfigFile)
	}
	if *configFile != "" {
		if err := cfg.ApplyFile(*configFile); err != nil {
			fmt.Fprintln(stdout, "config error:", err)
			return 2
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintln(stdout, "config error:", err)
		return 2
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutDir = *outDir
		case "font":
			cfg.FontPath = *fontPath
		case "qr":
			cfg.QRCode = *qrCode
		case "fb":
			cfg.Framebuffer = *framebuffer
		}
	})
	cfg, err := cfg.Resolve()
	if err != nil {
		fmt.Fprintln(stdout, "config error:", err)
		return 2
	}
	logger.Infof("main", "out=%s font=%s qr=%t fb=%q", cfg.OutDir, cfg.FontPath, cfg.QRCode, cfg.Framebuffer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg)
	a.Logger = logger
	a.PreviewHold = *previewHold

	if _, err := a.Run(ctx); err != nil {
		fmt.Fprintln(stdout, "generate error:", err)
		logger.Errorf("main", "generate failed: %v", err)
		return 1
	}

	fmt.Fprintln(stdout, "✅ OG image generated: thumbnail.png + thumbnail.jpg")
	return 0
}
