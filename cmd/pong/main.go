package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/status"
	"github.com/lixenwraith/pong/terminal"
	"github.com/lixenwraith/pong/window"
)

var (
	configFlag   = flag.String("config", config.DefaultPath, "TOML config file, missing default file means built-in defaults")
	frontendFlag = flag.String("frontend", "", "Frontend override: terminal or window")
	seedFlag     = flag.Uint64("seed", 0, "RNG seed override, 0 keeps the configured seed")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/pong.log")
)

// crashFrontend is the frontend running when a panic reaches main, set once the config is known
var crashFrontend string

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			handleCrash(crashFrontend, r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: frontend=%s field=%dx%d font=%s win_score=%d", cfg.Frontend, cfg.Field.Width, cfg.Field.Height, cfg.Font.Path, cfg.Match.WinScore)

	reg := status.NewRegistry()
	g, err := engine.NewGame(engine.GameConfig{
		WinScore:          cfg.Match.WinScore,
		RenormalizeBounce: cfg.Ball.RenormalizeBounce,
		Seed:              cfg.Seed,
		ScreensPath:       cfg.Screens,
	}, reg)
	if err != nil {
		return err
	}
	defer func() { log.Printf("exit: %s", reg.Summary()) }()

	crashFrontend = cfg.Frontend
	switch cfg.Frontend {
	case config.FrontendWindow:
		return runWindow(cfg, g)
	default:
		return runTerminal(cfg, g)
	}
}

// loadConfig applies command-line flags over the file and environment
func loadConfig() (*config.Config, error) {
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := config.Load(config.Source{
		Path:     *configFlag,
		Required: explicit,
		EnvFile:  config.DefaultEnvFile,
	})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if *frontendFlag != "" {
		cfg.Frontend = *frontendFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func runWindow(cfg *config.Config, g *engine.Game) error {
	font, err := window.LoadFont(cfg.Font.Path)
	if err != nil {
		return err
	}
	return window.New(g, font, window.Options{
		Width:    cfg.Field.Width,
		Height:   cfg.Field.Height,
		FontSize: cfg.Font.Size,
	}).Run()
}

func runTerminal(cfg *config.Config, g *engine.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.New(screen, g, engine.NewTimeProvider(), terminal.Options{
		CellWidth:     cfg.Terminal.CellWidth,
		CellHeight:    cfg.Terminal.CellHeight,
		FrameInterval: cfg.Terminal.FrameInterval.Duration,
		HoldDelay:     cfg.Terminal.HoldDelay.Duration,
		HoldWindow:    cfg.Terminal.HoldWindow.Duration,
		Color:         cfg.Terminal.Color,
		FontSize:      cfg.Font.Size,
	}).Run(ctx)
}

// handleCrash restores the tty only when the terminal frontend owns it
// Other frontends never touched the console, reset sequences would clobber it
func handleCrash(frontend string, r any) {
	if needsTerminalReset(frontend) {
		terminal.HandleCrash(r)
		return
	}
	writeCrashReport(os.Stderr, r, debug.Stack())
	os.Exit(1)
}

func needsTerminalReset(frontend string) bool {
	return frontend == config.FrontendTerminal
}

// writeCrashReport prints the panic value and stack as plain text
func writeCrashReport(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "pong crashed: %v\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", stack)
}
