// Package config loads the game settings from TOML, a .env file and PONG_* environment variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/pong/constant"
)

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"

	ColorAuto      = "auto"
	Color256       = "256"
	ColorTruecolor = "truecolor"

	DefaultPath    = "pong.toml"
	DefaultEnvFile = ".env"
	DefaultFont    = "./font_folder/PressStart2P-Regular.ttf"
)

// Environment overrides, applied after the config file
const (
	EnvFrontend = "PONG_FRONTEND"
	EnvFont     = "PONG_FONT"
	EnvSeed     = "PONG_SEED"
	EnvDebug    = "PONG_DEBUG"
)

// Duration is a time.Duration written as a Go duration string ("16ms")
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type FieldConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type FontConfig struct {
	Path string  `toml:"path"`
	Size float64 `toml:"size"`
}

type MatchConfig struct {
	WinScore int `toml:"win_score"`
}

type BallConfig struct {
	RenormalizeBounce bool `toml:"renormalize_bounce"`
}

// TerminalConfig scales play-field units onto character cells
type TerminalConfig struct {
	CellWidth     float64  `toml:"cell_width"`
	CellHeight    float64  `toml:"cell_height"`
	FrameInterval Duration `toml:"frame_interval"`
	HoldDelay     Duration `toml:"hold_delay"`  // hold after a fresh press, must outlast the OS repeat delay
	HoldWindow    Duration `toml:"hold_window"` // hold after each auto-repeat event
	Color         string   `toml:"color"`
}

// Config is the complete runtime configuration
type Config struct {
	Frontend string `toml:"frontend"`
	Seed     uint64 `toml:"seed"`
	Debug    bool   `toml:"debug"`
	Screens  string `toml:"screens"`

	Field    FieldConfig    `toml:"field"`
	Font     FontConfig     `toml:"font"`
	Match    MatchConfig    `toml:"match"`
	Ball     BallConfig     `toml:"ball"`
	Terminal TerminalConfig `toml:"terminal"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Frontend: FrontendTerminal,
		Field: FieldConfig{
			Width:  constant.WindowWidth,
			Height: constant.WindowHeight,
		},
		Font: FontConfig{
			Path: DefaultFont,
			Size: constant.FontSize,
		},
		Match: MatchConfig{
			WinScore: constant.WinScore,
		},
		Terminal: TerminalConfig{
			CellWidth:     constant.CellWidth,
			CellHeight:    constant.CellHeight,
			FrameInterval: Duration{constant.FrameUpdateInterval},
			HoldDelay:     Duration{constant.KeyHoldDelay},
			HoldWindow:    Duration{constant.KeyHoldWindow},
			Color:         ColorAuto,
		},
	}
}

// Source says where to read configuration from
type Source struct {
	Path     string // TOML file
	Required bool   // Missing Path is an error instead of defaults
	EnvFile  string // Optional dotenv file, empty to skip
}

// Load merges defaults, the TOML file, the env file and the process environment, in rising priority
func Load(src Source) (*Config, error) {
	cfg := Default()

	if src.Path != "" {
		data, err := os.ReadFile(src.Path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", src.Path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !src.Required:
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	fileEnv := map[string]string{}
	if src.EnvFile != "" {
		m, err := godotenv.Read(src.EnvFile)
		switch {
		case err == nil:
			fileEnv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read env file %s: %w", src.EnvFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFrontend); ok {
		c.Frontend = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvFont); ok {
		c.Font.Path = v
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvDebug); ok {
		debug, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = debug
	}
	return nil
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("frontend %q: want %s or %s", c.Frontend, FrontendTerminal, FrontendWindow)
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("field size %dx%d must be positive", c.Field.Width, c.Field.Height)
	}
	// The paddles sit PaddleInset from each edge and must not cross
	if float64(c.Field.Width) <= 2*constant.PaddleInset+constant.PaddleWidth {
		return fmt.Errorf("field width %d too narrow for the paddles", c.Field.Width)
	}
	if float64(c.Field.Height) < constant.PaddleHeight {
		return fmt.Errorf("field height %d shorter than a paddle", c.Field.Height)
	}
	if c.Frontend == FrontendWindow && c.Font.Path == "" {
		return errors.New("font.path is required for the window frontend")
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("font.size %v must be positive", c.Font.Size)
	}
	if c.Match.WinScore <= 0 {
		return fmt.Errorf("match.win_score %d must be positive", c.Match.WinScore)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size %vx%v must be positive", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Terminal.FrameInterval.Duration <= 0 {
		return fmt.Errorf("terminal.frame_interval %v must be positive", c.Terminal.FrameInterval)
	}
	if c.Terminal.HoldWindow.Duration < c.Terminal.FrameInterval.Duration {
		return fmt.Errorf("terminal.hold_window %v shorter than frame_interval %v", c.Terminal.HoldWindow, c.Terminal.FrameInterval)
	}
	if c.Terminal.HoldDelay.Duration < c.Terminal.HoldWindow.Duration {
		return fmt.Errorf("terminal.hold_delay %v shorter than hold_window %v", c.Terminal.HoldDelay, c.Terminal.HoldWindow)
	}
	switch c.Terminal.Color {
	case ColorAuto, Color256, ColorTruecolor:
	default:
		return fmt.Errorf("terminal.color %q: want %s, %s or %s", c.Terminal.Color, ColorAuto, Color256, ColorTruecolor)
	}
	return nil
}
