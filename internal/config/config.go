package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvOutputDir   = "VIDEOFORGE_OUTPUT_DIR"
	EnvDefaultFont = "VIDEOFORGE_DEFAULT_FONT"
	EnvWorkers     = "VIDEOFORGE_WORKERS"
	EnvLogLevel    = "VIDEOFORGE_LOG_LEVEL"
	EnvDPI         = "VIDEOFORGE_DPI"
	EnvSpecDir     = "VIDEOFORGE_SPEC_DIR"
	EnvMetricsFile = "VIDEOFORGE_METRICS_FILE"
)

const (
	DefaultEnvFile   = ".env"
	DefaultOutputDir = "output"
	DefaultSpecDir   = "specs"
	DefaultFont      = "Yu Gothic"
	DefaultDPI       = 150
	DefaultLogLevel  = "info"

	DefaultLegibility = "contrast"
)

type Config struct {
	SpecPath     string
	SpecDir      string
	OutputDir    string
	DefaultFont  string
	Workers      int // 0 = one per physical core
	LogLevel     string
	DPI          int
	Platform     string
	Frame        int    // -1 = no single-frame preview
	Scene        string // makes Frame relative to this scene's start
	FramesDir    string
	Plan         bool
	ValidateOnly bool
	Template     string
	PropsPath    string
	Legibility   string // overlay legibility checker variant
	Watch        bool
	MetricsFile  string // Prometheus textfile written after each run
	BuildVersion string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		SpecDir:     DefaultSpecDir,
		OutputDir:   DefaultOutputDir,
		DefaultFont: DefaultFont,
		LogLevel:    DefaultLogLevel,
		DPI:         DefaultDPI,
		Frame:       -1,
		Legibility:  DefaultLegibility,
	}
}

// FromEnv loads envFile into the process environment, when it exists, and
// overlays VIDEOFORGE_* variables on the defaults. Variables already set in
// the environment take precedence over the file.
func FromEnv(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvSpecDir); v != "" {
		cfg.SpecDir = v
	}
	if v := os.Getenv(EnvDefaultFont); v != "" {
		cfg.DefaultFont = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		cfg.MetricsFile = v
	}

	var err error
	if cfg.Workers, err = intEnv(EnvWorkers, cfg.Workers); err != nil {
		return nil, err
	}
	if cfg.DPI, err = intEnv(EnvDPI, cfg.DPI); err != nil {
		return nil, err
	}
	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, v)
	}
	return n, nil
}
