package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ivlev/videoforge/internal/config"
	"github.com/ivlev/videoforge/internal/log"
	"github.com/ivlev/videoforge/internal/metrics"
	"github.com/ivlev/videoforge/internal/system"
)

var version = "dev"

func main() {
	envPtr := flag.String("env", config.DefaultEnvFile, "Path to a .env file with VIDEOFORGE_* settings")
	specPtr := flag.String("spec", "", "Path to the video spec YAML (default: newest file in the spec dir)")
	platformPtr := flag.String("platform", "", "Apply a platform preset: youtube, youtube_short, tiktok, instagram_reel, instagram_post, twitter")
	framePtr := flag.Int("frame", -1, "Print the directives of one frame and write it as a PNG preview")
	scenePtr := flag.String("scene", "", "Scene id; -frame counts from this scene's first frame")
	framesPtr := flag.String("frames", "", "Render every frame as a PNG into this directory")
	planPtr := flag.Bool("plan", false, "Print the scene timeline and the encoder transition plan")
	validatePtr := flag.Bool("validate", false, "Only validate the spec")
	templatePtr := flag.String("template", "", "Build a motion template instead of a spec: youtube_intro, tiktok_short, text_explainer, presentation")
	propsPtr := flag.String("props", "", "Template props YAML")
	workersPtr := flag.Int("workers", -1, "Render workers (0 = one per physical core)")
	dpiPtr := flag.Int("dpi", -1, "DPI for PDF page sources")
	fontPtr := flag.String("font", "", "Font family for overlays without one")
	legibilityPtr := flag.String("legibility", "contrast", "Overlay legibility check on image scenes: contrast, none")
	watchPtr := flag.Bool("watch", false, "Re-run whenever the spec or props file changes")
	metricsPtr := flag.String("metrics-file", "", "Write Prometheus metrics to this textfile after each run")
	levelPtr := flag.String("log-level", "", "Log level: debug, info, warn, error")
	versionPtr := flag.Bool("version", false, "Print the version and exit")

	flag.Parse()

	if *versionPtr {
		fmt.Println(version)
		return
	}

	cfg, err := config.FromEnv(*envPtr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[-] %v\n", err)
		os.Exit(2)
	}
	cfg.BuildVersion = version
	cfg.SpecPath = *specPtr
	cfg.Platform = *platformPtr
	cfg.Frame = *framePtr
	cfg.Scene = *scenePtr
	cfg.FramesDir = *framesPtr
	cfg.Plan = *planPtr
	cfg.ValidateOnly = *validatePtr
	cfg.Template = *templatePtr
	cfg.PropsPath = *propsPtr
	cfg.Legibility = *legibilityPtr
	cfg.Watch = *watchPtr
	if *metricsPtr != "" {
		cfg.MetricsFile = *metricsPtr
	}
	if *workersPtr >= 0 {
		cfg.Workers = *workersPtr
	}
	if *dpiPtr > 0 {
		cfg.DPI = *dpiPtr
	}
	if *fontPtr != "" {
		cfg.DefaultFont = *fontPtr
	}
	if *levelPtr != "" {
		cfg.LogLevel = *levelPtr
	}

	log.Configure(log.Config{Level: cfg.LogLevel, Console: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.ContextWithRunID(ctx, log.NewRunID())
	logger := log.WithContext(ctx, "cli")

	system.InitResourceLimits(logger)

	err = run(ctx, cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Run failed")
	}
	if !cfg.Watch {
		if err != nil {
			os.Exit(1)
		}
		return
	}

	if err := watch(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("Watch failed")
		os.Exit(1)
	}
}

// watch re-runs on every change of the spec or props file until interrupted.
func watch(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	path := cfg.SpecPath
	if cfg.Template != "" || cfg.PropsPath != "" {
		path = cfg.PropsPath
	}
	if path == "" {
		return errors.New("-watch needs a spec or -props file")
	}
	return config.Watch(ctx, path, config.DefaultDebounce, logger, func(ctx context.Context) {
		if err := run(ctx, cfg, logger); err != nil {
			logger.Error().Err(err).Msg("Run failed")
		}
	})
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	start := time.Now()
	defer func() {
		logger.Debug().Dur("elapsed", time.Since(start)).Msg("Done")
		if cfg.MetricsFile == "" {
			return
		}
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn().Err(err).Str(log.FieldPath, cfg.MetricsFile).Msg("Metrics not written")
		}
	}()

	if cfg.Template != "" || cfg.PropsPath != "" {
		return runTemplate(ctx, cfg, logger)
	}

	if cfg.SpecPath == "" {
		latest, err := system.FindLatestSpec(cfg.SpecDir)
		if err != nil {
			return fmt.Errorf("%w; pass -spec or put a YAML spec into %s/", err, cfg.SpecDir)
		}
		cfg.SpecPath = latest
		logger.Info().Str(log.FieldPath, latest).Msg("Using newest spec")
	}
	return runSpec(ctx, cfg, logger)
}

// outputName derives an output file stem from an input path.
func outputName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(name, " ", "_")
}

var errNothingToDo = errors.New("nothing to render")
