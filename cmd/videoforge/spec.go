package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/ivlev/videoforge/internal/analyzer"
	"github.com/ivlev/videoforge/internal/config"
	"github.com/ivlev/videoforge/internal/director"
	"github.com/ivlev/videoforge/internal/engine"
	"github.com/ivlev/videoforge/internal/log"
	"github.com/ivlev/videoforge/internal/raster"
	"github.com/ivlev/videoforge/internal/source"
	"github.com/ivlev/videoforge/internal/spec"
	"github.com/ivlev/videoforge/internal/system"
	"github.com/ivlev/videoforge/internal/transition"
)

func runSpec(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	v, err := spec.Load(cfg.SpecPath)
	if err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}
	for _, w := range v.Warnings() {
		logger.Warn().Str(log.FieldPath, cfg.SpecPath).Msg(w)
	}

	if cfg.Platform != "" {
		p, ok := spec.PresetFor(cfg.Platform)
		if !ok {
			return fmt.Errorf("unknown platform %q", cfg.Platform)
		}
		if v.ExceedsPreset(p) {
			logger.Warn().
				Float64("duration", v.TotalDuration()).
				Float64("max_duration", p.MaxDuration).
				Msgf("Video is longer than %s allows", p.Name)
		}
		v = v.ApplyPreset(p)
	} else if v.Export.Platform != "" {
		if p, ok := spec.PresetFor(v.Export.Platform); ok && v.ExceedsPreset(p) {
			logger.Warn().Float64("max_duration", p.MaxDuration).Msgf("Video is longer than %s allows", p.Name)
		}
	}

	e, err := engine.New(v,
		engine.WithLogger(log.WithContext(ctx, "engine")),
		engine.WithDefaultFont(cfg.DefaultFont),
	)
	if err != nil {
		return err
	}
	logger.Info().
		Str("title", v.Video.Title).
		Int(log.FieldTotalFrames, e.TotalFrames()).
		Int(log.FieldFPS, e.FPS()).
		Str(log.FieldResolution, fmt.Sprintf("%dx%d", v.Video.Width(), v.Video.Height())).
		Msg("Spec loaded")

	if cfg.ValidateOnly {
		fmt.Printf("[+] %s: %d scenes, %d frames\n", cfg.SpecPath, len(v.Scenes), e.TotalFrames())
		return nil
	}

	did := false
	if cfg.Plan {
		if err := printPlan(e); err != nil {
			return err
		}
		did = true
	}

	assets := source.NewLoader(filepath.Dir(cfg.SpecPath), cfg.DPI)
	checker, err := analyzer.NewChecker(cfg.Legibility)
	if err != nil {
		return err
	}
	comp := raster.New(assets,
		raster.WithLegibility(checker),
		raster.WithLogger(log.WithContext(ctx, "raster")),
	)

	if cfg.Frame >= 0 || cfg.Scene != "" {
		n, err := previewNumber(v, e, cfg)
		if err != nil {
			return err
		}
		if err := previewFrame(ctx, e, comp, n, cfg); err != nil {
			return err
		}
		did = true
	}

	if cfg.FramesDir != "" {
		frameBytes := uint64(v.Video.Width()) * uint64(v.Video.Height()) * 4
		workers := system.WorkersFor(cfg.Workers, frameBytes)
		logger.Info().Int(log.FieldWorkers, workers).Str(log.FieldPath, cfg.FramesDir).Msg("Rendering frames")

		start := time.Now()
		n, err := comp.Render(ctx, e, cfg.FramesDir, 0, e.TotalFrames(), workers)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		logger.Info().
			Int("frames", n).
			Dur("elapsed", elapsed).
			Float64("render_fps", float64(n)/max(elapsed.Seconds(), 1e-9)).
			Int("sources_cached", assets.Len()).
			Msg("Frames written")
		did = true
	}

	if !did {
		return fmt.Errorf("%w: pass -validate, -plan, -frame, -scene or -frames", errNothingToDo)
	}
	return nil
}

func printPlan(e *engine.Engine) error {
	tl := e.Timeline()
	fmt.Printf("%-4s %-16s %8s %8s %8s\n", "#", "scene", "start", "frames", "end")
	for _, entry := range tl.Entries {
		fmt.Printf("%-4d %-16s %8d %8d %8d\n", entry.Index, entry.ID, entry.StartFrame, entry.DurationInFrames, entry.EndFrame())
	}
	fmt.Printf("total: %d frames @ %d fps\n", tl.TotalFrames(), tl.FPS)

	cuts, err := transition.Cuts(tl)
	if err != nil {
		return err
	}
	for _, c := range cuts {
		fmt.Printf("%s -> %s: %s\n", c.From, c.To, c.Filter(tl.FPS))
	}
	return nil
}

// previewNumber maps -frame, optionally counted from the start of -scene,
// to an absolute frame number.
func previewNumber(v *spec.VideoSpec, e *engine.Engine, cfg *config.Config) (int, error) {
	n := max(cfg.Frame, 0)
	if cfg.Scene == "" {
		return n, nil
	}
	i, ok := v.SceneIndex(cfg.Scene)
	if !ok {
		return 0, fmt.Errorf("unknown scene %q", cfg.Scene)
	}
	entry := e.Timeline().Entries[i]
	if n >= entry.DurationInFrames {
		return 0, fmt.Errorf("frame %d is past the end of scene %q (%d frames)", n, cfg.Scene, entry.DurationInFrames)
	}
	return entry.StartFrame + n, nil
}

func previewFrame(ctx context.Context, e *engine.Engine, comp *raster.Compositor, n int, cfg *config.Config) error {
	f, err := e.Frame(n)
	if err != nil {
		return err
	}
	if err := director.WriteYAML(os.Stdout, f); err != nil {
		return err
	}

	img, err := comp.Compose(ctx, f)
	if err != nil {
		return err
	}
	defer raster.Release(img)

	path := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_frame_%06d.png", outputName(cfg.SpecPath), f.Number))
	if err := raster.WritePNG(path, img); err != nil {
		return err
	}
	fmt.Printf("[+] Preview: %s\n", path)
	return nil
}
