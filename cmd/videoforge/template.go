package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ivlev/videoforge/internal/config"
	"github.com/ivlev/videoforge/internal/director"
	"github.com/ivlev/videoforge/internal/log"
)

func runTemplate(_ context.Context, cfg *config.Config, logger zerolog.Logger) error {
	props := director.DefaultProps()
	if cfg.PropsPath != "" {
		p, err := director.LoadProps(cfg.PropsPath)
		if err != nil {
			return err
		}
		props = *p
	}
	if cfg.Template != "" {
		props.Template = cfg.Template
	}

	t, err := director.Build(&props)
	if err != nil {
		return err
	}
	logger = logger.With().Str(log.FieldTemplate, t.Name).Logger()
	logger.Info().
		Int(log.FieldTotalFrames, t.TotalFrames()).
		Int(log.FieldFPS, t.FPS).
		Int("segments", len(t.Segments)).
		Msg("Template built")

	if cfg.ValidateOnly {
		return nil
	}

	if cfg.Frame >= 0 {
		s, err := t.Sample(cfg.Frame)
		if err != nil {
			return err
		}
		return director.WriteYAML(os.Stdout, s)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}
	path := director.GeneratePlanPath(cfg.OutputDir, t.Name, time.Now())
	if err := director.WritePlan(t, path); err != nil {
		return err
	}
	fmt.Printf("[+] Plan: %s\n", path)
	return nil
}
