package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/videoforge/internal/config"
)

const tinySpec = `
video:
  title: tiny
  resolution: [32, 18]
  fps: 10
scenes:
  - id: a
    duration: 0.3
    color: "#112233"
    text_overlays:
      - content: hi
        animation: fade_in
  - id: b
    duration: 0.2
    transition_in: fade
`

func writeSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiny spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinySpec), 0644))
	return path
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.Workers = 2
	return cfg
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "my_talk", outputName("/x/my talk.yaml"))
	assert.Equal(t, "deck", outputName("deck"))
}

func TestRunValidateOnly(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpecPath = writeSpec(t)
	cfg.ValidateOnly = true
	require.NoError(t, run(context.Background(), cfg, zerolog.Nop()))
}

func TestRunNothingToDo(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpecPath = writeSpec(t)
	require.ErrorIs(t, run(context.Background(), cfg, zerolog.Nop()), errNothingToDo)
}

func TestRunFrames(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpecPath = writeSpec(t)
	cfg.FramesDir = filepath.Join(t.TempDir(), "frames")

	require.NoError(t, run(context.Background(), cfg, zerolog.Nop()))

	files, err := filepath.Glob(filepath.Join(cfg.FramesDir, "*.png"))
	require.NoError(t, err)
	assert.Len(t, files, 5)
}

func TestRunScenePreview(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpecPath = writeSpec(t)
	cfg.Scene = "b"
	cfg.Frame = 1

	require.NoError(t, run(context.Background(), cfg, zerolog.Nop()))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "tiny_spec_frame_000004.png"))
}

func TestRunScenePreviewErrors(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpecPath = writeSpec(t)
	cfg.Scene = "missing"
	assert.ErrorContains(t, run(context.Background(), cfg, zerolog.Nop()), `unknown scene "missing"`)

	cfg.Scene, cfg.Frame = "b", 2
	assert.ErrorContains(t, run(context.Background(), cfg, zerolog.Nop()), "past the end")
}

func TestRunUnknownPlatform(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpecPath = writeSpec(t)
	cfg.Platform = "myspace"
	cfg.ValidateOnly = true
	require.Error(t, run(context.Background(), cfg, zerolog.Nop()))
}

func TestRunTemplatePlan(t *testing.T) {
	cfg := testConfig(t)
	cfg.Template = "youtube_intro"

	require.NoError(t, run(context.Background(), cfg, zerolog.Nop()))

	files, err := filepath.Glob(filepath.Join(cfg.OutputDir, "youtube_intro_*.yaml"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestRunMissingSpecDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpecDir = filepath.Join(t.TempDir(), "none")
	require.Error(t, run(context.Background(), cfg, zerolog.Nop()))
}

func TestRunWritesMetrics(t *testing.T) {
	cfg := testConfig(t)
	cfg.SpecPath = writeSpec(t)
	cfg.FramesDir = filepath.Join(t.TempDir(), "frames")
	cfg.MetricsFile = filepath.Join(t.TempDir(), "videoforge.prom")

	require.NoError(t, run(context.Background(), cfg, zerolog.Nop()))

	data, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "videoforge_frames_rendered_total")
	assert.Contains(t, string(data), "videoforge_frame_compose_seconds_bucket")
}

func TestWatchNeedsPath(t *testing.T) {
	cfg := testConfig(t)
	require.Error(t, watch(context.Background(), cfg, zerolog.Nop()))
}
