package raster

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"

	"github.com/ivlev/videoforge/internal/engine"
	"github.com/ivlev/videoforge/internal/metrics"
)

// FramePath is the file name of frame n inside dir.
func FramePath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%06d.png", n))
}

// WritePNG encodes img to path, creating parent directories. The file is
// replaced atomically, so readers never see a partial frame.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending %s: %w", path, err)
	}
	defer func() { _ = pending.Cleanup() }()

	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(pending, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return pending.CloseAtomicallyReplace()
}

// Render samples frames [from, to) of e and writes each one as a PNG into
// dir. It returns the number of frames written.
func (c *Compositor) Render(ctx context.Context, e *engine.Engine, dir string, from, to, workers int) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	err := e.Sample(ctx, from, to, workers, func(ctx context.Context, f *engine.Frame) error {
		start := time.Now()
		img, err := c.Compose(ctx, f)
		if err != nil {
			return err
		}
		defer Release(img)
		metrics.FrameComposeSeconds.Observe(time.Since(start).Seconds())

		if err := WritePNG(FramePath(dir, f.Number), img); err != nil {
			return err
		}
		metrics.FramesRenderedTotal.Inc()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return to - from, nil
}
