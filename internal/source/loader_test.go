package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		ref     string
		want    Ref
		wantErr bool
	}{
		{"bg.png", Ref{Path: "bg.png", Page: 1}, false},
		{"slides/deck.pdf#3", Ref{Path: "slides/deck.pdf", Page: 3}, false},
		{"deck.pdf#0", Ref{}, true},
		{"deck.pdf#x", Ref{}, true},
		{"#2", Ref{}, true},
		{"https://example.com/a.png", Ref{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ParseRef(tt.ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseRef("http://host/x.png")
	require.ErrorIs(t, err, ErrRemoteSource)
}

func TestLoaderResolvesAndCaches(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "bg.png"), 8, 4)

	l := NewLoader(dir, 0)
	img, err := l.Load("bg.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())

	again, err := l.Load("bg.png")
	require.NoError(t, err)
	assert.Same(t, img.(*image.NRGBA), again.(*image.NRGBA))
	assert.Equal(t, 1, l.Len())

	abs := filepath.Join(dir, "bg.png")
	assert.Equal(t, abs, l.Resolve(abs))
}

func TestLoaderConcurrentLoadsDecodeOnce(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 2, 2)
	l := NewLoader(dir, 0)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Load("a.png")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, l.Len())
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "one.png"), 2, 2)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.mp4"), []byte("x"), 0644))
	l := NewLoader(dir, 0)

	_, err := l.Load("clip.mp4")
	require.ErrorIs(t, err, ErrUnsupportedSource)

	_, err = l.Load("one.png#2")
	require.ErrorIs(t, err, ErrPageOutOfRange)

	_, err = l.Load("missing.png")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, l.Len())
}

func TestImageSourceDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.png")
	writePNG(t, path, 16, 9)

	src, err := NewImageSource(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, 1, src.PageCount())
	w, h, err := src.GetPageDimensions(0)
	require.NoError(t, err)
	assert.Equal(t, 16.0, w)
	assert.Equal(t, 9.0, h)

	assert.True(t, IsImage("a.WEBP"))
	assert.False(t, IsImage("a.mov"))
}
