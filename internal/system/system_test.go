package system

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLatestSpec(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old.yaml")
	newer := filepath.Join(dir, "new.YML")
	ignored := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, newer, ignored} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
	base := time.Now()
	require.NoError(t, os.Chtimes(old, base, base.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(newer, base, base))
	require.NoError(t, os.Chtimes(ignored, base, base.Add(time.Hour)))

	got, err := FindLatestSpec(dir)
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestFindLatestEmpty(t *testing.T) {
	_, err := FindLatestSpec(t.TempDir())
	require.Error(t, err)

	_, err = FindLatest(filepath.Join(t.TempDir(), "missing"), ".yaml")
	require.Error(t, err)
}

func TestWorkers(t *testing.T) {
	assert.GreaterOrEqual(t, DefaultWorkers(), 1)
	assert.GreaterOrEqual(t, WorkersFor(0, 1920*1080*4), 1)

	assert.Equal(t, 8, capWorkers(8, 1<<30, 1<<20))
	assert.Equal(t, 4, capWorkers(8, 4<<20, 1<<20))
	assert.Equal(t, 1, capWorkers(8, 1<<10, 1<<20))
}

func TestImagePoolReusesBySize(t *testing.T) {
	p := NewImagePool()
	rect := image.Rect(0, 0, 4, 2)

	img := p.Get(rect)
	assert.Equal(t, rect, img.Bounds())
	p.Put(img)

	other := p.Get(image.Rect(0, 0, 2, 2))
	assert.Equal(t, image.Rect(0, 0, 2, 2), other.Bounds())

	p.Put(nil)
	p.Put(image.NewRGBA(image.Rect(0, 0, 9, 9)))
	assert.Equal(t, image.Rect(0, 0, 9, 9), p.Get(image.Rect(0, 0, 9, 9)).Bounds())
}
