package source

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ivlev/videoforge/internal/metrics"
)

var (
	ErrRemoteSource      = errors.New("remote sources are not fetched")
	ErrUnsupportedSource = errors.New("unsupported source type")
	ErrPageOutOfRange    = errors.New("page out of range")
)

// Ref is a parsed source reference: a file path and a 1-based page.
// "deck.pdf#3" is page 3 of deck.pdf; plain paths are page 1.
type Ref struct {
	Path string
	Page int
}

func ParseRef(ref string) (Ref, error) {
	if strings.Contains(ref, "://") {
		return Ref{}, fmt.Errorf("%w: %s", ErrRemoteSource, ref)
	}
	path, page := ref, 1
	if i := strings.LastIndexByte(ref, '#'); i >= 0 {
		n, err := strconv.Atoi(ref[i+1:])
		if err != nil || n < 1 {
			return Ref{}, fmt.Errorf("bad page in %q", ref)
		}
		path, page = ref[:i], n
	}
	if path == "" {
		return Ref{}, fmt.Errorf("empty source path in %q", ref)
	}
	return Ref{Path: path, Page: page}, nil
}

// Loader resolves scene sources relative to BaseDir and caches decoded
// images. It is safe for concurrent use; concurrent loads of the same ref
// decode once.
type Loader struct {
	BaseDir string
	DPI     int

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]image.Image
}

func NewLoader(baseDir string, dpi int) *Loader {
	return &Loader{
		BaseDir: baseDir,
		DPI:     dpi,
		cache:   make(map[string]image.Image),
	}
}

// Resolve makes a relative path absolute against BaseDir.
func (l *Loader) Resolve(path string) string {
	if filepath.IsAbs(path) || l.BaseDir == "" {
		return path
	}
	return filepath.Join(l.BaseDir, path)
}

// Load returns the decoded image for a source reference.
func (l *Loader) Load(ref string) (image.Image, error) {
	r, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s#%d", l.Resolve(r.Path), r.Page)

	l.mu.RLock()
	img, ok := l.cache[key]
	l.mu.RUnlock()
	if ok {
		metrics.SourceLoadsTotal.WithLabelValues(metrics.SourceHit).Inc()
		return img, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		img, err := l.decode(r)
		if err != nil {
			metrics.SourceLoadsTotal.WithLabelValues(metrics.SourceError).Inc()
			return nil, err
		}
		metrics.SourceLoadsTotal.WithLabelValues(metrics.SourceDecode).Inc()
		l.mu.Lock()
		l.cache[key] = img
		l.mu.Unlock()
		return img, nil
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", ref, err)
	}
	return v.(image.Image), nil
}

func (l *Loader) decode(r Ref) (image.Image, error) {
	path := l.Resolve(r.Path)

	var (
		src Source
		err error
	)
	switch {
	case strings.EqualFold(filepath.Ext(path), ".pdf"):
		src, err = NewFitzPDFSource(path)
	case IsImage(path):
		src, err = NewImageSource(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if r.Page > src.PageCount() {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, r.Page, src.PageCount())
	}
	dpi := l.DPI
	if dpi <= 0 {
		dpi = 150
	}
	return src.RenderPage(r.Page-1, dpi)
}

// Len is the number of cached images.
func (l *Loader) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.cache)
}
