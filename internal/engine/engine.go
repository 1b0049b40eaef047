// Package engine answers frame queries against a validated VideoSpec. Every
// query is a pure function of the spec and the frame number, so frames can
// be computed in any order and on any number of workers.
package engine

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"github.com/ivlev/videoforge/internal/animation"
	"github.com/ivlev/videoforge/internal/layout"
	"github.com/ivlev/videoforge/internal/log"
	"github.com/ivlev/videoforge/internal/metrics"
	"github.com/ivlev/videoforge/internal/spec"
	"github.com/ivlev/videoforge/internal/timeline"
	"github.com/ivlev/videoforge/internal/transition"
)

// ErrFrameOutOfRange is returned for frames outside [0, TotalFrames()).
var ErrFrameOutOfRange = errors.New("frame out of range")

// Compositor turns render directives into pixels.
type Compositor interface {
	Compose(ctx context.Context, f *Frame) (image.Image, error)
}

type Engine struct {
	spec     *spec.VideoSpec
	timeline *timeline.Timeline
	scenes   [][]overlayPlan
	width    int
	height   int

	fonts layout.Resolver
	log   zerolog.Logger
}

// overlayPlan holds everything about an overlay that does not depend on the
// frame number.
type overlayPlan struct {
	index   int
	overlay spec.TextOverlay
	window  animation.Window
	box     layout.Box
	style   layout.TextStyle
	skip    bool
}

type Option func(*Engine)

// WithLogger sets the logger used to report degraded overlays and scenes.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithDefaultFont sets the family used by overlays without a font.
func WithDefaultFont(name string) Option {
	return func(e *Engine) {
		e.fonts.DefaultFont = name
	}
}

// New builds the timeline and resolves the static part of every overlay.
// Structural problems (fps, resolution, durations) fail here; per-overlay
// anomalies are logged once and degrade at query time.
func New(v *spec.VideoSpec, opts ...Option) (*Engine, error) {
	e := &Engine{
		spec:   v,
		width:  v.Video.Width(),
		height: v.Video.Height(),
		fonts:  layout.Resolver{DefaultFont: spec.DefaultFont},
		log:    log.WithComponent("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.width <= 0 || e.height <= 0 {
		return nil, fmt.Errorf("new engine: resolution %dx%d must be positive", e.width, e.height)
	}
	tl, err := timeline.Build(v)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	e.timeline = tl

	e.scenes = make([][]overlayPlan, len(tl.Entries))
	for i, entry := range tl.Entries {
		e.checkTransitions(entry)
		e.scenes[i] = e.planOverlays(entry)
	}

	e.log.Debug().
		Int(log.FieldTotalFrames, tl.TotalFrames()).
		Int(log.FieldFPS, tl.FPS).
		Str(log.FieldResolution, fmt.Sprintf("%dx%d", e.width, e.height)).
		Int("scenes", len(tl.Entries)).
		Msg("timeline built")
	return e, nil
}

func (e *Engine) checkTransitions(entry timeline.Entry) {
	if _, err := transition.SceneOpacity(entry.Scene, 0, entry.DurationInFrames, e.timeline.FPS); err != nil {
		metrics.OverlayAnomaliesTotal.WithLabelValues(metrics.AnomalyTransition).Inc()
		e.log.Warn().Err(err).Str(log.FieldSceneID, entry.ID).Msg("transition ignored")
	}
}

func (e *Engine) planOverlays(entry timeline.Entry) []overlayPlan {
	scene := entry.Scene
	plans := make([]overlayPlan, len(scene.TextOverlays))
	for j := range scene.TextOverlays {
		p := overlayPlan{index: j, overlay: scene.TextOverlays[j]}
		// typewriter reveals runes; composed forms keep "が" one character
		p.overlay.Content = norm.NFC.String(p.overlay.Content)
		l := e.log.With().Str(log.FieldSceneID, entry.ID).Int(log.FieldOverlay, j).Logger()

		w, err := animation.WindowFor(&p.overlay, entry.DurationInFrames, e.timeline.FPS)
		if err != nil {
			metrics.OverlayAnomaliesTotal.WithLabelValues(metrics.AnomalyWindow).Inc()
			l.Warn().Err(err).Msg("overlay never renders")
			p.skip = true
		}
		p.window = w

		if p.box, err = layout.Anchor(p.overlay.Position); err != nil {
			metrics.OverlayAnomaliesTotal.WithLabelValues(metrics.AnomalyPosition).Inc()
			l.Warn().Err(err).Msg("overlay placed at bottom_center")
		}
		if !p.overlay.Animation.Valid() && p.overlay.Animation != "" {
			metrics.OverlayAnomaliesTotal.WithLabelValues(metrics.AnomalyAnimation).Inc()
			l.Warn().Str("animation", string(p.overlay.Animation)).Msg("unknown animation, rendering without one")
			p.overlay.Animation = spec.AnimationNone
		}
		p.style = e.fonts.Style(&p.overlay)
		plans[j] = p
	}
	return plans
}

// TotalFrames is the length of the render range [0, TotalFrames()).
func (e *Engine) TotalFrames() int {
	return e.timeline.TotalFrames()
}

func (e *Engine) FPS() int {
	return e.timeline.FPS
}

// Timeline exposes the scene layout. It must not be modified.
func (e *Engine) Timeline() *timeline.Timeline {
	return e.timeline
}

// Frame resolves the render directives of frame n.
func (e *Engine) Frame(n int) (*Frame, error) {
	entry, ok := e.timeline.Locate(n)
	if !ok {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameOutOfRange, n, e.TotalFrames())
	}
	fps := e.timeline.FPS
	local := entry.LocalFrame(n)

	// unknown kinds were reported by New; the returned opacity is already 1
	opacity, _ := transition.SceneOpacity(entry.Scene, local, entry.DurationInFrames, fps)

	layer := Layer{
		SceneID:    entry.ID,
		SceneIndex: entry.Index,
		LocalFrame: local,
		Opacity:    opacity,
		Background: backgroundOf(entry.Scene),
	}

	for i := range e.scenes[entry.Index] {
		p := &e.scenes[entry.Index][i]
		if p.skip || !p.window.Visible(local) {
			continue
		}
		snap, err := animation.Resolve(&p.overlay, p.window.Local(local), p.window.Duration(), local, fps)
		if err != nil {
			return nil, fmt.Errorf("frame %d: scene %s overlay %d: %w", n, entry.ID, p.index, err)
		}
		layer.Overlays = append(layer.Overlays, overlayOf(p, snap))
	}

	return &Frame{
		Number:          n,
		Width:           e.width,
		Height:          e.height,
		BackgroundColor: e.spec.Video.BackgroundColor,
		Layers:          []Layer{layer},
	}, nil
}

func backgroundOf(s *spec.Scene) Background {
	return Background{
		Type:   s.Type,
		Color:  s.Color,
		Source: s.Source,
		Prompt: s.SourcePrompt,
		Fit:    s.Fit,
	}
}

func overlayOf(p *overlayPlan, snap animation.Snapshot) Overlay {
	o := Overlay{
		Index:      p.index,
		Text:       p.overlay.Content,
		Style:      p.style,
		Box:        p.box,
		Opacity:    snap.Opacity,
		TranslateX: snap.TranslateX,
		TranslateY: snap.TranslateY,
		Scale:      snap.Scale,
	}
	if snap.Typewriter {
		o.Typewriter = true
		o.Text = animation.Reveal(p.overlay.Content, snap.RevealedChars)
		o.CursorVisible = snap.CursorVisible
		o.Opacity, o.TranslateX, o.TranslateY, o.Scale = 1, 0, 0, 1
	}
	return o
}
