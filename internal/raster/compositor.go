// Package raster draws engine frames into RGBA images. It is a preview
// compositor: text uses a fixed bitmap face scaled to the requested size.
// The default face covers Latin text only; runes outside a face are reported once
// per overlay and drawn as the face's replacement glyph.
package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"sync"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/videoforge/internal/analyzer"
	"github.com/ivlev/videoforge/internal/engine"
	"github.com/ivlev/videoforge/internal/log"
	"github.com/ivlev/videoforge/internal/metrics"
	"github.com/ivlev/videoforge/internal/source"
	"github.com/ivlev/videoforge/internal/spec"
	"github.com/ivlev/videoforge/internal/system"
)

// Assets loads decoded scene backgrounds by source reference.
type Assets interface {
	Load(ref string) (image.Image, error)
}

// Compositor implements engine.Compositor.
type Compositor struct {
	assets  Assets
	face    font.Face
	checker analyzer.Checker
	log     zerolog.Logger

	// overlays already assessed, keyed by scene and overlay index
	checked sync.Map
	// overlays already reported for runes the face lacks, same keys
	missing sync.Map
}

type Option func(*Compositor)

func WithFace(face font.Face) Option {
	return func(c *Compositor) { c.face = face }
}

// WithLegibility warns once per overlay when text without a box or outline
// is hard to read over an image background.
func WithLegibility(c analyzer.Checker) Option {
	return func(comp *Compositor) { comp.checker = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Compositor) { c.log = l }
}

var _ engine.Compositor = (*Compositor)(nil)

// New returns a compositor. A nil assets draws media scenes as their
// fallback color.
func New(assets Assets, opts ...Option) *Compositor {
	c := &Compositor{
		assets: assets,
		face:   basicfont.Face7x13,
		log:    log.WithComponent("raster"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Compose draws f into a pooled buffer. Hand the result to Release once it
// has been encoded.
func (c *Compositor) Compose(ctx context.Context, f *engine.Frame) (image.Image, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("compose frame %d: bad size %dx%d", f.Number, f.Width, f.Height)
	}
	bg, err := ParseColor(f.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("compose frame %d: %w", f.Number, err)
	}

	dst := system.GetImage(image.Rect(0, 0, f.Width, f.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for i := range f.Layers {
		if err := ctx.Err(); err != nil {
			system.PutImage(dst)
			return nil, err
		}
		if err := c.drawLayer(dst, &f.Layers[i]); err != nil {
			system.PutImage(dst)
			return nil, fmt.Errorf("compose frame %d: scene %s: %w", f.Number, f.Layers[i].SceneID, err)
		}
	}
	return dst, nil
}

// Release returns a composed image to the buffer pool.
func Release(img image.Image) {
	if rgba, ok := img.(*image.RGBA); ok {
		system.PutImage(rgba)
	}
}

func (c *Compositor) drawLayer(dst *image.RGBA, l *engine.Layer) error {
	if l.Opacity <= 0 {
		return nil
	}
	if err := c.drawBackground(dst, l.Background, l.Opacity); err != nil {
		return err
	}
	for i := range l.Overlays {
		if err := c.drawOverlay(dst, l, &l.Overlays[i]); err != nil {
			return fmt.Errorf("overlay %d: %w", l.Overlays[i].Index, err)
		}
	}
	return nil
}

func (c *Compositor) drawBackground(dst *image.RGBA, b engine.Background, opacity float64) error {
	if b.Type == spec.SceneImage && c.assets != nil && b.Source != "" {
		img, err := c.assets.Load(b.Source)
		switch {
		case err == nil:
			drawFitted(dst, img, b.Fit, opacity)
			return nil
		case errors.Is(err, source.ErrRemoteSource), errors.Is(err, source.ErrUnsupportedSource):
			c.log.Debug().Err(err).Str(log.FieldSource, b.Source).Msg("Falling back to scene color")
		default:
			return err
		}
	}

	col, err := ParseColor(b.Color)
	if err != nil {
		return err
	}
	fill(dst, dst.Bounds(), col, opacity)
	return nil
}

func (c *Compositor) drawOverlay(dst *image.RGBA, l *engine.Layer, o *engine.Overlay) error {
	alpha := clamp01(o.Opacity) * clamp01(l.Opacity)
	if alpha <= 0 || o.Scale <= 0 {
		return nil
	}

	text := o.Text
	if o.Typewriter && o.CursorVisible {
		text += "|"
	}
	st := o.Style
	c.checkGlyphs(l, o)
	mask := textMask(c.face, text, float64(st.FontSize)*o.Scale, st.LineHeight)
	if mask == nil {
		return nil
	}

	padX := int(math.Round(float64(st.PaddingX) * o.Scale))
	padY := int(math.Round(float64(st.PaddingY) * o.Scale))
	tw, th := mask.Rect.Dx(), mask.Rect.Dy()
	boxW, boxH := tw+2*padX, th+2*padY

	frameW, frameH := dst.Rect.Dx(), dst.Rect.Dy()
	at := o.Box.Place(frameW, frameH, boxW, boxH)
	at = at.Add(image.Pt(int(math.Round(o.TranslateX)), int(math.Round(o.TranslateY))))
	box := image.Rect(at.X, at.Y, at.X+boxW, at.Y+boxH)

	if st.Background != "" {
		col, err := ParseColor(st.Background)
		if err != nil {
			return err
		}
		radius := int(math.Round(float64(st.CornerRadius) * o.Scale))
		fillRounded(dst, box, radius, col, alpha)
	}

	textAt := image.Rect(box.Min.X+padX, box.Min.Y+padY, box.Max.X-padX, box.Max.Y-padY)
	faded := fadeMask(mask, alpha)
	for _, sh := range st.Outline {
		col, err := ParseColor(sh.Color)
		if err != nil {
			return err
		}
		draw.DrawMask(dst, textAt.Add(image.Pt(sh.DX, sh.DY)), image.NewUniform(col), image.Point{}, faded, image.Point{}, draw.Over)
	}

	col, err := ParseColor(st.Color)
	if err != nil {
		return err
	}
	if st.Background == "" && !st.HasOutline() && l.Background.Type == spec.SceneImage {
		c.checkLegibility(dst, l, o, textAt, col)
	}
	draw.DrawMask(dst, textAt, image.NewUniform(col), image.Point{}, faded, image.Point{}, draw.Over)
	return nil
}

func (c *Compositor) checkLegibility(dst *image.RGBA, l *engine.Layer, o *engine.Overlay, rect image.Rectangle, text color.NRGBA) {
	if c.checker == nil {
		return
	}
	key := l.SceneID + "/" + strconv.Itoa(o.Index)
	if _, done := c.checked.LoadOrStore(key, struct{}{}); done {
		return
	}
	a := c.checker.Assess(dst, rect, text)
	if !a.Legible {
		metrics.LegibilityWarningsTotal.Inc()
		c.log.Warn().
			Str(log.FieldSceneID, l.SceneID).
			Int(log.FieldOverlay, o.Index).
			Float64("contrast", a.Contrast).
			Float64("edge_density", a.EdgeDensity).
			Msg("Overlay text may be hard to read; consider bg_color or border_color")
	}
}

func (c *Compositor) checkGlyphs(l *engine.Layer, o *engine.Overlay) {
	key := l.SceneID + "/" + strconv.Itoa(o.Index)
	if _, done := c.missing.Load(key); done {
		return
	}
	var absent []rune
	for _, r := range o.Text {
		if unicode.IsSpace(r) || unicode.IsControl(r) || hasGlyph(c.face, r) {
			continue
		}
		absent = append(absent, r)
	}
	if len(absent) == 0 {
		return
	}
	if _, done := c.missing.LoadOrStore(key, struct{}{}); done {
		return
	}
	c.log.Warn().
		Str(log.FieldSceneID, l.SceneID).
		Int(log.FieldOverlay, o.Index).
		Str("font_family", o.Style.FontFamily).
		Int("missing", len(absent)).
		Str("first", string(absent[0])).
		Msg("Preview face lacks glyphs for overlay text; drawing replacement glyphs")
}

// hasGlyph reports whether face draws r itself rather than a substitute.
func hasGlyph(face font.Face, r rune) bool {
	if bf, ok := face.(*basicfont.Face); ok {
		for _, rng := range bf.Ranges {
			if r >= rng.Low && r < rng.High {
				return true
			}
		}
		return false
	}
	_, _, _, _, ok := face.Glyph(fixed.Point26_6{}, r)
	return ok
}

func fill(dst *image.RGBA, r image.Rectangle, c color.NRGBA, opacity float64) {
	draw.Draw(dst, r, image.NewUniform(withAlpha(c, opacity)), image.Point{}, draw.Over)
}

// fillRounded fills r with corners of the given radius cut away. The radius
// is clamped to half the shorter side.
func fillRounded(dst *image.RGBA, r image.Rectangle, radius int, c color.NRGBA, opacity float64) {
	radius = min(radius, r.Dx()/2, r.Dy()/2)
	if radius <= 0 {
		fill(dst, r, c, opacity)
		return
	}
	draw.DrawMask(dst, r, image.NewUniform(withAlpha(c, opacity)), image.Point{}, cornerMask(r.Dx(), r.Dy(), radius), image.Point{}, draw.Over)
}

func cornerMask(w, h, radius int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	rr := float64(radius)
	for y := range h {
		for x := range w {
			// distance from the nearest corner circle centre, zero off the corners
			dx := max(rr-(float64(x)+0.5), (float64(x)+0.5)-(float64(w)-rr), 0)
			dy := max(rr-(float64(y)+0.5), (float64(y)+0.5)-(float64(h)-rr), 0)
			if dx*dx+dy*dy <= rr*rr {
				m.Pix[y*m.Stride+x] = 0xff
			}
		}
	}
	return m
}

func fadeMask(m *image.Alpha, a float64) *image.Alpha {
	if a >= 1 {
		return m
	}
	out := image.NewAlpha(m.Rect)
	for i, v := range m.Pix {
		out.Pix[i] = uint8(float64(v)*a + 0.5)
	}
	return out
}

func alphaOf(a float64) color.Alpha {
	return color.Alpha{A: uint8(clamp01(a)*255 + 0.5)}
}
