// Package director builds fixed multi-segment template timelines: a title
// card, one segment per list item, and a closing segment. Each segment's
// elements are pure functions of the segment-local frame.
package director

import (
	"errors"
	"fmt"

	"github.com/ivlev/videoforge/internal/frame"
)

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrFrameOutOfRange = errors.New("frame out of range")
)

// Element is one drawable item of a template frame. Widths are in pixels;
// translations are in pixels unless the element doc says otherwise.
type Element struct {
	Name       string  `yaml:"name"`
	Text       string  `yaml:"text,omitempty"`
	Color      string  `yaml:"color,omitempty"`
	FontSize   int     `yaml:"font_size,omitempty"`
	Opacity    float64 `yaml:"opacity"`
	TranslateX float64 `yaml:"translate_x,omitempty"`
	TranslateY float64 `yaml:"translate_y,omitempty"`
	Scale      float64 `yaml:"scale"`
	Width      float64 `yaml:"width,omitempty"`
	Angle      float64 `yaml:"angle,omitempty"`
}

func text(name, content, color string, size int) Element {
	return Element{Name: name, Text: content, Color: color, FontSize: size, Opacity: 1, Scale: 1}
}

func bar(name, color string, width float64) Element {
	return Element{Name: name, Color: color, Width: width, Opacity: 1, Scale: 1}
}

// Segment is a named frame range of a template. Segments of sequential
// templates are contiguous; layered templates may overlap them.
type Segment struct {
	Name             string `yaml:"name"`
	StartFrame       int    `yaml:"start_frame"`
	DurationInFrames int    `yaml:"duration_in_frames"`
	Background       string `yaml:"background,omitempty"`

	draw func(local int) []Element
}

func (s Segment) EndFrame() int {
	return s.StartFrame + s.DurationInFrames
}

func (s Segment) Contains(f int) bool {
	return f >= s.StartFrame && f < s.EndFrame()
}

// Template is a built template timeline.
type Template struct {
	Name       string    `yaml:"template"`
	FPS        int       `yaml:"fps"`
	Background string    `yaml:"background"`
	Segments   []Segment `yaml:"segments"`
}

// TotalFrames is the end of the latest segment.
func (t *Template) TotalFrames() int {
	total := 0
	for _, s := range t.Segments {
		total = max(total, s.EndFrame())
	}
	return total
}

// Layer is the output of one active segment.
type Layer struct {
	Segment    string    `yaml:"segment"`
	LocalFrame int       `yaml:"local_frame"`
	Background string    `yaml:"background,omitempty"`
	Elements   []Element `yaml:"elements"`
}

// Sample is the resolved state of a template at one frame.
type Sample struct {
	Template   string  `yaml:"template"`
	Frame      int     `yaml:"frame"`
	Background string  `yaml:"background"`
	Layers     []Layer `yaml:"layers"`
}

// Sample resolves every segment active at frame f, bottom layer first.
func (t *Template) Sample(f int) (*Sample, error) {
	if f < 0 || f >= t.TotalFrames() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameOutOfRange, f, t.TotalFrames())
	}

	out := &Sample{Template: t.Name, Frame: f, Background: t.Background}
	for _, s := range t.Segments {
		if !s.Contains(f) {
			continue
		}
		local := f - s.StartFrame
		layer := Layer{Segment: s.Name, LocalFrame: local, Background: s.Background}
		if s.draw != nil {
			layer.Elements = s.draw(local)
		}
		out.Layers = append(out.Layers, layer)
	}
	return out, nil
}

// builder lays segments out with the same accumulation fold as scene
// timelines: each appended segment starts where the previous one ended.
type builder struct {
	t       *Template
	current int
}

func newBuilder(name string, fps int, background string) (*builder, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("%s: %w: fps %d", name, frame.ErrInvalidDuration, fps)
	}
	return &builder{t: &Template{Name: name, FPS: fps, Background: background}}, nil
}

func (b *builder) frames(seconds float64) int {
	return frame.MustFrames(seconds, b.t.FPS)
}

// next appends a segment at the current end of the timeline.
func (b *builder) next(name string, seconds float64, background string, draw func(int) []Element) {
	n := b.frames(seconds)
	b.t.Segments = append(b.t.Segments, Segment{
		Name:             name,
		StartFrame:       b.current,
		DurationInFrames: n,
		Background:       background,
		draw:             draw,
	})
	b.current += n
}

// at places a segment at an absolute time without moving the cursor.
func (b *builder) at(name string, from, seconds float64, background string, draw func(int) []Element) {
	b.t.Segments = append(b.t.Segments, Segment{
		Name:             name,
		StartFrame:       b.frames(from),
		DurationInFrames: b.frames(seconds),
		Background:       background,
		draw:             draw,
	})
}

// ramp interpolates over a window given in seconds.
func (b *builder) ramp(local int, from, to float64, out [2]float64, ex frame.Extrapolation) float64 {
	return frame.Ramp(local, b.frames(from), b.frames(to), out, ex)
}
