package engine

import (
	"github.com/ivlev/videoforge/internal/layout"
	"github.com/ivlev/videoforge/internal/spec"
)

// Frame is the ordered list of render directives for one output frame.
// Layers are drawn bottom first over BackgroundColor.
type Frame struct {
	Number          int
	Width           int
	Height          int
	BackgroundColor string
	Layers          []Layer
}

// Layer is one scene's contribution to a frame.
type Layer struct {
	SceneID    string
	SceneIndex int
	LocalFrame int
	Opacity    float64
	Background Background
	Overlays   []Overlay
}

// Background references the scene backdrop. Source is resolved by the
// asset collaborator, never by the engine.
type Background struct {
	Type   spec.SceneType
	Color  string
	Source string
	Prompt string
	Fit    spec.FitMode
}

// Overlay is a fully resolved text element. For typewriter overlays Text is
// the revealed prefix and the transform fields are neutral.
type Overlay struct {
	Index         int
	Text          string
	Style         layout.TextStyle
	Box           layout.Box
	Opacity       float64
	TranslateX    float64
	TranslateY    float64
	Scale         float64
	Typewriter    bool
	CursorVisible bool
}
