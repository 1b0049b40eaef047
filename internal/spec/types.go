// Package spec defines the VideoSpec tree and its YAML representation.
package spec

import "fmt"

type SceneType string

const (
	SceneColor      SceneType = "color"
	SceneImage      SceneType = "image"
	SceneVideo      SceneType = "video"
	SceneAIGenerate SceneType = "ai_generate"
)

type FitMode string

const (
	FitCover   FitMode = "cover"
	FitContain FitMode = "contain"
	FitStretch FitMode = "stretch"
)

type Position string

const (
	PositionCenter       Position = "center"
	PositionTopCenter    Position = "top_center"
	PositionBottomCenter Position = "bottom_center"
	PositionTopLeft      Position = "top_left"
	PositionTopRight     Position = "top_right"
	PositionBottomLeft   Position = "bottom_left"
	PositionBottomRight  Position = "bottom_right"
)

type Animation string

const (
	AnimationNone       Animation = "none"
	AnimationFadeIn     Animation = "fade_in"
	AnimationFadeOut    Animation = "fade_out"
	AnimationSlideUp    Animation = "slide_up"
	AnimationSlideDown  Animation = "slide_down"
	AnimationTypewriter Animation = "typewriter"
)

type Transition string

const (
	TransitionNone      Transition = "none"
	TransitionFade      Transition = "fade"
	TransitionCrossfade Transition = "crossfade"
	TransitionWipeLeft  Transition = "wipe_left"
	TransitionWipeRight Transition = "wipe_right"
	TransitionDissolve  Transition = "dissolve"
)

// VideoSpec is the root of a video definition.
type VideoSpec struct {
	Version string    `yaml:"version"`
	Video   VideoMeta `yaml:"video"`
	Scenes  []Scene   `yaml:"scenes"`
	Audio   Audio     `yaml:"audio,omitempty"`
	Export  Export    `yaml:"export"`
}

// VideoMeta holds global video settings.
type VideoMeta struct {
	Title           string `yaml:"title"`
	Resolution      []int  `yaml:"resolution,flow"` // [width, height]
	FPS             int    `yaml:"fps"`
	BackgroundColor string `yaml:"background_color"`
}

func (m VideoMeta) Width() int {
	if len(m.Resolution) < 1 {
		return 0
	}
	return m.Resolution[0]
}

func (m VideoMeta) Height() int {
	if len(m.Resolution) < 2 {
		return 0
	}
	return m.Resolution[1]
}

// Scene is a single timeline segment: a background plus text overlays.
type Scene struct {
	ID                 string        `yaml:"id,omitempty"`
	Type               SceneType     `yaml:"type"`
	Duration           float64       `yaml:"duration"` // seconds
	Source             string        `yaml:"source,omitempty"`
	SourcePrompt       string        `yaml:"source_prompt,omitempty"`
	Color              string        `yaml:"color"`
	Fit                FitMode       `yaml:"fit"`
	TextOverlays       []TextOverlay `yaml:"text_overlays,omitempty"`
	TransitionIn       Transition    `yaml:"transition_in"`
	TransitionOut      Transition    `yaml:"transition_out"`
	TransitionDuration float64       `yaml:"transition_duration"` // seconds
}

// EffectiveID returns the scene id, or one derived from its position.
func (s *Scene) EffectiveID(index int) string {
	if s.ID != "" {
		return s.ID
	}
	return fmt.Sprintf("scene_%d", index)
}

// TextOverlay is a positioned, animated text element inside a scene.
type TextOverlay struct {
	Content     string    `yaml:"content"`
	Position    Position  `yaml:"position"`
	Font        string    `yaml:"font"`
	FontSize    int       `yaml:"font_size"`
	Color       string    `yaml:"color"`
	BgColor     string    `yaml:"bg_color,omitempty"`
	BorderColor string    `yaml:"border_color,omitempty"`
	BorderWidth int       `yaml:"border_width,omitempty"`
	Animation   Animation `yaml:"animation"`
	Start       *float64  `yaml:"start,omitempty"` // seconds from scene start
	End         *float64  `yaml:"end,omitempty"`
	Style       string    `yaml:"style,omitempty"` // named style reference, informational
}

// Audio describes background music and narration. It is carried as data for
// the audio collaborators; the timeline engine does not read it.
type Audio struct {
	BGM       *BGM               `yaml:"bgm,omitempty"`
	Narration []NarrationSegment `yaml:"narration,omitempty"`
}

type BGM struct {
	Source       string  `yaml:"source,omitempty"`
	SourcePrompt string  `yaml:"source_prompt,omitempty"`
	Volume       float64 `yaml:"volume"`
	FadeIn       float64 `yaml:"fade_in"`
	FadeOut      float64 `yaml:"fade_out"`
	Loop         bool    `yaml:"loop"`
}

type NarrationSegment struct {
	Scene     string  `yaml:"scene"`
	Text      string  `yaml:"text"`
	Voice     string  `yaml:"voice"`
	SpeakerID int     `yaml:"speaker_id"`
	Speed     float64 `yaml:"speed"`
}

// Export holds output settings consumed by the encoding collaborator.
type Export struct {
	Format     string `yaml:"format"`
	Codec      string `yaml:"codec"`
	Platform   string `yaml:"platform"`
	Quality    string `yaml:"quality"`
	OutputPath string `yaml:"output_path,omitempty"`
}

// TotalDuration returns the sum of scene durations in seconds.
func (v *VideoSpec) TotalDuration() float64 {
	total := 0.0
	for _, s := range v.Scenes {
		total += s.Duration
	}
	return total
}

// SceneIndex finds a scene by its effective id.
func (v *VideoSpec) SceneIndex(id string) (int, bool) {
	for i := range v.Scenes {
		if v.Scenes[i].EffectiveID(i) == id {
			return i, true
		}
	}
	return -1, false
}
