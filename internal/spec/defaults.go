package spec

import "gopkg.in/yaml.v3"

const (
	DefaultVersion    = "1.0"
	DefaultTitle      = "Untitled"
	DefaultWidth      = 1920
	DefaultHeight     = 1080
	DefaultFPS        = 30
	DefaultFont       = "Yu Gothic"
	DefaultFontSize   = 48
	DefaultTextColor  = "#FFFFFF"
	DefaultBackground = "#000000"
)

// Default returns an empty spec with every default applied.
func Default() VideoSpec {
	return VideoSpec{
		Version: DefaultVersion,
		Video:   defaultVideoMeta(),
		Export:  defaultExport(),
	}
}

func defaultVideoMeta() VideoMeta {
	return VideoMeta{
		Title:           DefaultTitle,
		Resolution:      []int{DefaultWidth, DefaultHeight},
		FPS:             DefaultFPS,
		BackgroundColor: DefaultBackground,
	}
}

func defaultExport() Export {
	return Export{Format: "mp4", Codec: "h264", Platform: "youtube", Quality: "high"}
}

// DefaultScene returns a scene with schema defaults.
func DefaultScene() Scene {
	return Scene{
		Type:               SceneColor,
		Duration:           5,
		Color:              DefaultBackground,
		Fit:                FitCover,
		TransitionIn:       TransitionNone,
		TransitionOut:      TransitionNone,
		TransitionDuration: 0.5,
	}
}

// DefaultOverlay returns a text overlay with schema defaults. Font stays empty
// so the renderer's configured family applies; DefaultFont is its fallback.
func DefaultOverlay() TextOverlay {
	return TextOverlay{
		Position:  PositionBottomCenter,
		FontSize:  DefaultFontSize,
		Color:     DefaultTextColor,
		Animation: AnimationNone,
	}
}

// The UnmarshalYAML hooks pre-fill defaults so keys missing from the document
// keep their schema value, including inside sequences.

func (m *VideoMeta) UnmarshalYAML(value *yaml.Node) error {
	type raw VideoMeta
	r := raw(defaultVideoMeta())
	if err := value.Decode(&r); err != nil {
		return err
	}
	*m = VideoMeta(r)
	return nil
}

func (s *Scene) UnmarshalYAML(value *yaml.Node) error {
	type raw Scene
	r := raw(DefaultScene())
	if err := value.Decode(&r); err != nil {
		return err
	}
	*s = Scene(r)
	return nil
}

func (o *TextOverlay) UnmarshalYAML(value *yaml.Node) error {
	type raw TextOverlay
	r := raw(DefaultOverlay())
	if err := value.Decode(&r); err != nil {
		return err
	}
	*o = TextOverlay(r)
	return nil
}

func (b *BGM) UnmarshalYAML(value *yaml.Node) error {
	type raw BGM
	r := raw(BGM{Volume: 0.3, Loop: true})
	if err := value.Decode(&r); err != nil {
		return err
	}
	*b = BGM(r)
	return nil
}

func (n *NarrationSegment) UnmarshalYAML(value *yaml.Node) error {
	type raw NarrationSegment
	r := raw(NarrationSegment{Voice: "voicevox", SpeakerID: 1, Speed: 1})
	if err := value.Decode(&r); err != nil {
		return err
	}
	*n = NarrationSegment(r)
	return nil
}

func (e *Export) UnmarshalYAML(value *yaml.Node) error {
	type raw Export
	r := raw(defaultExport())
	if err := value.Decode(&r); err != nil {
		return err
	}
	*e = Export(r)
	return nil
}
