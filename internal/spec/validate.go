package spec

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec wraps every structural problem reported by Validate.
var ErrInvalidSpec = errors.New("invalid video spec")

var (
	sceneTypes = map[SceneType]struct{}{
		SceneColor: {}, SceneImage: {}, SceneVideo: {}, SceneAIGenerate: {},
	}
	fitModes = map[FitMode]struct{}{
		FitCover: {}, FitContain: {}, FitStretch: {},
	}
	positions = map[Position]struct{}{
		PositionCenter: {}, PositionTopCenter: {}, PositionBottomCenter: {},
		PositionTopLeft: {}, PositionTopRight: {}, PositionBottomLeft: {}, PositionBottomRight: {},
	}
	animations = map[Animation]struct{}{
		AnimationNone: {}, AnimationFadeIn: {}, AnimationFadeOut: {},
		AnimationSlideUp: {}, AnimationSlideDown: {}, AnimationTypewriter: {},
	}
	transitions = map[Transition]struct{}{
		TransitionNone: {}, TransitionFade: {}, TransitionCrossfade: {},
		TransitionWipeLeft: {}, TransitionWipeRight: {}, TransitionDissolve: {},
	}
)

func (p Position) Valid() bool {
	_, ok := positions[p]
	return ok
}

func (a Animation) Valid() bool {
	_, ok := animations[a]
	return ok
}

func (t Transition) Valid() bool {
	_, ok := transitions[t]
	return ok
}

// Validate checks the structural invariants of the spec and reports all
// violations at once. Transition durations longer than half a scene are
// allowed but flagged by Warnings.
func (v *VideoSpec) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSpec}, args...)...))
	}

	if v.Video.FPS <= 0 {
		add("video.fps must be > 0, got %d", v.Video.FPS)
	}
	if len(v.Video.Resolution) != 2 {
		add("video.resolution must have 2 values, got %d", len(v.Video.Resolution))
	} else if v.Video.Width() <= 0 || v.Video.Height() <= 0 {
		add("video.resolution must be positive, got %dx%d", v.Video.Width(), v.Video.Height())
	}

	seen := make(map[string]int, len(v.Scenes))
	for i := range v.Scenes {
		s := &v.Scenes[i]
		id := s.EffectiveID(i)
		if prev, ok := seen[id]; ok {
			add("scenes[%d]: duplicate id %q (also scenes[%d])", i, id, prev)
		}
		seen[id] = i

		if s.Duration <= 0 {
			add("scenes[%d]: duration must be > 0, got %v", i, s.Duration)
		}
		if _, ok := sceneTypes[s.Type]; !ok {
			add("scenes[%d]: unknown type %q", i, s.Type)
		}
		if _, ok := fitModes[s.Fit]; !ok {
			add("scenes[%d]: unknown fit %q", i, s.Fit)
		}
		if (s.Type == SceneImage || s.Type == SceneVideo) && s.Source == "" {
			add("scenes[%d]: %s scene requires source", i, s.Type)
		}
		if s.Type == SceneAIGenerate && s.SourcePrompt == "" {
			add("scenes[%d]: ai_generate scene requires source_prompt", i)
		}
		if !s.TransitionIn.Valid() {
			add("scenes[%d]: unknown transition_in %q", i, s.TransitionIn)
		}
		if !s.TransitionOut.Valid() {
			add("scenes[%d]: unknown transition_out %q", i, s.TransitionOut)
		}
		if s.TransitionDuration < 0 {
			add("scenes[%d]: transition_duration must be >= 0, got %v", i, s.TransitionDuration)
		}

		for j := range s.TextOverlays {
			o := &s.TextOverlays[j]
			if !o.Position.Valid() {
				add("scenes[%d].text_overlays[%d]: unknown position %q", i, j, o.Position)
			}
			if !o.Animation.Valid() {
				add("scenes[%d].text_overlays[%d]: unknown animation %q", i, j, o.Animation)
			}
			if o.BorderWidth < 0 {
				add("scenes[%d].text_overlays[%d]: border_width must be >= 0", i, j)
			}
			if o.FontSize < 0 {
				add("scenes[%d].text_overlays[%d]: font_size must be >= 0", i, j)
			}
			if o.Start != nil && *o.Start < 0 {
				add("scenes[%d].text_overlays[%d]: start must be >= 0", i, j)
			}
			if o.Start != nil && o.End != nil && *o.Start >= *o.End {
				add("scenes[%d].text_overlays[%d]: start %v must be before end %v", i, j, *o.Start, *o.End)
			}
		}
	}

	return errors.Join(errs...)
}

// Warnings lists recommended-invariant violations that do not block rendering.
func (v *VideoSpec) Warnings() []string {
	var out []string
	for i := range v.Scenes {
		s := &v.Scenes[i]
		if s.Duration > 0 && s.TransitionDuration > s.Duration/2 {
			out = append(out, fmt.Sprintf("scenes[%d]: transition_duration %vs exceeds half the scene (%vs)",
				i, s.TransitionDuration, s.Duration))
		}
		for j := range s.TextOverlays {
			o := &s.TextOverlays[j]
			if o.End != nil && *o.End > s.Duration {
				out = append(out, fmt.Sprintf("scenes[%d].text_overlays[%d]: end %vs is past the scene end (%vs)",
					i, j, *o.End, s.Duration))
			}
		}
	}
	return out
}
