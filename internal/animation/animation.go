// Package animation resolves an overlay's animation kind into the visual
// parameters of a single frame.
package animation

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/ivlev/videoforge/internal/frame"
	"github.com/ivlev/videoforge/internal/spec"
)

var (
	// ErrUnknownAnimationKind is recoverable: the overlay renders as "none".
	ErrUnknownAnimationKind = errors.New("unknown animation kind")
	// ErrOverlayWindowEmpty marks an overlay whose start is not before its end.
	// Such an overlay never renders.
	ErrOverlayWindowEmpty = errors.New("overlay window is empty")
)

// Timing constants in seconds.
const (
	FadeSeconds       = 0.5
	SlideSeconds      = 0.4
	SlideFadeSeconds  = 0.3
	TypewriterSeconds = 1.5

	SlideDistance = 60.0 // px
)

// Window is the overlay's life on its scene's local frame axis.
type Window struct {
	Start int
	End   int
}

// Visible is an inclusive check on both ends.
func (w Window) Visible(localFrame int) bool {
	return localFrame >= w.Start && localFrame <= w.End
}

// Duration is the overlay's local duration in frames.
func (w Window) Duration() int {
	return w.End - w.Start
}

// Local converts a scene-local frame into the overlay's own frame axis.
func (w Window) Local(sceneFrame int) int {
	return sceneFrame - w.Start
}

// WindowFor computes the overlay window inside a scene of sceneFrames frames.
// Start defaults to 0 and End to the scene end.
func WindowFor(o *spec.TextOverlay, sceneFrames, fps int) (Window, error) {
	w := Window{End: sceneFrames}
	if o.Start != nil {
		n, err := frame.ToFrames(*o.Start, fps)
		if err != nil {
			return Window{}, fmt.Errorf("overlay start: %w", err)
		}
		w.Start = n
	}
	if o.End != nil {
		n, err := frame.ToFrames(*o.End, fps)
		if err != nil {
			return Window{}, fmt.Errorf("overlay end: %w", err)
		}
		w.End = n
	}
	if w.Start >= w.End {
		return w, fmt.Errorf("%w: frames [%d, %d]", ErrOverlayWindowEmpty, w.Start, w.End)
	}
	return w, nil
}

// Snapshot is the fully resolved animation state of one overlay at one frame.
type Snapshot struct {
	Opacity    float64
	TranslateX float64
	TranslateY float64
	Scale      float64

	// Typewriter overlays ignore opacity and translation.
	Typewriter    bool
	RevealedChars int
	CursorVisible bool
}

func still() Snapshot {
	return Snapshot{Opacity: 1, Scale: 1}
}

// Resolve computes the snapshot at localFrame, where localFrame is relative
// to the overlay start and localDuration is its window length in frames.
// sceneFrame is the frame relative to the owning scene; the typewriter
// cursor blinks on it so overlays in one scene blink in phase.
// An unknown kind yields the "none" snapshot together with
// ErrUnknownAnimationKind; callers may log it and keep the snapshot.
func Resolve(o *spec.TextOverlay, localFrame, localDuration, sceneFrame, fps int) (Snapshot, error) {
	if fps <= 0 {
		return Snapshot{}, fmt.Errorf("resolve animation: %w: fps %d", frame.ErrInvalidDuration, fps)
	}

	s := still()
	switch o.Animation {
	case spec.AnimationNone, "":
	case spec.AnimationFadeIn:
		s.Opacity = frame.Ramp(localFrame, 0, frames(FadeSeconds, fps), [2]float64{0, 1}, frame.ClampRight)
	case spec.AnimationFadeOut:
		s.Opacity = frame.Ramp(localFrame, localDuration-frames(FadeSeconds, fps), localDuration,
			[2]float64{1, 0}, frame.ClampLeft)
	case spec.AnimationSlideUp:
		s = slide(localFrame, fps, SlideDistance)
	case spec.AnimationSlideDown:
		s = slide(localFrame, fps, -SlideDistance)
	case spec.AnimationTypewriter:
		s.Typewriter = true
		s.RevealedChars = RevealedChars(o.Content, localFrame, fps)
		s.CursorVisible = CursorVisible(sceneFrame, fps)
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownAnimationKind, o.Animation)
	}
	return s, nil
}

func slide(localFrame, fps int, from float64) Snapshot {
	s := still()
	s.TranslateY = frame.Ramp(localFrame, 0, frames(SlideSeconds, fps), [2]float64{from, 0}, frame.ClampRight)
	s.Opacity = frame.Ramp(localFrame, 0, frames(SlideFadeSeconds, fps), [2]float64{0, 1}, frame.ClampRight)
	return s
}

// RevealedChars is the number of runes of content shown by a typewriter
// overlay. It never decreases and reaches the full length after
// TypewriterSeconds.
func RevealedChars(content string, localFrame, fps int) int {
	n := utf8.RuneCountInString(content)
	v := frame.Ramp(localFrame, 0, frames(TypewriterSeconds, fps), [2]float64{0, float64(n)}, frame.ClampRight)
	chars := int(math.Floor(v))
	return max(0, min(chars, n))
}

// CursorVisible blinks with a period of half a second, on for the first half.
func CursorVisible(sceneFrame, fps int) bool {
	period := float64(fps) / 2
	return math.Mod(float64(sceneFrame), period) < float64(fps)/4
}

// Reveal returns the first n runes of content.
func Reveal(content string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range content {
		if i == n {
			return content[:pos]
		}
		i++
	}
	return content
}

func frames(seconds float64, fps int) int {
	return frame.MustFrames(seconds, fps)
}
