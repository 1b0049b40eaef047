package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/videoforge/internal/spec"
)

func overlay(kind spec.Animation, content string) *spec.TextOverlay {
	o := spec.DefaultOverlay()
	o.Animation = kind
	o.Content = content
	return &o
}

func seconds(v float64) *float64 { return &v }

func TestResolveOpacity(t *testing.T) {
	tests := []struct {
		name     string
		kind     spec.Animation
		local    int
		duration int
		want     float64
	}{
		{"none", spec.AnimationNone, 7, 120, 1},
		{"fade in start", spec.AnimationFadeIn, 0, 120, 0},
		{"fade in middle", spec.AnimationFadeIn, 6, 120, 0.4},
		{"fade in end", spec.AnimationFadeIn, 15, 120, 1},
		{"fade in after", spec.AnimationFadeIn, 100, 120, 1},
		{"fade out before window", spec.AnimationFadeOut, 0, 120, 1},
		{"fade out window start", spec.AnimationFadeOut, 105, 120, 1},
		{"fade out last frame", spec.AnimationFadeOut, 120, 120, 0},
		{"slide up start", spec.AnimationSlideUp, 0, 120, 0},
		{"slide up settled", spec.AnimationSlideUp, 9, 120, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Resolve(overlay(tt.kind, "Hi"), tt.local, tt.duration, tt.local, 30)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, s.Opacity, 1e-9)
			assert.False(t, s.Typewriter)
			assert.Equal(t, 1.0, s.Scale)
		})
	}
}

func TestResolveSlideOffsets(t *testing.T) {
	up, err := Resolve(overlay(spec.AnimationSlideUp, ""), 0, 120, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, 60.0, up.TranslateY)

	down, err := Resolve(overlay(spec.AnimationSlideDown, ""), 0, 120, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, -60.0, down.TranslateY)

	half, err := Resolve(overlay(spec.AnimationSlideUp, ""), 6, 120, 6, 30)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, half.TranslateY, 1e-9)

	done, err := Resolve(overlay(spec.AnimationSlideDown, ""), 12, 120, 12, 30)
	require.NoError(t, err)
	assert.Equal(t, 0.0, done.TranslateY)
	assert.Equal(t, 1.0, done.Opacity)
}

func TestTypewriterMonotonic(t *testing.T) {
	o := overlay(spec.AnimationTypewriter, "こんにちは世界")
	prev := -1
	for f := 0; f <= 90; f++ {
		s, err := Resolve(o, f, 120, f, 30)
		require.NoError(t, err)
		require.True(t, s.Typewriter)
		require.GreaterOrEqual(t, s.RevealedChars, prev, "frame %d", f)
		prev = s.RevealedChars
		if f >= 45 {
			assert.Equal(t, 7, s.RevealedChars, "frame %d", f)
		}
	}

	s, err := Resolve(o, 0, 120, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, s.RevealedChars)
	assert.Equal(t, "こんにち", Reveal(o.Content, 4))
	assert.Equal(t, "", Reveal(o.Content, 0))
	assert.Equal(t, o.Content, Reveal(o.Content, 99))
}

func TestCursorBlink(t *testing.T) {
	// fps 30: period 15 frames, on while frame mod 15 < 7.5
	assert.True(t, CursorVisible(0, 30))
	assert.True(t, CursorVisible(7, 30))
	assert.False(t, CursorVisible(8, 30))
	assert.False(t, CursorVisible(14, 30))
	assert.True(t, CursorVisible(15, 30))
}

func TestCursorBlinkFollowsSceneFrame(t *testing.T) {
	// overlay starting 3 frames into the scene, scene frame 15
	o := overlay(spec.AnimationTypewriter, "Hi")
	s, err := Resolve(o, 12, 120, 15, 30)
	require.NoError(t, err)
	assert.True(t, s.CursorVisible)

	s, err = Resolve(o, 8, 120, 11, 30)
	require.NoError(t, err)
	assert.False(t, s.CursorVisible)
	assert.Equal(t, RevealedChars(o.Content, 8, 30), s.RevealedChars)
}

func TestResolveUnknownKindDegrades(t *testing.T) {
	s, err := Resolve(overlay("spin", "x"), 3, 120, 3, 30)
	require.ErrorIs(t, err, ErrUnknownAnimationKind)
	assert.Equal(t, 1.0, s.Opacity)
	assert.Equal(t, 0.0, s.TranslateY)
}

func TestResolveLowFPSSteps(t *testing.T) {
	// at 2 fps the 0.3 s fade rounds to 1 frame and the 0.4 s slide to 1 frame
	s, err := Resolve(overlay(spec.AnimationSlideUp, ""), 0, 8, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Opacity)

	// at 1 fps the 0.4 s slide rounds to 0 frames: a step at frame 0
	s, err = Resolve(overlay(spec.AnimationSlideUp, ""), 0, 4, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.TranslateY)
	assert.Equal(t, 1.0, s.Opacity)
}

func TestWindowFor(t *testing.T) {
	o := overlay(spec.AnimationNone, "x")
	o.Start, o.End = seconds(1), seconds(2)

	w, err := WindowFor(o, 120, 30)
	require.NoError(t, err)
	assert.Equal(t, Window{Start: 30, End: 60}, w)

	for f := 0; f < 120; f++ {
		want := f >= 30 && f <= 60
		assert.Equal(t, want, w.Visible(f), "frame %d", f)
	}
}

func TestWindowDefaultsToScene(t *testing.T) {
	w, err := WindowFor(overlay(spec.AnimationFadeIn, "Hi"), 120, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 120, w.End)
	assert.True(t, w.Visible(119))
	assert.Equal(t, 5, w.Local(5))
}

func TestWindowEmpty(t *testing.T) {
	o := overlay(spec.AnimationNone, "x")
	o.Start, o.End = seconds(2), seconds(2)
	_, err := WindowFor(o, 120, 30)
	require.ErrorIs(t, err, ErrOverlayWindowEmpty)

	o.Start, o.End = seconds(5), nil
	_, err = WindowFor(o, 120, 30)
	require.ErrorIs(t, err, ErrOverlayWindowEmpty)
}
