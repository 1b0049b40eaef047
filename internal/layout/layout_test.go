package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/videoforge/internal/spec"
)

func TestPlace(t *testing.T) {
	// 1000x500 frame, 200x100 box
	tests := []struct {
		pos  spec.Position
		want image.Point
	}{
		{spec.PositionCenter, image.Pt(400, 200)},
		{spec.PositionTopCenter, image.Pt(400, 25)},
		{spec.PositionBottomCenter, image.Pt(400, 360)},
		{spec.PositionTopLeft, image.Pt(50, 25)},
		{spec.PositionTopRight, image.Pt(750, 25)},
		{spec.PositionBottomLeft, image.Pt(50, 360)},
		{spec.PositionBottomRight, image.Pt(750, 360)},
	}

	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			b, err := Anchor(tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Place(1000, 500, 200, 100))
		})
	}
}

func TestAnchorUnknownFallsBack(t *testing.T) {
	b, err := Anchor("middle")
	require.ErrorIs(t, err, ErrUnknownPosition)

	want, err := Anchor(spec.PositionBottomCenter)
	require.NoError(t, err)
	assert.Equal(t, want, b)
}

func TestStyleDefaults(t *testing.T) {
	r := &Resolver{DefaultFont: "Noto Sans JP"}
	st := r.Style(&spec.TextOverlay{Content: "x"})

	assert.Equal(t, "Noto Sans JP", st.FontFamily)
	assert.Equal(t, DefaultFontSize, st.FontSize)
	assert.Equal(t, DefaultColor, st.Color)
	assert.Equal(t, 24, st.PaddingX)
	assert.Equal(t, 12, st.PaddingY)
	assert.Equal(t, 1.4, st.LineHeight)
	assert.False(t, st.HasOutline())
	assert.Empty(t, st.Background)
	assert.Zero(t, st.CornerRadius)

	var zero *Resolver
	assert.Equal(t, fallbackFontName, zero.Style(&spec.TextOverlay{}).FontFamily)
}

func TestStyleOutlineNeedsColorAndWidth(t *testing.T) {
	r := &Resolver{}
	tests := []struct {
		name  string
		color string
		width int
		want  bool
	}{
		{"both", "#000000", 3, true},
		{"no width", "#000000", 0, false},
		{"no color", "", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := spec.DefaultOverlay()
			o.BorderColor, o.BorderWidth = tt.color, tt.width
			st := r.Style(&o)
			assert.Equal(t, tt.want, st.HasOutline())
			if tt.want {
				assert.ElementsMatch(t, []Shadow{
					{-3, -3, "#000000"}, {3, -3, "#000000"}, {-3, 3, "#000000"}, {3, 3, "#000000"},
				}, st.Outline)
			}
		})
	}
}

func TestStyleBackground(t *testing.T) {
	o := spec.DefaultOverlay()
	o.BgColor = "#00000080"
	st := (&Resolver{DefaultFont: spec.DefaultFont}).Style(&o)
	assert.Equal(t, "#00000080", st.Background)
	assert.Equal(t, BackgroundRadius, st.CornerRadius)
	assert.Equal(t, spec.DefaultFont, st.FontFamily)
}
