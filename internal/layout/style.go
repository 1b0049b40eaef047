package layout

import "github.com/ivlev/videoforge/internal/spec"

const (
	DefaultFontSize  = 48
	DefaultColor     = "#FFFFFF"
	PaddingX         = 24
	PaddingY         = 12
	LineHeight       = 1.4
	BackgroundRadius = 8
	fallbackFontName = "sans-serif"
)

// Shadow is one offset copy of the text drawn behind it.
type Shadow struct {
	DX, DY int
	Color  string
}

// TextStyle is everything a compositor needs to draw an overlay box.
type TextStyle struct {
	FontFamily string
	FontSize   int
	Color      string
	LineHeight float64
	PaddingX   int
	PaddingY   int

	// Outline is four shadow copies at +-border_width on both axes.
	Outline []Shadow

	// Background is empty when no fill is drawn.
	Background   string
	CornerRadius int
}

// HasOutline reports whether an outline is drawn.
func (s TextStyle) HasOutline() bool {
	return len(s.Outline) > 0
}

// Resolver builds text styles. DefaultFont replaces an unset font family.
type Resolver struct {
	DefaultFont string
}

func (r *Resolver) Style(o *spec.TextOverlay) TextStyle {
	st := TextStyle{
		FontFamily: o.Font,
		FontSize:   o.FontSize,
		Color:      o.Color,
		LineHeight: LineHeight,
		PaddingX:   PaddingX,
		PaddingY:   PaddingY,
	}
	if st.FontFamily == "" {
		st.FontFamily = r.defaultFont()
	}
	if st.FontSize <= 0 {
		st.FontSize = DefaultFontSize
	}
	if st.Color == "" {
		st.Color = DefaultColor
	}

	if o.BorderColor != "" && o.BorderWidth > 0 {
		w := o.BorderWidth
		st.Outline = []Shadow{
			{DX: -w, DY: -w, Color: o.BorderColor},
			{DX: w, DY: -w, Color: o.BorderColor},
			{DX: -w, DY: w, Color: o.BorderColor},
			{DX: w, DY: w, Color: o.BorderColor},
		}
	}
	if o.BgColor != "" {
		st.Background = o.BgColor
		st.CornerRadius = BackgroundRadius
	}
	return st
}

func (r *Resolver) defaultFont() string {
	if r != nil && r.DefaultFont != "" {
		return r.DefaultFont
	}
	return fallbackFontName
}
