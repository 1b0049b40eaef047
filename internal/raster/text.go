package raster

import (
	"image"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// textMask rasterises lines with face and scales the result so that one
// line is size pixels tall. The mask is nil for empty text.
func textMask(face font.Face, text string, size float64, lineHeight float64) *image.Alpha {
	if text == "" || size <= 0 {
		return nil
	}
	lines := strings.Split(text, "\n")

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	glyphH := m.Height.Ceil()
	advance := int(math.Round(float64(glyphH) * lineHeight))

	width := 0
	for _, l := range lines {
		width = max(width, font.MeasureString(face, l).Ceil())
	}
	height := glyphH + advance*(len(lines)-1)
	if width == 0 {
		return nil
	}

	base := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{Dst: base, Src: image.Opaque, Face: face}
	for i, l := range lines {
		d.Dot = fixed.P(0, ascent+i*advance)
		d.DrawString(l)
	}

	scale := size / float64(glyphH)
	w := int(math.Round(float64(width) * scale))
	h := int(math.Round(float64(height) * scale))
	if w <= 0 || h <= 0 {
		return nil
	}
	out := image.NewAlpha(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(out, out.Bounds(), base, base.Bounds(), draw.Src, nil)
	return out
}
