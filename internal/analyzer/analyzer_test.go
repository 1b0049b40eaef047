package analyzer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Gray) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = c.Y
	}
	return img
}

func stripes(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/2)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio(1, 0), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(0, 1), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio(0.4, 0.4), 1e-9)

	assert.InDelta(t, 1.0, Luminance(color.White), 1e-9)
	assert.InDelta(t, 0.0, Luminance(color.Black), 1e-9)
}

func TestContrastChecker(t *testing.T) {
	c := NewContrastChecker()
	rect := image.Rect(10, 10, 90, 40)

	tests := []struct {
		name        string
		bg          image.Image
		text        color.Color
		wantLegible bool
	}{
		{"white on black", solid(100, 50, color.Gray{}), color.White, true},
		{"white on white", solid(100, 50, color.Gray{Y: 255}), color.White, false},
		{"white on light gray", solid(100, 50, color.Gray{Y: 220}), color.White, false},
		{"black on white", solid(100, 50, color.Gray{Y: 255}), color.Black, true},
		{"white on stripes", stripes(100, 50), color.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := c.Assess(tt.bg, rect, tt.text)
			assert.Equal(t, tt.wantLegible, a.Legible, "contrast %.2f edges %.2f", a.Contrast, a.EdgeDensity)
			assert.Equal(t, rect, a.Rect)
		})
	}
}

func TestAssessOutsideImage(t *testing.T) {
	a := NewContrastChecker().Assess(solid(10, 10, color.Gray{Y: 255}), image.Rect(20, 20, 30, 30), color.White)
	assert.True(t, a.Legible)
	assert.True(t, a.Rect.Empty())
}

func TestNewChecker(t *testing.T) {
	tests := []struct {
		variant string
		wantErr bool
	}{
		{"contrast", false},
		{"", false},
		{"none", false},
		{"ocr", true},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			c, err := NewChecker(tt.variant)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}

	c, _ := NewChecker("none")
	assert.True(t, c.Assess(solid(4, 4, color.Gray{Y: 255}), image.Rect(0, 0, 4, 4), color.White).Legible)
}
