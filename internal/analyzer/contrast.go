package analyzer

import (
	"image"
	"image/color"
	"math"
)

// ContrastChecker flags text whose color is too close to the average
// background luminance, or whose background is too busy to read against.
type ContrastChecker struct {
	MinContrast    float64 // minimum contrast ratio
	MaxEdgeDensity float64 // maximum share of edge pixels
	EdgeThreshold  float64 // Sobel gradient magnitude threshold
}

func NewContrastChecker() *ContrastChecker {
	return &ContrastChecker{
		MinContrast:    3.0,  // large-text minimum
		MaxEdgeDensity: 0.15, // roughly a photo with fine detail
		EdgeThreshold:  30.0,
	}
}

func (c *ContrastChecker) Assess(bg image.Image, rect image.Rectangle, text color.Color) Assessment {
	rect = rect.Intersect(bg.Bounds())
	a := Assessment{Rect: rect, Contrast: 21, Legible: true}
	if rect.Empty() {
		return a
	}

	a.Contrast = ContrastRatio(Luminance(text), MeanLuminance(bg, rect))

	gray := toGrayscale(bg, rect)
	a.EdgeDensity = edgeDensity(sobelEdgeDetection(gray, c.EdgeThreshold))

	a.Legible = a.Contrast >= c.MinContrast && a.EdgeDensity <= c.MaxEdgeDensity
	return a
}

// Luminance is the relative luminance of c in [0, 1].
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return 0.2126*linear(r) + 0.7152*linear(g) + 0.0722*linear(b)
}

func linear(v uint32) float64 {
	s := float64(v) / 0xffff
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ContrastRatio of two relative luminances, always >= 1.
func ContrastRatio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// MeanLuminance averages the relative luminance over rect.
func MeanLuminance(img image.Image, rect image.Rectangle) float64 {
	rect = rect.Intersect(img.Bounds())
	if rect.Empty() {
		return 0
	}
	var sum float64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			sum += Luminance(img.At(x, y))
		}
	}
	return sum / float64(rect.Dx()*rect.Dy())
}

// toGrayscale copies rect of img into a grayscale image.
func toGrayscale(img image.Image, rect image.Rectangle) *image.Gray {
	gray := image.NewGray(rect)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}

	return gray
}

// sobelEdgeDetection applies Sobel operator to detect edges
func sobelEdgeDetection(gray *image.Gray, threshold float64) *image.Gray {
	bounds := gray.Bounds()
	edges := image.NewGray(bounds)

	gx := [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	gy := [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	for y := bounds.Min.Y + 1; y < bounds.Max.Y-1; y++ {
		for x := bounds.Min.X + 1; x < bounds.Max.X-1; x++ {
			var sumX, sumY float64

			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					pixel := float64(gray.GrayAt(x+kx, y+ky).Y)
					sumX += pixel * float64(gx[ky+1][kx+1])
					sumY += pixel * float64(gy[ky+1][kx+1])
				}
			}

			if math.Sqrt(sumX*sumX+sumY*sumY) > threshold {
				edges.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	return edges
}

func edgeDensity(edges *image.Gray) float64 {
	b := edges.Bounds()
	if b.Empty() {
		return 0
	}
	n := 0
	for _, v := range edges.Pix {
		if v > 128 {
			n++
		}
	}
	return float64(n) / float64(b.Dx()*b.Dy())
}
