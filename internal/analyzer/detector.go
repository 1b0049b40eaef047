// Package analyzer estimates how readable overlay text is against the
// background pixels behind it.
package analyzer

import (
	"image"
	"image/color"
)

// Assessment is the result of checking one text region.
type Assessment struct {
	Rect        image.Rectangle
	Contrast    float64 // contrast ratio between text and mean background, 1..21
	EdgeDensity float64 // share of edge pixels in the region, 0..1
	Legible     bool
}

// Checker assesses text of color text drawn over rect of bg.
type Checker interface {
	Assess(bg image.Image, rect image.Rectangle, text color.Color) Assessment
}
