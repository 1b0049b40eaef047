package raster

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/ivlev/videoforge/internal/spec"
)

// fitRects returns the destination rectangle inside frame and the source
// rectangle of src to scale into it.
func fitRects(frame, src image.Rectangle, fit spec.FitMode) (dst, from image.Rectangle) {
	fw, fh := float64(frame.Dx()), float64(frame.Dy())
	sw, sh := float64(src.Dx()), float64(src.Dy())
	if sw == 0 || sh == 0 {
		return image.Rectangle{}, image.Rectangle{}
	}

	switch fit {
	case spec.FitStretch:
		return frame, src
	case spec.FitContain:
		s := min(fw/sw, fh/sh)
		w, h := int(sw*s+0.5), int(sh*s+0.5)
		x := frame.Min.X + (frame.Dx()-w)/2
		y := frame.Min.Y + (frame.Dy()-h)/2
		return image.Rect(x, y, x+w, y+h), src
	default: // cover
		s := max(fw/sw, fh/sh)
		w, h := int(fw/s+0.5), int(fh/s+0.5)
		x := src.Min.X + (src.Dx()-w)/2
		y := src.Min.Y + (src.Dy()-h)/2
		return frame, image.Rect(x, y, x+w, y+h)
	}
}

// drawFitted scales img into dst according to fit, blending with opacity.
func drawFitted(dst *image.RGBA, img image.Image, fit spec.FitMode, opacity float64) {
	to, from := fitRects(dst.Bounds(), img.Bounds(), fit)
	if to.Empty() || from.Empty() {
		return
	}
	opts := &draw.Options{}
	if opacity < 1 {
		opts.SrcMask = image.NewUniform(alphaOf(opacity))
	}
	draw.CatmullRom.Scale(dst, to, img, from, draw.Over, opts)
}
