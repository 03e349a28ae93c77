// Package variant renders logo image variants: scaled, rotated and composed
// onto either a solid background or a transparent padded canvas.
package variant

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// DefaultTargetSize is the edge length of generated dataset images.
const DefaultTargetSize = 1024

// Backgrounds maps each logo color category to its canvas fill.
var Backgrounds = map[string]color.NRGBA{
	"white": {255, 255, 255, 255},
	"black": {0, 0, 0, 255},
	"gray":  {128, 128, 128, 255},
}

var transparent = color.NRGBA{}

// RenderOnBackground scales the logo to target*scale, centers it on a solid
// square background, and rotates the whole canvas. Rotation keeps the canvas
// size fixed: the rotated image is cropped back to target x target with the
// background color filling the corners.
func RenderOnBackground(logo image.Image, scale float64, bg color.Color, target, rotation int) *image.NRGBA {
	logoSize := int(float64(target) * scale)
	resized := imaging.Resize(logo, logoSize, logoSize, imaging.Lanczos)

	canvas := imaging.New(target, target, bg)
	canvas = imaging.OverlayCenter(canvas, resized, 1.0)

	if rotation != 0 {
		rotated := imaging.Rotate(canvas, float64(rotation), bg)
		canvas = imaging.CropCenter(rotated, target, target)
	}
	return canvas
}

// RenderTransparent scales the logo, centers it on a transparent square
// canvas sized to the scaled image's diagonal so rotation never clips,
// rotates, crops to the opaque bounding box, and re-centers the result on a
// square canvas with the given padding on every side.
func RenderTransparent(logo image.Image, scale float64, rotation, padding int) *image.NRGBA {
	img := imaging.Clone(logo)
	if scale != 1.0 {
		w := int(float64(img.Bounds().Dx()) * scale)
		h := int(float64(img.Bounds().Dy()) * scale)
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	diagonal := int(math.Sqrt(float64(w*w+h*h))) + 20

	canvas := imaging.New(diagonal, diagonal, transparent)
	canvas = imaging.PasteCenter(canvas, img)

	if rotation != 0 {
		rotated := imaging.Rotate(canvas, float64(rotation), transparent)
		canvas = imaging.CropCenter(rotated, diagonal, diagonal)
	}

	if bbox, ok := opaqueBounds(canvas); ok {
		canvas = imaging.Crop(canvas, bbox)
	}

	maxDim := canvas.Bounds().Dx()
	if canvas.Bounds().Dy() > maxDim {
		maxDim = canvas.Bounds().Dy()
	}
	final := imaging.New(maxDim+2*padding, maxDim+2*padding, transparent)
	return imaging.PasteCenter(final, canvas)
}

// PadTransparent centers the logo unchanged on a transparent canvas with the
// given padding on every side. Used for the fixed base variants.
func PadTransparent(logo image.Image, padding int) *image.NRGBA {
	b := logo.Bounds()
	canvas := imaging.New(b.Dx()+2*padding, b.Dy()+2*padding, transparent)
	return imaging.PasteCenter(canvas, logo)
}

// opaqueBounds returns the bounding box of pixels with non-zero alpha.
// ok is false when the image is fully transparent.
func opaqueBounds(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] != 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
