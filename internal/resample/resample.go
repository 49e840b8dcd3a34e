// Package resample provides the nearest-neighbor scaling used for bitmap
// import and export. No smoothing is ever applied so hard pixel edges
// survive in both directions.
package resample

import (
	"image"

	"golang.org/x/image/draw"
)

// Nearest scales src to exactly width×height with nearest-neighbor
// sampling and returns a new non-premultiplied image.
func Nearest(src image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if width <= 0 || height <= 0 || src.Bounds().Empty() {
		return dst
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Upscale enlarges src by an integer factor, duplicating every pixel
// into a factor×factor block. Factors below 1 are treated as 1.
func Upscale(src *image.NRGBA, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	if b.Empty() {
		return dst
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
