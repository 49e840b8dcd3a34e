package pixed

import (
	"fmt"
	"image"
	"image/png"
	"io"

	// Import decoders.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/pixed/internal/resample"
)

// Import replaces the grid with src resampled (nearest neighbor) to the
// canvas size. Pixels whose alpha is below the import threshold become
// Empty. The result is committed as one history entry; the overlay is
// left alone. Import reports false for a nil or empty image.
func (c *Canvas) Import(src image.Image) bool {
	if src == nil || src.Bounds().Empty() {
		return false
	}
	c.EndStroke()
	scaled := resample.Nearest(src, c.width, c.height)
	c.commit(sample(scaled, c.opts.importThreshold), "import")
	c.logger().Debug("image imported",
		"src", fmt.Sprintf("%dx%d", src.Bounds().Dx(), src.Bounds().Dy()),
		"threshold", c.opts.importThreshold)
	return true
}

// ImportFrom decodes a PNG, JPEG, GIF, BMP, TIFF or WebP bitmap from r
// and imports it. Decode failures wrap ErrDecode and leave the canvas
// untouched.
func (c *Canvas) ImportFrom(r io.Reader) error {
	src, format, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if !c.Import(src) {
		return fmt.Errorf("%w: empty %s image", ErrDecode, format)
	}
	return nil
}

// MaxExportSide is the largest width or height Export produces.
const MaxExportSide = 16384

// Export renders the composite without selection chrome and upscales it
// by scale using pixel duplication. A scale of 0 selects the canvas's
// export scale (4 unless WithExportScale is given). Negative scales, and
// scales that would make either side exceed MaxExportSide, return
// ErrInvalidScale.
func (c *Canvas) Export(scale int) (*image.NRGBA, error) {
	if scale == 0 {
		scale = c.opts.exportScale
	}
	if scale < 1 || scale > MaxExportSide/max(c.width, c.height) {
		return nil, fmt.Errorf("%w: %d for %dx%d", ErrInvalidScale, scale, c.width, c.height)
	}
	return resample.Upscale(c.composite(), scale), nil
}

// WritePNG encodes Export(scale) to w as PNG.
func (c *Canvas) WritePNG(w io.Writer, scale int) error {
	img, err := c.Export(scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("pixed: failed to encode PNG: %w", err)
	}
	return nil
}
