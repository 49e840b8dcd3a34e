package pixed

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestImport_Threshold(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 200, A: 9})
	src.SetNRGBA(2, 0, color.NRGBA{B: 200, A: 10})

	c := newTestCanvas(t, 3, 1)
	if !c.Import(src) {
		t.Fatal("Import failed")
	}
	g := c.Grid()
	if g.At(0) != RGB(200, 0, 0) {
		t.Errorf("opaque pixel = %v", g.At(0))
	}
	if g.At(1) != Empty {
		t.Errorf("alpha 9 pixel = %v, want Empty", g.At(1))
	}
	if g.At(2) != RGB(0, 0, 200) {
		t.Errorf("alpha 10 pixel = %v, want opaque", g.At(2))
	}
	if c.HistoryLen() != 2 {
		t.Errorf("HistoryLen() = %d, want 2", c.HistoryLen())
	}
}

func TestImport_CustomThreshold(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 100})

	c := newTestCanvas(t, 1, 1, WithImportThreshold(128))
	c.Import(src)
	if c.Grid().At(0) != Empty {
		t.Errorf("alpha 100 below threshold 128 imported as %v", c.Grid().At(0))
	}
}

func TestImport_ResamplesNearest(t *testing.T) {
	// 2×2 quadrants scaled up to 4×4.
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	colors := []color.NRGBA{
		{R: 255, A: 255}, {G: 255, A: 255},
		{B: 255, A: 255}, {R: 255, G: 255, A: 255},
	}
	for i, col := range colors {
		src.SetNRGBA(i%2, i/2, col)
	}

	c := newTestCanvas(t, 4, 4)
	c.Import(src)
	g := c.Grid()
	if g.Len() != 16 {
		t.Fatalf("grid has %d cells", g.Len())
	}
	checks := []struct {
		x, y int
		want Cell
	}{
		{0, 0, RGB(255, 0, 0)},
		{1, 1, RGB(255, 0, 0)},
		{3, 0, RGB(0, 255, 0)},
		{0, 3, RGB(0, 0, 255)},
		{3, 3, RGB(255, 255, 0)},
	}
	for _, ck := range checks {
		if got := g.CellAt(ck.x, ck.y); got != ck.want {
			t.Errorf("cell (%d,%d) = %v, want %v", ck.x, ck.y, got, ck.want)
		}
	}
}

func TestImport_Rejects(t *testing.T) {
	c := newTestCanvas(t, 4, 4)
	if c.Import(nil) {
		t.Error("Import(nil) should report false")
	}
	if c.Import(image.NewNRGBA(image.Rect(0, 0, 0, 0))) {
		t.Error("Import(empty) should report false")
	}
	if c.HistoryLen() != 1 {
		t.Error("rejected import committed")
	}
}

func TestImportFrom_Formats(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}

	tests := []struct {
		name   string
		encode func(*bytes.Buffer) error
	}{
		{"png", func(b *bytes.Buffer) error { return png.Encode(b, src) }},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }},
		{"tiff", func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}
			c := newTestCanvas(t, 4, 4)
			if err := c.ImportFrom(&buf); err != nil {
				t.Fatalf("ImportFrom: %v", err)
			}
			if n := c.Grid().Count(RGB(0xff, 0xff, 0xff)); n != 16 {
				t.Errorf("imported %d white cells, want 16", n)
			}
		})
	}
}

func TestImportFrom_Garbage(t *testing.T) {
	c := newTestCanvas(t, 4, 4)
	err := c.ImportFrom(bytes.NewReader([]byte("definitely not an image")))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
	if c.HistoryLen() != 1 {
		t.Error("failed import committed")
	}
}

func TestExport_Upscale(t *testing.T) {
	red := RGB(0xff, 0, 0)
	c := newTestCanvas(t, 2, 2)
	c.Commit(c.Grid().SetAt(1, 0, red))

	img, err := c.Export(0)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Fatalf("Bounds() = %v, want 8x8", img.Bounds())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := color.NRGBA{}
			if x >= 4 && y < 4 {
				want = red.NRGBA()
			}
			if got := img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	if img, _ := c.Export(1); img.Bounds().Dx() != 2 {
		t.Errorf("Export(1) width = %d, want 2", img.Bounds().Dx())
	}
	if _, err := c.Export(-2); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("Export(-2) error = %v, want ErrInvalidScale", err)
	}
}

func TestExport_ScaleLimit(t *testing.T) {
	c := newTestCanvas(t, 16, 8)
	for _, scale := range []int{1 << 30, math.MaxInt, MaxExportSide/16 + 1} {
		if _, err := c.Export(scale); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("Export(%d) error = %v, want ErrInvalidScale", scale, err)
		}
	}

	wide := newTestCanvas(t, MaxSide, 1, WithExportScale(MaxExportSide/MaxSide+1))
	if _, err := wide.Export(0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("Export(0) error = %v, want ErrInvalidScale", err)
	}
	img, err := wide.Export(MaxExportSide / MaxSide)
	if err != nil {
		t.Fatalf("Export(%d): %v", MaxExportSide/MaxSide, err)
	}
	if img.Bounds().Dx() != MaxExportSide {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), MaxExportSide)
	}
}

func TestExport_NoSelectionChrome(t *testing.T) {
	c := newTestCanvas(t, 40, 40, WithTool(ToolSelect), WithExportScale(1))
	c.AddElement(KindSlot, image.Pt(10, 10))

	img, err := c.Export(0)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got := img.NRGBAAt(9, 9); got.A != 0 {
		t.Errorf("selection outline exported: %v", got)
	}
	if got := img.NRGBAAt(10, 10); got != SlotShadow.NRGBA() {
		t.Errorf("slot missing from export: %v", got)
	}
}

func TestWritePNG_RoundTrip(t *testing.T) {
	c := newTestCanvas(t, 3, 3, WithTool(ToolBucket), WithColor(RGB(1, 2, 3)))
	c.FillAt(0, 0)

	var buf bytes.Buffer
	if err := c.WritePNG(&buf, 2); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 6 {
		t.Errorf("decoded size = %v, want 6x6", img.Bounds())
	}

	back := newTestCanvas(t, 3, 3)
	back.Import(img)
	if !back.Grid().Equal(c.Grid()) {
		t.Error("re-importing the export should reproduce the grid")
	}

	if err := c.WritePNG(&buf, -1); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("WritePNG(-1) error = %v, want ErrInvalidScale", err)
	}
}
