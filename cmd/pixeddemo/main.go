// Command pixeddemo renders a sample asset with the pixed editing engine.
//
// With the default gui-background preset it lays out a player inventory
// (title, 9×3 storage grid and hotbar), bakes it and writes an upscaled
// PNG. Texture presets get a filled background and a diagonal stroke.
// A layout produced by a generative tool can replace the built-in one:
//
//	pixeddemo -layout layout.json -output chest.png
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/preset"
)

func main() {
	var (
		name    = flag.String("preset", "gui-background", "built-in preset name")
		config  = flag.String("config", "", "YAML preset file (first preset is used)")
		layout  = flag.String("layout", "", "JSON layout file for GUI presets")
		scale   = flag.Int("scale", 0, "export scale (0 uses the preset's)")
		output  = flag.String("output", "pixed.png", "output file")
		verbose = flag.Bool("v", false, "log editor operations")
	)
	flag.Parse()

	if *verbose {
		pixed.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p, err := loadPreset(*name, *config)
	if err != nil {
		log.Fatalf("Failed to load preset: %v", err)
	}
	c, err := p.NewCanvas()
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	switch {
	case *layout != "":
		data, err := os.ReadFile(*layout)
		if err != nil {
			log.Fatalf("Failed to read layout: %v", err)
		}
		items, err := pixed.DecodeLayout(data)
		if err != nil {
			log.Fatalf("Failed to decode layout: %v", err)
		}
		c.ApplyLayout(items)
	case c.Width() >= 176 && c.Height() >= 166:
		drawInventory(c)
	default:
		drawTexture(c)
	}
	c.Bake()

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := c.WritePNG(f, *scale); err != nil {
		f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%s, %dx%d, %d history entries)\n", *output, p.Name, c.Width(), c.Height(), c.HistoryLen())
}

func loadPreset(name, path string) (preset.Preset, error) {
	if path == "" {
		return preset.Builtin(name)
	}
	presets, err := preset.LoadFile(path)
	if err != nil {
		return preset.Preset{}, err
	}
	if len(presets) == 0 {
		return preset.Preset{}, preset.ErrInvalidPreset
	}
	return presets[0], nil
}

func drawInventory(c *pixed.Canvas) {
	c.AddText(image.Pt(8, 6), "Inventory", image.Point{})
	c.Overlay().AddSlotGrid(image.Pt(7, 83), 9, 3)
	c.Overlay().AddSlotGrid(image.Pt(7, 141), 9, 1)
}

func drawTexture(c *pixed.Canvas) {
	c.SetTool(pixed.ToolBucket)
	c.SetColor(c.Palette().At(1))
	c.FillAt(0, 0)

	c.SetTool(pixed.ToolPencil)
	c.SetColor(pixed.DefaultColor)
	c.BeginStroke()
	span := c.Viewport().Zoom * c.Viewport().DevicePixelRatio
	for i := 0; i < c.Width(); i++ {
		c.PointerMove(pixed.Pt(float64(i)+0.5, float64(i)+0.5).Mul(span))
	}
	c.EndStroke()
}
