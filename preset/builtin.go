package preset

import (
	"strconv"

	"github.com/gogpu/pixed"
)

var builtins = []Preset{
	texture(16),
	texture(32),
	texture(64),
	{
		Name:       "gui-background",
		Width:      176,
		Height:     166,
		Background: "#c6c6c6",
		Palette:    hexes(pixed.GUIPalette),
		Color:      pixed.SlotFill.Hex(),
		Tool:       pixed.ToolSelect.String(),
		Zoom:       2,
		MinZoom:    1,
		MaxZoom:    8,
	},
}

// texture returns the painter preset for a square texture. The view is
// sized so every resolution displays at 512 units across.
func texture(res int) Preset {
	return Preset{
		Name:    "texture-" + strconv.Itoa(res),
		Width:   res,
		Height:  res,
		Palette: hexes(pixed.DefaultPalette),
		Color:   pixed.DefaultColor.Hex(),
		Tool:    pixed.ToolPencil.String(),
		Zoom:    float64(512 / res),
		MinZoom: 1,
		MaxZoom: 64,
	}
}

func hexes(p pixed.Palette) []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}
