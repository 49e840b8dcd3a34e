// Package preset describes editor configurations (canvas size, palette,
// starting tool and zoom range) as YAML and turns them into canvases.
//
// Built-in presets cover the texture painter (texture-16, texture-32,
// texture-64) and the GUI background designer (gui-background).
//
//	p, _ := preset.Builtin("gui-background")
//	c, err := p.NewCanvas()
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/pixed"
)

var (
	// ErrInvalidPreset is returned when a preset fails validation.
	ErrInvalidPreset = errors.New("preset: invalid preset")

	// ErrUnknownPreset is returned by Builtin for an unknown name.
	ErrUnknownPreset = errors.New("preset: unknown preset")
)

// MaxSide bounds preset canvas dimensions.
const MaxSide = pixed.MaxSide

// Preset is one editor configuration. Zero values fall back to the
// canvas defaults.
type Preset struct {
	Name            string   `yaml:"name"`
	Width           int      `yaml:"width"`
	Height          int      `yaml:"height"`
	Background      string   `yaml:"background,omitempty"`
	Palette         []string `yaml:"palette,omitempty"`
	Color           string   `yaml:"color,omitempty"`
	Tool            string   `yaml:"tool,omitempty"`
	BrushSize       int      `yaml:"brush_size,omitempty"`
	Zoom            float64  `yaml:"zoom,omitempty"`
	MinZoom         float64  `yaml:"min_zoom,omitempty"`
	MaxZoom         float64  `yaml:"max_zoom,omitempty"`
	HistoryCapacity int      `yaml:"history_capacity,omitempty"`
	ExportScale     int      `yaml:"export_scale,omitempty"`
}

// Parse decodes and validates a single preset document.
func Parse(data []byte) (Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Load decodes every document of a multi-document YAML stream. Each
// document is one preset; the first invalid one stops loading.
func Load(r io.Reader) ([]Preset, error) {
	dec := yaml.NewDecoder(r)
	var out []Preset
	for {
		var p Preset
		err := dec.Decode(&p)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrInvalidPreset, len(out)+1, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("document %d: %w", len(out)+1, err)
		}
		out = append(out, p)
	}
}

// LoadFile reads presets from a YAML file.
func LoadFile(path string) ([]Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("preset: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Encode writes presets to w as a multi-document YAML stream that Load
// reads back.
func Encode(w io.Writer, presets ...Preset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, p := range presets {
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("preset: encode %s: %w", p.Name, err)
		}
	}
	return enc.Close()
}

// Validate checks sizes, colors, tool name and zoom range.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidPreset)
	}
	if p.Width <= 0 || p.Height <= 0 || p.Width > MaxSide || p.Height > MaxSide {
		return fmt.Errorf("%w: %s: size %dx%d", ErrInvalidPreset, p.Name, p.Width, p.Height)
	}
	if _, err := p.options(); err != nil {
		return err
	}
	return nil
}

// Options converts the preset into canvas options.
func (p Preset) Options() ([]pixed.CanvasOption, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.options()
}

func (p Preset) options() ([]pixed.CanvasOption, error) {
	var opts []pixed.CanvasOption
	invalid := func(field string, err error) error {
		return fmt.Errorf("%w: %s: %s: %w", ErrInvalidPreset, p.Name, field, err)
	}

	if p.Background != "" {
		bg, err := pixed.ParseCell(p.Background)
		if err != nil {
			return nil, invalid("background", err)
		}
		opts = append(opts, pixed.WithBackground(bg))
	}
	if len(p.Palette) > 0 {
		pal := make(pixed.Palette, 0, len(p.Palette))
		for _, s := range p.Palette {
			c, err := pixed.ParseCell(s)
			if err != nil {
				return nil, invalid("palette", err)
			}
			pal = append(pal, c)
		}
		opts = append(opts, pixed.WithPalette(pal))
	}
	if p.Color != "" {
		c, err := pixed.ParseCell(p.Color)
		if err != nil {
			return nil, invalid("color", err)
		}
		if c.IsEmpty() {
			return nil, invalid("color", errors.New("active color cannot be transparent"))
		}
		opts = append(opts, pixed.WithColor(c))
	}
	if p.Tool != "" {
		t, ok := pixed.ParseTool(p.Tool)
		if !ok {
			return nil, invalid("tool", fmt.Errorf("unknown tool %q", p.Tool))
		}
		opts = append(opts, pixed.WithTool(t))
	}
	if p.BrushSize < 0 || p.HistoryCapacity < 0 || p.ExportScale < 0 {
		return nil, invalid("limits", errors.New("negative brush size, history capacity or export scale"))
	}
	if p.BrushSize > 0 {
		opts = append(opts, pixed.WithBrushSize(p.BrushSize))
	}
	if p.HistoryCapacity > 0 {
		opts = append(opts, pixed.WithHistoryCapacity(p.HistoryCapacity))
	}
	if p.ExportScale > 0 {
		opts = append(opts, pixed.WithExportScale(p.ExportScale))
	}

	if p.MinZoom != 0 || p.MaxZoom != 0 {
		if !(p.MinZoom > 0) || p.MaxZoom < p.MinZoom {
			return nil, invalid("zoom", fmt.Errorf("range [%v, %v]", p.MinZoom, p.MaxZoom))
		}
		opts = append(opts, pixed.WithZoomRange(p.MinZoom, p.MaxZoom))
	}
	if p.Zoom < 0 {
		return nil, invalid("zoom", fmt.Errorf("%v", p.Zoom))
	}
	if p.Zoom > 0 {
		opts = append(opts, pixed.WithViewport(pixed.Viewport{Zoom: p.Zoom, DevicePixelRatio: 1}))
	}
	return opts, nil
}

// NewCanvas creates a canvas configured by the preset. Extra options are
// applied after the preset's own.
func (p Preset) NewCanvas(extra ...pixed.CanvasOption) (*pixed.Canvas, error) {
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	return pixed.NewCanvas(p.Width, p.Height, append(opts, extra...)...)
}

// Builtin returns a copy of the named built-in preset.
func Builtin(name string) (Preset, error) {
	for _, p := range builtins {
		if p.Name == name {
			p.Palette = slices.Clone(p.Palette)
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Names lists the built-in presets in declaration order.
func Names() []string {
	names := make([]string, len(builtins))
	for i, p := range builtins {
		names[i] = p.Name
	}
	return names
}
