package pixed

import (
	"errors"
	"image"
	"testing"
)

func TestDecodeLayout(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []LayoutItem
	}{
		{
			name: "object",
			in:   `{"elements":[{"type":"slot","x":7,"y":83},{"type":"text","x":8,"y":6,"text":"Chest"}]}`,
			want: []LayoutItem{{Kind: KindSlot, X: 7, Y: 83}, {Kind: KindText, X: 8, Y: 6, Text: "Chest"}},
		},
		{
			name: "bare array",
			in:   `[{"type":"slot","x":1,"y":2}]`,
			want: []LayoutItem{{Kind: KindSlot, X: 1, Y: 2}},
		},
		{
			name: "fenced",
			in:   "```json\n[{\"type\":\"slot\",\"x\":1,\"y\":2}]\n```",
			want: []LayoutItem{{Kind: KindSlot, X: 1, Y: 2}},
		},
		{
			name: "out of bounds tolerated",
			in:   `[{"type":"slot","x":-40,"y":9000}]`,
			want: []LayoutItem{{Kind: KindSlot, X: -40, Y: 9000}},
		},
		{
			name: "fractional floors",
			in:   `[{"type":"slot","x":3.7,"y":-0.5}]`,
			want: []LayoutItem{{Kind: KindSlot, X: 3, Y: -1}},
		},
		{
			name: "text on slot ignored",
			in:   `[{"type":"slot","x":0,"y":0,"text":"nope"}]`,
			want: []LayoutItem{{Kind: KindSlot}},
		},
		{
			name: "bad items dropped",
			in: `[{"type":"slot","x":1},
			      {"x":1,"y":1},
			      {"type":"button","x":1,"y":1},
			      {"type":"slot","x":"1","y":1},
			      {"type":"slot","x":1e300,"y":1},
			      42,
			      {"type":"text","x":5,"y":5}]`,
			want: []LayoutItem{{Kind: KindText, X: 5, Y: 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLayout([]byte(tt.in))
			if err != nil {
				t.Fatalf("DecodeLayout: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d items %+v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("item %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecodeLayout_Malformed(t *testing.T) {
	for _, in := range []string{
		``,
		`not json`,
		`{"elements":[]}`,
		`{"other":1}`,
		`[{"type":"slot"}]`,
		`"slot"`,
	} {
		if _, err := DecodeLayout([]byte(in)); !errors.Is(err, ErrMalformedLayout) {
			t.Errorf("DecodeLayout(%q) error = %v, want ErrMalformedLayout", in, err)
		}
	}
}

func TestApplyLayout(t *testing.T) {
	c := newTestCanvas(t, 176, 166, WithTool(ToolSelect))
	old := c.AddElement(KindSlot, image.Pt(0, 0))

	n := c.ApplyLayout([]LayoutItem{
		{Kind: KindSlot, X: 7, Y: 83},
		{Kind: KindText, X: 8, Y: 6},
		{Kind: KindText, X: 8, Y: 20, Text: "A rather long inventory title"},
		{Kind: KindSlot, X: 500, Y: -30},
	})
	if n != 4 || c.Overlay().Len() != 4 {
		t.Fatalf("ApplyLayout = %d, overlay Len %d; want 4", n, c.Overlay().Len())
	}
	if _, ok := c.Overlay().Get(old); ok {
		t.Error("ApplyLayout should replace the existing overlay")
	}
	if _, ok := c.Overlay().Selected(); ok {
		t.Error("ApplyLayout should leave nothing selected")
	}
	if c.HistoryLen() != 1 {
		t.Error("ApplyLayout must not touch the grid history")
	}

	els := c.Overlay().Elements()
	title := els[1].(Text)
	wantH := max(LayoutTextHeight, c.Face().Height())
	if title.Label != LayoutTextLabel || title.W != LayoutTextWidth || title.H != wantH {
		t.Errorf("default title = %+v", title)
	}
	long := els[2].(Text)
	if long.W <= LayoutTextWidth {
		t.Errorf("long label box width = %d, want wider than %d", long.W, LayoutTextWidth)
	}
	if p := els[3].Position(); p != image.Pt(500, -30) {
		t.Errorf("out-of-range slot moved to %v", p)
	}

	// Nothing to apply: overlay untouched.
	if c.ApplyLayout(nil) != 0 || c.Overlay().Len() != 4 {
		t.Error("ApplyLayout(nil) should be a no-op")
	}
}

func TestDecodePixelList(t *testing.T) {
	for _, in := range []string{
		`{"pixels":["#fff","transparent"]}`,
		`["#fff","transparent"]`,
		"```\n{\"pixels\":[\"#fff\",\"transparent\"]}\n```",
	} {
		got, err := DecodePixelList([]byte(in))
		if err != nil {
			t.Fatalf("DecodePixelList(%q): %v", in, err)
		}
		if len(got) != 2 || got[0] != "#fff" || got[1] != "transparent" {
			t.Errorf("DecodePixelList(%q) = %v", in, got)
		}
	}
	for _, in := range []string{`{"colors":[]}`, `[1,2]`, `nope`} {
		if _, err := DecodePixelList([]byte(in)); !errors.Is(err, ErrMalformedLayout) {
			t.Errorf("DecodePixelList(%q) error = %v, want ErrMalformedLayout", in, err)
		}
	}
}

func TestApplyPixelList(t *testing.T) {
	c := newTestCanvas(t, 2, 2)

	if !c.ApplyPixelList([]string{"#ff0000", "not-a-color", "rgb(0, 0, 255)"}) {
		t.Fatal("ApplyPixelList failed")
	}
	g := c.Grid()
	want := []Cell{RGB(255, 0, 0), Empty, RGB(0, 0, 255), Empty}
	for i, w := range want {
		if g.At(i) != w {
			t.Errorf("cell %d = %v, want %v", i, g.At(i), w)
		}
	}
	if c.HistoryLen() != 2 {
		t.Errorf("HistoryLen() = %d, want 2", c.HistoryLen())
	}

	c.ApplyPixelList([]string{"#111", "#222", "#333", "#444", "#555", "#666"})
	if c.Grid().Len() != 4 || c.Grid().At(3) != MustParseCell("#444") {
		t.Error("long pixel list should be truncated to the grid")
	}

	if c.ApplyPixelList(nil) {
		t.Error("ApplyPixelList(nil) should report false")
	}
}
