// Package label draws and measures the text labels of the canvas overlay.
//
// Two kinds of faces are available:
//   - [Default] returns a crisp 7×13 bitmap face that suits pixel art
//     and needs no font data.
//   - [ParseTTF] loads a TrueType/OpenType font. Glyphs are rasterized
//     with golang.org/x/image/font/opentype and advances are measured
//     with HarfBuzz shaping from github.com/go-text/typesetting, so
//     kerning is reflected in auto-sized label boxes.
//
// Label strings coming from users or generative collaborators should be
// passed through [Normalize] before they are stored.
package label
