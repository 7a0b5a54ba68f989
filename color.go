package gif

import (
	"fmt"
	"io"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a 24-bit RGB color, as stored in a color table.
type Color struct {
	R, G, B byte
}

// RGBA implements image/color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Hex returns the color in "#rrggbb" notation.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// String implements Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseHexColor parses "#rrggbb" or "#rgb".
func ParseHexColor(s string) (Color, error) {
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, FormatError(fmt.Sprintf("color %q", s))
	}
	r, g, b := cc.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// ColorByName returns the SVG 1.1 named color, e.g. "cornflowerblue".
// The lookup is case-insensitive.
func ColorByName(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B}, true
}

// ColorTableLen returns the number of entries of a color table whose
// packed size value is size, that is 2^(size+1). Only the low 3 bits of
// size are used.
func ColorTableLen(size byte) int {
	return 1 << ((size & maxColorTableSize) + 1)
}

// ColorTable is a global or local color table.
type ColorTable []Color

// MarshalBinary implements encoding.BinaryMarshaler.
func (t ColorTable) MarshalBinary() ([]byte, error) {
	data := make([]byte, len(t)*colorLen)
	for i, c := range t {
		data[i*colorLen] = c.R
		data[i*colorLen+1] = c.G
		data[i*colorLen+2] = c.B
	}
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The table takes
// as many entries as data holds, which must be a multiple of 3.
func (t *ColorTable) UnmarshalBinary(data []byte) error {
	if len(data)%colorLen != 0 {
		return FormatError(fmt.Sprintf("color table length %d is not a multiple of %d", len(data), colorLen))
	}
	tbl := make(ColorTable, len(data)/colorLen)
	for i := range tbl {
		tbl[i] = Color{R: data[i*colorLen], G: data[i*colorLen+1], B: data[i*colorLen+2]}
	}
	*t = tbl
	return nil
}

// ReadColorTable reads a color table of ColorTableLen(size) entries.
func ReadColorTable(r io.Reader, size byte) (ColorTable, error) {
	p := make([]byte, ColorTableLen(size)*colorLen)
	if err := readFull(r, p, "color table"); err != nil {
		return nil, err
	}
	var t ColorTable
	err := t.UnmarshalBinary(p)
	return t, err
}
