package viz

import "image/color"

// Palette maps class ids to display colors. Class ids beyond the palette
// wrap around.
type Palette []color.RGBA

// DefaultPalette is a fixed 16-color palette with visually distinct hues.
// Class 0 (background) renders black.
var DefaultPalette = Palette{
	{0x00, 0x00, 0x00, 0xff},
	{0xe6, 0x19, 0x4b, 0xff},
	{0x3c, 0xb4, 0x4b, 0xff},
	{0xff, 0xe1, 0x19, 0xff},
	{0x43, 0x63, 0xd8, 0xff},
	{0xf5, 0x82, 0x31, 0xff},
	{0x91, 0x1e, 0xb4, 0xff},
	{0x46, 0xf0, 0xf0, 0xff},
	{0xf0, 0x32, 0xe6, 0xff},
	{0xbc, 0xf6, 0x0c, 0xff},
	{0xfa, 0xbe, 0xbe, 0xff},
	{0x00, 0x80, 0x80, 0xff},
	{0xe6, 0xbe, 0xff, 0xff},
	{0x9a, 0x63, 0x24, 0xff},
	{0xff, 0xfa, 0xc8, 0xff},
	{0x80, 0x00, 0x00, 0xff},
}

// Color returns the display color for a class id.
func (p Palette) Color(class int64) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{A: 0xff}
	}
	if class < 0 {
		class = -class
	}
	return p[int(class)%len(p)]
}
