package fretboard

import "image/color"

type Color struct {
	Name string
	CSS  string
	RGBA color.RGBA
}

var palette = [...]Color{
	{"orange", "orange", color.RGBA{0xff, 0xa5, 0x00, 0xff}},
	{"blue", "#3498db", color.RGBA{0x34, 0x98, 0xdb, 0xff}},
	{"green", "#2ecc40", color.RGBA{0x2e, 0xcc, 0x40, 0xff}},
	{"violet", "#9b59b6", color.RGBA{0x9b, 0x59, 0xb6, 0xff}},
	{"red", "#e74c3c", color.RGBA{0xe7, 0x4c, 0x3c, 0xff}},
	{"brown", "#a0522d", color.RGBA{0xa0, 0x52, 0x2d, 0xff}},
}

const PaletteSize = len(palette)

var (
	Overflow       = Color{"gray", "#888", color.RGBA{0x88, 0x88, 0x88, 0xff}}
	OverflowBorder = Color{"dark", "#222", color.RGBA{0x22, 0x22, 0x22, 0xff}}
	SplitBorder    = Overflow
	MarkerText     = Color{"white", "#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}}
)

// Palette returns a copy of the slot colors.
func Palette() []Color {
	res := make([]Color, PaletteSize)
	copy(res, palette[:])
	return res
}

// Slot maps a triad index onto the palette, cycling after PaletteSize.
func Slot(triadIndex int) int {
	return triadIndex % PaletteSize
}

func SlotColor(slot int) Color {
	return palette[Slot(slot)]
}

// ColorByCSS finds a palette or marker color by its css value.
func ColorByCSS(css string) (Color, bool) {
	for _, c := range palette {
		if c.CSS == css {
			return c, true
		}
	}
	for _, c := range []Color{Overflow, OverflowBorder, MarkerText} {
		if c.CSS == css {
			return c, true
		}
	}
	return Color{}, false
}
