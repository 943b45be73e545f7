package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// base geometry, before scaling to Width
const (
	fretWidth    = 40
	stringGap    = 30
	marginLeft   = 60
	marginRight  = 30
	marginTop    = 40
	legendHeight = 50
	markerRadius = 11
	ringWidth    = 2
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	woodColor  = color.RGBA{0x33, 0x33, 0x33, 0xff}
	fretColor  = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	labelColor = color.RGBA{0x44, 0x44, 0x44, 0xff}
)

// PNG rasterizes the neck, markers and legend. Width 0 keeps the base size.
type PNG struct {
	W     io.Writer
	Width int
}

func (p PNG) Render(v model.View) error {
	img := Rasterize(v)
	var out image.Image = img
	if p.Width > 0 && p.Width != img.Bounds().Dx() {
		out = scale(img, p.Width)
	}
	if err := png.Encode(p.W, out); err != nil {
		return errors.Wrap(err, "could not encode png")
	}
	return nil
}

type neck struct {
	x0, y0, w, h int
}

func newNeck(v model.View) neck {
	return neck{
		x0: marginLeft,
		y0: marginTop,
		w:  v.Frets * fretWidth,
		h:  (v.Strings - 1) * stringGap,
	}
}

func (n neck) at(left, top float64) image.Point {
	return image.Pt(n.x0+int(left/100*float64(n.w)+0.5), n.y0+int(top/100*float64(n.h)+0.5))
}

func Rasterize(v model.View) *image.RGBA {
	n := newNeck(v)
	width := n.x0 + n.w + marginRight
	height := n.y0 + n.h + marginTop + legendHeight
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	// nut, then fret lines
	fill(img, image.Rect(n.x0-3, n.y0, n.x0+3, n.y0+n.h+1), woodColor)
	for fret := 1; fret <= v.Frets; fret++ {
		p := n.at(fretboard.FretLineLeft(fret, v.Frets), 0)
		fill(img, image.Rect(p.X-1, n.y0, p.X+1, n.y0+n.h+1), fretColor)
	}
	for s := 0; s < v.Strings; s++ {
		p := n.at(0, fretboard.StringTop(s, v.Strings))
		thickness := 1 + (v.Strings-1-s)/2
		fill(img, image.Rect(n.x0, p.Y, n.x0+n.w, p.Y+thickness), woodColor)
	}

	for _, num := range v.FretNumbers {
		p := n.at(num.Left, 0)
		drawText(img, p.X, marginTop/2, labelColor, strconv.Itoa(num.Number))
	}

	for _, m := range v.Markers {
		drawMarker(img, n.at(m.Left, m.Top), m)
	}

	drawLegend(img, v, n.y0+n.h+marginTop)
	return img
}

func drawMarker(img *image.RGBA, c image.Point, m model.Marker) {
	var left, right, ring color.RGBA
	switch m.Kind {
	case model.MarkerSolid:
		left = cssColor(m.Colors[0])
		right, ring = left, left
	case model.MarkerSplit:
		left, right = cssColor(m.Colors[0]), cssColor(m.Colors[1])
		ring = fretboard.SplitBorder.RGBA
	default:
		left = fretboard.Overflow.RGBA
		right = left
		ring = fretboard.OverflowBorder.RGBA
	}
	disc(img, c, markerRadius, left, right, ring)
	drawText(img, c.X, c.Y, fretboard.MarkerText.RGBA, string(m.Note))
}

func drawLegend(img *image.RGBA, v model.View, y int) {
	x := marginLeft
	if v.Chromatic {
		drawTextLeft(img, x, y, labelColor, "No triad selected: all 12 notes")
		return
	}
	for _, e := range v.Legend {
		left := cssColor(e.Color)
		right := left
		if e.Split {
			left, right = cssColor(e.SplitColor[0]), cssColor(e.SplitColor[1])
		}
		disc(img, image.Pt(x+8, y), 8, left, right, left)
		x += 20
		drawTextLeft(img, x, y, labelColor, e.Label)
		x += font.MeasureString(basicfont.Face7x13, e.Label).Ceil() + 16
	}
}

// disc fills a circle, left half and right half separately, with a ring.
func disc(img *image.RGBA, c image.Point, r int, left, right, ring color.RGBA) {
	inner := (r - ringWidth) * (r - ringWidth)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d > r*r {
				continue
			}
			col := left
			switch {
			case d > inner:
				col = ring
			case dx >= 0:
				col = right
			}
			img.SetRGBA(c.X+dx, c.Y+dy, col)
		}
	}
}

func drawText(img *image.RGBA, cx, cy int, col color.Color, s string) {
	w := font.MeasureString(basicfont.Face7x13, s).Ceil()
	drawTextLeft(img, cx-w/2, cy, col, s)
}

// y is the vertical center of the text line
func drawTextLeft(img *image.RGBA, x, y int, col color.Color, s string) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	baseline := y - metrics.Height.Ceil()/2 + metrics.Ascent.Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{col},
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

func fill(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r, &image.Uniform{col}, image.Point{}, draw.Src)
}

func scale(src *image.RGBA, width int) *image.RGBA {
	b := src.Bounds()
	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func cssColor(css string) color.RGBA {
	c, ok := fretboard.ColorByCSS(css)
	if !ok {
		return fretboard.Overflow.RGBA
	}
	return c.RGBA
}
