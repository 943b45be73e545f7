package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/pterm/pterm"
)

const cellWidth = 4

// Terminal draws the neck as a text grid, highest string on top, followed
// by the legend table.
type Terminal struct {
	W io.Writer
}

func (t Terminal) Render(v model.View) error {
	var sb strings.Builder
	sb.WriteString(gridHeader(v.Frets))

	cells := make(map[[2]int]model.Marker, len(v.Markers))
	for _, m := range v.Markers {
		cells[[2]int{m.String, m.Fret}] = m
	}

	tuning := fretboard.StandardGuitar().Strings()
	for s := v.Strings - 1; s >= 0; s-- {
		sb.WriteString(fmt.Sprintf("%-3s", tuning[s]))
		for fret := 0; fret <= v.Frets; fret++ {
			m, ok := cells[[2]int{s, fret}]
			if !ok {
				sb.WriteString(pad("-"))
			} else {
				sb.WriteString(markerText(m))
			}
			if fret == 0 {
				sb.WriteString("‖")
			}
		}
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(t.W, sb.String()); err != nil {
		return errors.Wrap(err, "could not write grid")
	}

	if v.Chromatic {
		_, err := fmt.Fprintln(t.W, "\nNo triad selected, showing all 12 notes.")
		return err
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(legendTable(v.Legend)).Srender()
	if err != nil {
		return errors.Wrap(err, "could not render legend")
	}
	_, err = fmt.Fprintf(t.W, "\n%s\n", table)
	return err
}

func gridHeader(frets int) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for fret := 0; fret <= frets; fret++ {
		sb.WriteString(pad(fmt.Sprint(fret)))
		if fret == 0 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// split markers get a trailing '+' in the second color, overflow a '*'
func markerText(m model.Marker) string {
	note := string(m.Note)
	switch m.Kind {
	case model.MarkerSolid:
		return paint(m.Colors[0], note) + strings.Repeat(" ", cellWidth-len(note))
	case model.MarkerSplit:
		return paint(m.Colors[0], note) + paint(m.Colors[1], "+") + strings.Repeat(" ", cellWidth-len(note)-1)
	default:
		return pterm.Gray(note+"*") + strings.Repeat(" ", cellWidth-len(note)-1)
	}
}

func legendTable(entries []model.LegendEntry) pterm.TableData {
	data := pterm.TableData{{"Slot", "Triad", "Color"}}
	for _, e := range entries {
		swatch := paint(e.Color, "■■")
		if e.Split {
			swatch = paint(e.SplitColor[0], "■") + paint(e.SplitColor[1], "■")
		}
		data = append(data, []string{fmt.Sprint(e.ColorSlot), e.Label, swatch})
	}
	return data
}

func paint(css string, s string) string {
	c, ok := fretboard.ColorByCSS(css)
	if !ok {
		return s
	}
	return rgb(c.RGBA).Sprint(s)
}

func rgb(c color.RGBA) pterm.RGB {
	return pterm.NewRGB(c.R, c.G, c.B)
}

func pad(s string) string {
	return fmt.Sprintf("%-*s", cellWidth, s)
}
