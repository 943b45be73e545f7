package fretboard

import (
	"github.com/jsphweid/fretdex/model"
)

// nut offset for open strings, in percent of the neck width
const OpenStringLeft = -2.0

// RenderGrid walks every (string, fret) cell and returns a marker for each
// cell whose note is claimed by at least one triad.
func RenderGrid(inst Instrument, m Membership) []model.Marker {
	var res []model.Marker
	for s := 0; s < inst.NumStrings(); s++ {
		for fret := 0; fret <= inst.Frets(); fret++ {
			cell := inst.Cell(s, fret)
			triads := m.Of(cell.Note)
			if len(triads) == 0 {
				continue
			}
			marker := NewMarker(triads)
			marker.FretCell = cell
			marker.Left = MarkerLeft(fret, inst.Frets())
			marker.Top = StringTop(s, inst.NumStrings())
			res = append(res, marker)
		}
	}
	return res
}

// NewMarker applies the color policy: one triad is solid, two are split
// in insertion order, more fall back to the overflow gray.
func NewMarker(triads []int) model.Marker {
	marker := model.Marker{Triads: triads}
	switch len(triads) {
	case 0:
		return marker
	case 1:
		c := SlotColor(triads[0])
		marker.Kind = model.MarkerSolid
		marker.Slots = []int{Slot(triads[0])}
		marker.Colors = []string{c.CSS}
		marker.Background = c.CSS
	case 2:
		c1, c2 := SlotColor(triads[0]), SlotColor(triads[1])
		marker.Kind = model.MarkerSplit
		marker.Slots = []int{Slot(triads[0]), Slot(triads[1])}
		marker.Colors = []string{c1.CSS, c2.CSS}
		marker.Background = "linear-gradient(90deg, " + c1.CSS + " 50%, " + c2.CSS + " 50%)"
		marker.Border = SplitBorder.CSS
		marker.TextColor = MarkerText.CSS
	default:
		marker.Kind = model.MarkerOverflow
		marker.Colors = []string{Overflow.CSS}
		marker.Background = Overflow.CSS
		marker.Border = OverflowBorder.CSS
		marker.TextColor = MarkerText.CSS
	}
	return marker
}

// MarkerLeft puts fretted notes halfway between fret lines and open strings
// in front of the nut.
func MarkerLeft(fret int, frets int) float64 {
	if fret == 0 {
		return OpenStringLeft
	}
	return (float64(fret) - 0.5) / float64(frets) * 100
}

// StringTop draws the highest string at the top.
func StringTop(stringIndex int, numStrings int) float64 {
	if numStrings < 2 {
		return 0
	}
	return float64(numStrings-1-stringIndex) / float64(numStrings-1) * 100
}

func FretLineLeft(fret int, frets int) float64 {
	return float64(fret) / float64(frets) * 100
}

func FretNumbers(inst Instrument) []model.FretNumber {
	frets := inst.Frets()
	res := make([]model.FretNumber, 0, frets)
	for i := 1; i <= frets; i++ {
		res = append(res, model.FretNumber{
			Number: i,
			Left:   float64(i)/float64(frets)*100 - 50/float64(frets),
		})
	}
	return res
}
