package legend

import (
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
)

// Build returns one entry per selection slot, in selection order. A
// (root, quality) selected exactly twice gets a split swatch made of both
// slots' colors on each of its entries.
func Build(sel model.Selection) []model.LegendEntry {
	groups := make(map[model.SelectionItem][]int)
	for i, item := range sel {
		groups[item] = append(groups[item], i)
	}

	res := make([]model.LegendEntry, 0, len(sel))
	for i, item := range sel {
		c := fretboard.SlotColor(i)
		entry := model.LegendEntry{
			Label:     theory.Label(item),
			ColorSlot: fretboard.Slot(i),
			Color:     c.CSS,
		}
		if group := groups[item]; len(group) == 2 {
			entry.Split = true
			entry.SplitSlots = []int{fretboard.Slot(group[0]), fretboard.Slot(group[1])}
			entry.SplitColor = []string{
				fretboard.SlotColor(group[0]).CSS,
				fretboard.SlotColor(group[1]).CSS,
			}
		}
		res = append(res, entry)
	}
	return res
}
