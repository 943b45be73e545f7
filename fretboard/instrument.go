package fretboard

import (
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
)

const (
	NumStrings = 6
	NumFrets   = 24
)

// Instrument is a fretted neck: open strings low to high and a fret count.
type Instrument struct {
	strings [NumStrings]model.Note
	open    [NumStrings]int
	frets   int
}

var standardGuitar = newInstrument([NumStrings]model.Note{"E", "A", "D", "G", "B", "E"}, NumFrets)

func StandardGuitar() Instrument {
	return standardGuitar
}

func newInstrument(tuning [NumStrings]model.Note, frets int) Instrument {
	inst := Instrument{strings: tuning, frets: frets}
	for i, n := range tuning {
		idx, err := theory.NoteIndex(n)
		if err != nil {
			panic(err)
		}
		inst.open[i] = idx
	}
	return inst
}

func (inst Instrument) Strings() []model.Note {
	res := make([]model.Note, NumStrings)
	copy(res, inst.strings[:])
	return res
}

func (inst Instrument) NumStrings() int {
	return len(inst.strings)
}

func (inst Instrument) Frets() int {
	return inst.frets
}

func (inst Instrument) NoteAt(stringIndex int, fret int) model.Note {
	return theory.NoteAt(inst.open[stringIndex] + fret)
}

func (inst Instrument) Cell(stringIndex int, fret int) model.FretCell {
	return model.FretCell{
		String: stringIndex,
		Fret:   fret,
		Note:   inst.NoteAt(stringIndex, fret),
	}
}

// FindPositions scans every string, then every fret 0..frets, and returns
// the cells holding note.
func FindPositions(note model.Note, inst Instrument) ([]model.FretCell, error) {
	if _, err := theory.NoteIndex(note); err != nil {
		return nil, err
	}
	var res []model.FretCell
	for s := 0; s < inst.NumStrings(); s++ {
		for fret := 0; fret <= inst.frets; fret++ {
			cell := inst.Cell(s, fret)
			if cell.Note == note {
				res = append(res, cell)
			}
		}
	}
	return res, nil
}
