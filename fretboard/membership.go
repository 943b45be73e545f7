package fretboard

import (
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/util"
)

// Membership maps each note to the indices of the triads containing it.
type Membership struct {
	notes  []model.Note
	triads map[model.Note][]int
}

// BuildMembership is recomputed from scratch on every render. A note listed
// twice inside one triad counts once.
func BuildMembership(triads [][]model.Note) (Membership, error) {
	m := Membership{triads: make(map[model.Note][]int)}
	for triadIdx, triad := range triads {
		for _, note := range triad {
			if _, err := theory.NoteIndex(note); err != nil {
				return Membership{}, err
			}
			if _, ok := m.triads[note]; !ok {
				m.notes = append(m.notes, note)
			}
			m.triads[note] = util.AppendUnique(m.triads[note], triadIdx)
		}
	}
	return m, nil
}

// Of returns the triads claiming note in the order they were added.
func (m Membership) Of(note model.Note) []int {
	indices := m.triads[note]
	res := make([]int, len(indices))
	copy(res, indices)
	return res
}

// Notes lists the claimed notes in first-seen order.
func (m Membership) Notes() []model.Note {
	res := make([]model.Note, len(m.notes))
	copy(res, m.notes)
	return res
}

func (m Membership) Len() int {
	return len(m.notes)
}
