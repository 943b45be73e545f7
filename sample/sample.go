package sample

import (
	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

// Voicing stacks a triad in close position upward from the root nearest
// above base.
func Voicing(item model.SelectionItem, base uint8) ([]uint8, error) {
	rootIdx, err := theory.NoteIndex(item.Root)
	if err != nil {
		return nil, err
	}
	intervals, err := theory.Intervals(item.Quality)
	if err != nil {
		return nil, err
	}

	root := int(base) + (rootIdx-int(base)%theory.NumNotes+theory.NumNotes)%theory.NumNotes
	var res []uint8
	for _, interval := range intervals {
		key := root + interval
		if key > 127 {
			return nil, errors.Newf("note %v out of midi range", key)
		}
		res = append(res, uint8(key))
	}
	return res, nil
}

// Create builds a one-track file playing every selected triad as a block
// chord of one beat, in selection order.
func Create(sel model.Selection, base uint8, velocity uint8) (*smf.SMF, error) {
	res := smf.New()
	clock := smf.MetricTicks(ticksPerQuarter)
	res.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("fretdex"))
	tr.Add(0, smf.MetaTempo(120))

	for _, item := range sel {
		keys, err := Voicing(item, base)
		if err != nil {
			return nil, err
		}
		tr.Add(0, smf.MetaText(theory.Label(item)+" "+string(item.Quality)))
		for _, k := range keys {
			tr.Add(0, midi.NoteOn(0, k, velocity))
		}
		for i, k := range keys {
			var delta uint32
			if i == 0 {
				delta = clock.Ticks4th()
			}
			tr.Add(delta, midi.NoteOff(0, k))
		}
	}
	tr.Close(0)

	if err := res.Add(tr); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return res, nil
}
