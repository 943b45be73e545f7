package chord

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"gitlab.com/gomidi/midi/v2/smf"
)

type OnNotes = map[uint8]bool

func CreateChordKey(notes []uint8) string {
	sorted := make([]uint8, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// PitchClasses folds MIDI note numbers onto the 12 note names, in scale
// order starting at C.
func PitchClasses(notes []uint8) []model.Note {
	var present [theory.NumNotes]bool
	for _, n := range notes {
		present[int(n)%theory.NumNotes] = true
	}
	var res []model.Note
	for i, ok := range present {
		if ok {
			res = append(res, theory.NoteAt(i))
		}
	}
	return res
}

// Identify returns every triad whose three notes are all sounding, in any
// octave or inversion. Extra notes are allowed.
func Identify(notes []uint8) model.Selection {
	held := make(map[model.Note]bool)
	for _, n := range PitchClasses(notes) {
		held[n] = true
	}

	res := model.Selection{}
	if len(held) < 3 {
		return res
	}
	for _, root := range theory.Notes() {
		if !held[root] {
			continue
		}
		for _, q := range theory.Qualities() {
			triad, err := theory.Triad(root, q)
			if err != nil {
				continue
			}
			if held[triad[1]] && held[triad[2]] {
				res = append(res, model.SelectionItem{Root: root, Quality: q})
			}
		}
	}
	return res
}

func getChord(offset int64, pressed map[uint8]int64) model.Chord {
	var c model.Chord
	for note := range pressed {
		c.Notes = append(c.Notes, note)
	}
	sort.Slice(c.Notes, func(i, j int) bool {
		return c.Notes[i] < c.Notes[j]
	})

	// storing it in millis for space savings (32 vs. 64)
	// millis gives us 1200 hours max length which is obviously sufficient
	c.Offset = uint32(offset / 1000)
	return c
}

// GetChords returns the set of sounding notes after every note event of
// the file, ordered by time.
func GetChords(s *smf.SMF) (chords []model.Chord, err error) {
	// smf panics on some malformed tracks
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("could not read chords: %v", r)
		}
	}()

	var reducedEvents []model.ReducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToChords := make(map[int64]model.Chord)
	pressed := make(map[uint8]int64)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = evt.Offset
		}
		timestampToChords[evt.Offset] = getChord(evt.Offset, pressed)
	}

	for _, c := range timestampToChords {
		if len(c.Notes) > 0 {
			chords = append(chords, c)
		}
	}
	sort.Slice(chords, func(i, j int) bool {
		return chords[i].Offset < chords[j].Offset
	})
	return chords, nil
}

// Triads identifies the triads of every chord, dropping chords without
// any and repeats of the previous chord.
func Triads(chords []model.Chord) []model.ChordTriads {
	var res []model.ChordTriads
	var lastKey string
	for _, c := range chords {
		key := CreateChordKey(c.Notes)
		if key == lastKey {
			continue
		}
		lastKey = key

		sel := Identify(c.Notes)
		if len(sel) == 0 {
			continue
		}
		ct := model.ChordTriads{Offset: c.Offset, Notes: c.Notes, Triads: sel}
		for _, item := range sel {
			ct.Labels = append(ct.Labels, theory.Label(item)+qualitySuffix(item.Quality))
		}
		res = append(res, ct)
	}
	return res
}

// legend labels can't tell dim/aug apart, inspection output can
func qualitySuffix(q model.Quality) string {
	switch q {
	case model.Diminished:
		return "dim"
	case model.Augmented:
		return "aug"
	}
	return ""
}
