// Package theory computes notes and triads over the 12 sharp-spelled pitch
// classes.
package theory

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/util"
)

const NumNotes = 12

var (
	ErrInvalidNote    = errors.New("invalid note")
	ErrInvalidQuality = errors.New("invalid triad quality")
)

var notes = [NumNotes]model.Note{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var qualities = [...]model.Quality{model.Major, model.Minor, model.Diminished, model.Augmented}

// root, third, fifth
var triadIntervals = map[model.Quality][3]int{
	model.Major:      {0, 4, 7},
	model.Minor:      {0, 3, 7},
	model.Diminished: {0, 3, 6},
	model.Augmented:  {0, 4, 8},
}

// Notes returns a copy of the chromatic scale starting on C.
func Notes() []model.Note {
	res := make([]model.Note, NumNotes)
	copy(res, notes[:])
	return res
}

func Qualities() []model.Quality {
	res := make([]model.Quality, len(qualities))
	copy(res, qualities[:])
	return res
}

func Intervals(q model.Quality) ([3]int, error) {
	intervals, ok := triadIntervals[q]
	if !ok {
		return intervals, invalidQuality(string(q))
	}
	return intervals, nil
}

func NoteIndex(note model.Note) (int, error) {
	i := util.IndexOf(notes[:], note)
	if i < 0 {
		return 0, invalidNote(string(note))
	}
	return i, nil
}

// NoteAt maps any integer back onto the chromatic scale.
func NoteAt(index int) model.Note {
	return notes[util.Mod(index, NumNotes)]
}

func NoteFromInterval(root model.Note, interval int) (model.Note, error) {
	i, err := NoteIndex(root)
	if err != nil {
		return "", err
	}
	return NoteAt(i + interval), nil
}

func Triad(root model.Note, q model.Quality) ([]model.Note, error) {
	intervals, err := Intervals(q)
	if err != nil {
		return nil, err
	}
	res := make([]model.Note, 0, len(intervals))
	for _, interval := range intervals {
		n, err := NoteFromInterval(root, interval)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// TriadsFor returns every quality's triad on root, each ordered root, third, fifth.
func TriadsFor(root model.Note) (map[model.Quality][]model.Note, error) {
	if _, err := NoteIndex(root); err != nil {
		return nil, err
	}
	res := make(map[model.Quality][]model.Note, len(qualities))
	for _, q := range qualities {
		triad, err := Triad(root, q)
		if err != nil {
			return nil, err
		}
		res[q] = triad
	}
	return res, nil
}

// Label is what the legend shows. Diminished and augmented triads get the
// same label as major.
func Label(item model.SelectionItem) string {
	if item.Quality == model.Minor {
		return string(item.Root) + "m"
	}
	return string(item.Root)
}

func invalidNote(s string) error {
	err := errors.Wrapf(ErrInvalidNote, "%q", s)
	return errors.WithHintf(err, "valid notes are %s", joinNotes())
}

func invalidQuality(s string) error {
	err := errors.Wrapf(ErrInvalidQuality, "%q", s)
	names := make([]string, 0, len(qualities))
	for _, q := range qualities {
		names = append(names, string(q))
	}
	return errors.WithHintf(err, "valid qualities are %s", strings.Join(names, ", "))
}

func joinNotes() string {
	names := make([]string, 0, NumNotes)
	for _, n := range notes {
		names = append(names, string(n))
	}
	return strings.Join(names, " ")
}
