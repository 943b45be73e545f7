package chord

import (
	"bytes"
	"testing"

	"github.com/jsphweid/fretdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestCreateChordKey(t *testing.T) {
	notes := []uint8{67, 60, 64}

	assert := assert.New(t)
	assert.Equal("60-64-67", CreateChordKey(notes))
	assert.Equal([]uint8{67, 60, 64}, notes, "input must not be reordered")
	assert.Equal("", CreateChordKey(nil))
}

func TestPitchClasses(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]model.Note{"C", "E", "G"}, PitchClasses([]uint8{67, 48, 76, 60}))
	assert.Equal([]model.Note{"A#"}, PitchClasses([]uint8{22}))
	assert.Empty(PitchClasses(nil))
}

func TestIdentify(t *testing.T) {
	cases := []struct {
		name  string
		notes []uint8
		want  model.Selection
	}{
		{"c major root position", []uint8{60, 64, 67}, model.Selection{{Root: "C", Quality: model.Major}}},
		{"c major first inversion", []uint8{52, 55, 60}, model.Selection{{Root: "C", Quality: model.Major}}},
		{"a minor spread", []uint8{45, 64, 72}, model.Selection{{Root: "A", Quality: model.Minor}}},
		{"b diminished", []uint8{59, 62, 65}, model.Selection{{Root: "B", Quality: model.Diminished}}},
		{"two notes", []uint8{60, 64}, model.Selection{}},
		{"nothing", nil, model.Selection{}},
		// A C E G holds both A minor and C major
		{"a minor seventh", []uint8{57, 60, 64, 67}, model.Selection{
			{Root: "C", Quality: model.Major},
			{Root: "A", Quality: model.Minor},
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Identify(c.notes))
		})
	}
}

func TestIdentifyAugmentedIsSymmetric(t *testing.T) {
	sel := Identify([]uint8{60, 64, 68})

	assert := assert.New(t)
	assert.Len(sel, 3)
	for _, item := range sel {
		assert.Equal(model.Augmented, item.Quality)
	}
}

func readBack(t *testing.T, s *smf.SMF) *smf.SMF {
	t.Helper()
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	res, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return res
}

func TestGetChords(t *testing.T) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)

	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(0, midi.NoteOn(0, 67, 100))
	tr.Add(960, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Add(0, midi.NoteOff(0, 67))
	tr.Add(0, midi.NoteOn(0, 57, 100))
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	// velocity 0 note on is a note off
	tr.Add(960, midi.NoteOn(0, 57, 0))
	tr.Add(0, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Close(0)
	require.NoError(t, s.Add(tr))

	chords, err := GetChords(readBack(t, s))
	require.NoError(t, err)

	assert := assert.New(t)
	require.Len(t, chords, 2)
	assert.Equal(uint32(0), chords[0].Offset)
	assert.Equal([]uint8{60, 64, 67}, chords[0].Notes)
	assert.Greater(chords[1].Offset, chords[0].Offset)
	assert.Equal([]uint8{57, 60, 64}, chords[1].Notes)

	triads := Triads(chords)
	require.Len(t, triads, 2)
	assert.Equal([]string{"C"}, triads[0].Labels)
	assert.Equal([]string{"Am"}, triads[1].Labels)
}

func TestTriadsSkipsRepeatsAndNonTriads(t *testing.T) {
	chords := []model.Chord{
		{Offset: 0, Notes: []uint8{60, 64, 67}},
		{Offset: 10, Notes: []uint8{60, 64, 67}},
		{Offset: 20, Notes: []uint8{60, 62}},
		{Offset: 30, Notes: []uint8{59, 62, 65}},
		{Offset: 40, Notes: []uint8{60, 64, 68}},
	}
	res := Triads(chords)

	assert := assert.New(t)
	require.Len(t, res, 3)
	assert.Equal(uint32(0), res[0].Offset)
	assert.Equal([]string{"Bdim"}, res[1].Labels)
	assert.Equal([]string{"Caug", "Eaug", "G#aug"}, res[2].Labels)
}
