package sample

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestVoicing(t *testing.T) {
	cases := []struct {
		item model.SelectionItem
		want []uint8
	}{
		{model.SelectionItem{Root: "C", Quality: model.Major}, []uint8{60, 64, 67}},
		{model.SelectionItem{Root: "A", Quality: model.Minor}, []uint8{69, 72, 76}},
		{model.SelectionItem{Root: "B", Quality: model.Diminished}, []uint8{71, 74, 77}},
		{model.SelectionItem{Root: "G#", Quality: model.Augmented}, []uint8{68, 72, 76}},
	}

	for _, c := range cases {
		t.Run(theory.Label(c.item)+" "+string(c.item.Quality), func(t *testing.T) {
			got, err := Voicing(c.item, 60)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestVoicingErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Voicing(model.SelectionItem{Root: "H", Quality: model.Major}, 60)
	assert.True(errors.Is(err, theory.ErrInvalidNote))

	_, err = Voicing(model.SelectionItem{Root: "C", Quality: "power"}, 60)
	assert.True(errors.Is(err, theory.ErrInvalidQuality))

	_, err = Voicing(model.SelectionItem{Root: "B", Quality: model.Major}, 125)
	assert.Error(err)
}

func TestCreateRoundTripsThroughChordDetection(t *testing.T) {
	sel := model.Selection{
		{Root: "C", Quality: model.Major},
		{Root: "A", Quality: model.Minor},
		{Root: "F#", Quality: model.Diminished},
	}
	s, err := Create(sel, 60, 90)
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)

	var buf bytes.Buffer
	_, err = s.WriteTo(&buf)
	require.NoError(t, err)
	read, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	chords, err := chord.GetChords(read)
	require.NoError(t, err)
	triads := chord.Triads(chords)

	require.Len(t, triads, 3)
	for i, item := range sel {
		assert.Contains(t, triads[i].Triads, item)
	}
}
