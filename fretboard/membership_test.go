package fretboard

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMembership(t *testing.T) {
	m, err := BuildMembership([][]model.Note{
		{"C", "E", "G"},
		{"A", "C", "E"},
	})
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]int{0, 1}, m.Of("C"))
	assert.Equal([]int{0, 1}, m.Of("E"))
	assert.Equal([]int{0}, m.Of("G"))
	assert.Equal([]int{1}, m.Of("A"))
	assert.Empty(m.Of("D"))
	assert.Equal([]model.Note{"C", "E", "G", "A"}, m.Notes())
	assert.Equal(4, m.Len())
}

func TestBuildMembershipCountsRepeatedNoteOnce(t *testing.T) {
	m, err := BuildMembership([][]model.Note{{"C", "C", "G"}})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, m.Of("C"))
}

func TestBuildMembershipInvalidNote(t *testing.T) {
	_, err := BuildMembership([][]model.Note{{"C", "Q", "G"}})
	assert.True(t, errors.Is(err, theory.ErrInvalidNote))
}

func TestBuildMembershipOfReturnsCopy(t *testing.T) {
	m, err := BuildMembership([][]model.Note{{"C", "E", "G"}})
	require.NoError(t, err)
	m.Of("C")[0] = 9
	assert.Equal(t, []int{0}, m.Of("C"))
}
