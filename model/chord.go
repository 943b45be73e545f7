package model

type Notes = []uint8

// Chord is the set of MIDI notes sounding at one point of a file.
type Chord struct {
	// millis from the start of the file
	Offset uint32
	Notes  Notes
}

type ChordTriads struct {
	Offset uint32          `json:"offset"`
	Notes  Notes           `json:"notes"`
	Triads []SelectionItem `json:"triads"`
	Labels []string        `json:"labels"`
}

type ReducedEvent struct {
	// micros
	Offset    int64
	IsNoteOff bool
	Note      uint8
}
