package model

type FretCell struct {
	String int  `json:"string"`
	Fret   int  `json:"fret"`
	Note   Note `json:"note"`
}

type MarkerKind string

const (
	MarkerSolid    MarkerKind = "solid"
	MarkerSplit    MarkerKind = "split"
	MarkerOverflow MarkerKind = "overflow"
)

type Marker struct {
	FretCell

	Kind MarkerKind `json:"kind"`

	// indices into the triad list that claim this note, in insertion order
	Triads []int `json:"triads"`

	// palette slots: one for solid, two for split, none for overflow
	Slots      []int    `json:"slots"`
	Colors     []string `json:"colors"`
	Border     string   `json:"border,omitempty"`
	TextColor  string   `json:"textColor,omitempty"`
	Background string   `json:"background"`

	// percent offsets inside the neck container
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

type FretNumber struct {
	Number int     `json:"number"`
	Left   float64 `json:"left"`
}
