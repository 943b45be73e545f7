package model

type LegendEntry struct {
	Label     string `json:"label"`
	ColorSlot int    `json:"colorSlot"`
	Color     string `json:"color"`

	// set when the same (root, quality) was selected exactly twice
	Split      bool     `json:"split"`
	SplitSlots []int    `json:"splitSlots,omitempty"`
	SplitColor []string `json:"splitColors,omitempty"`
}

// View is everything a render target needs for one recompute cycle.
type View struct {
	Selection   Selection     `json:"selection"`
	Triads      [][]Note      `json:"triads"`
	Markers     []Marker      `json:"markers"`
	FretNumbers []FretNumber  `json:"fretNumbers"`
	Legend      []LegendEntry `json:"legend"`
	Strings     int           `json:"strings"`
	Frets       int           `json:"frets"`

	// no selection: every note shown as one chromatic group
	Chromatic bool `json:"chromatic"`
}
