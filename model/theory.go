package model

type Note string

type Quality string

const (
	Major      Quality = "major"
	Minor      Quality = "minor"
	Diminished Quality = "diminished"
	Augmented  Quality = "augmented"
)

// SelectionItem is one checked (root, quality) pair.
type SelectionItem struct {
	Root    Note    `json:"root"`
	Quality Quality `json:"quality"`
}

// NOTE: order matters, it decides palette slots and legend order
type Selection = []SelectionItem
