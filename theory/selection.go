package theory

import (
	"strings"

	"github.com/jsphweid/fretdex/model"
)

var suffixes = []struct {
	suffix  string
	quality model.Quality
}{
	// longest first so "dim" is not read as "m"
	{"dim", model.Diminished},
	{"aug", model.Augmented},
	{"m", model.Minor},
	{"", model.Major},
}

// ParseSelectionItem accepts "C|major", "C:minor" and chord shorthand
// "C", "Cm", "Cdim", "Caug".
func ParseSelectionItem(s string) (model.SelectionItem, error) {
	var item model.SelectionItem
	s = strings.TrimSpace(s)

	if root, q, ok := cutAny(s, "|", ":"); ok {
		item.Root = model.Note(strings.TrimSpace(root))
		item.Quality = model.Quality(strings.ToLower(strings.TrimSpace(q)))
		return item, Validate(item)
	}

	for _, sfx := range suffixes {
		root, ok := strings.CutSuffix(s, sfx.suffix)
		if !ok || root == "" {
			continue
		}
		if _, err := NoteIndex(model.Note(root)); err != nil {
			continue
		}
		item.Root = model.Note(root)
		item.Quality = sfx.quality
		return item, nil
	}

	return item, invalidNote(s)
}

func ParseSelection(args []string) (model.Selection, error) {
	res := make(model.Selection, 0, len(args))
	for _, arg := range args {
		item, err := ParseSelectionItem(arg)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

func Validate(item model.SelectionItem) error {
	if _, err := NoteIndex(item.Root); err != nil {
		return err
	}
	_, err := Intervals(item.Quality)
	return err
}

func cutAny(s string, seps ...string) (string, string, bool) {
	for _, sep := range seps {
		if before, after, ok := strings.Cut(s, sep); ok {
			return before, after, true
		}
	}
	return "", "", false
}
