// Package view runs one recompute cycle: it reads the current selection,
// derives triads, fretboard markers and legend, and hands the result to a
// render target. Nothing is kept between cycles.
package view

import (
	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/legend"
	"github.com/jsphweid/fretdex/logger"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/theory"
)

var ErrSelectionSource = errors.New("selection source failed")

type SelectionSource interface {
	CurrentSelection() (model.Selection, error)
}

type Renderer interface {
	Render(v model.View) error
}

// Static is a fixed selection, e.g. from command line arguments.
type Static model.Selection

func (s Static) CurrentSelection() (model.Selection, error) {
	res := make(model.Selection, len(s))
	copy(res, s)
	return res, nil
}

// Compute derives the full view for sel on the standard guitar. An empty
// selection shows the whole chromatic scale as a single group with no
// legend.
func Compute(sel model.Selection) (model.View, error) {
	inst := fretboard.StandardGuitar()
	v := model.View{
		Selection:   sel,
		Strings:     inst.NumStrings(),
		Frets:       inst.Frets(),
		FretNumbers: fretboard.FretNumbers(inst),
		Legend:      []model.LegendEntry{},
	}

	if len(sel) == 0 {
		v.Selection = model.Selection{}
		v.Chromatic = true
		v.Triads = [][]model.Note{theory.Notes()}
	} else {
		for _, item := range sel {
			triad, err := theory.Triad(item.Root, item.Quality)
			if err != nil {
				return model.View{}, err
			}
			v.Triads = append(v.Triads, triad)
		}
		v.Legend = legend.Build(sel)
	}

	m, err := fretboard.BuildMembership(v.Triads)
	if err != nil {
		return model.View{}, err
	}
	v.Markers = fretboard.RenderGrid(inst, m)
	return v, nil
}

// Refresh reads src once, recomputes and renders. A failed step leaves the
// renderer untouched; the next call starts over from scratch.
func Refresh(src SelectionSource, r Renderer) (model.View, error) {
	sel, err := src.CurrentSelection()
	if err != nil {
		return model.View{}, errors.Mark(errors.Wrap(err, "could not read selection"), ErrSelectionSource)
	}

	v, err := Compute(sel)
	if err != nil {
		logger.Logger.Warnw("Skipping render", "selection", sel, "error", err)
		return model.View{}, err
	}

	logger.Logger.Debugw("Rendering view",
		"selection", len(v.Selection),
		"markers", len(v.Markers),
		"chromatic", v.Chromatic)

	if err := r.Render(v); err != nil {
		return v, errors.Wrap(err, "render failed")
	}
	return v, nil
}
