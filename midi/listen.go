package midi

import (
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/logger"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Held tracks the keys currently down on a MIDI input and turns them into a
// selection. It implements view.SelectionSource.
type Held struct {
	mu      sync.Mutex
	onNotes chord.OnNotes
}

func NewHeld() *Held {
	return &Held{onNotes: make(chord.OnNotes)}
}

// Handle applies one message and reports whether the held set changed.
func (h *Held) Handle(msg gomidi.Message) bool {
	var ch, key, vel uint8
	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		if h.onNotes[key] {
			return false
		}
		h.onNotes[key] = true
		return true
	case msg.GetNoteEnd(&ch, &key):
		if !h.onNotes[key] {
			return false
		}
		delete(h.onNotes, key)
		return true
	}
	return false
}

func (h *Held) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onNotes = make(chord.OnNotes)
}

// Notes returns the held keys, lowest first.
func (h *Held) Notes() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return util.GetKeys(h.onNotes)
}

func (h *Held) CurrentSelection() (model.Selection, error) {
	return chord.Identify(h.Notes()), nil
}

// FindInPort matches name case-insensitively as a substring of the port
// names; an empty name picks the first port.
func FindInPort(name string) (drivers.In, error) {
	ports := gomidi.GetInPorts()
	if len(ports) == 0 {
		return nil, errors.New("no midi input ports")
	}
	if name == "" {
		return ports[0], nil
	}
	for _, p := range ports {
		if strings.Contains(strings.ToLower(p.String()), strings.ToLower(name)) {
			return p, nil
		}
	}
	return nil, errors.WithHintf(errors.Newf("midi input port %q not found", name), "available ports: %v", ports)
}

// Listen feeds every message from port into held and calls onChange when
// the held set changed.
func Listen(port drivers.In, held *Held, onChange func()) (stop func(), err error) {
	stop, err = gomidi.ListenTo(port, func(msg gomidi.Message, timestampms int32) {
		if held.Handle(msg) {
			logger.Logger.Debugw("Held notes changed", "notes", held.Notes(), "ms", timestampms)
			onChange()
		}
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not listen to %s", port)
	}
	return stop, nil
}
