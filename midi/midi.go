package midi

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = errors.Newf("Error parsing midi file... %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}

	return res, nil
}

func WriteMidiFile(s *smf.SMF, filepath string) error {
	f, err := os.Create(filepath)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", filepath)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return errors.Wrapf(err, "could not write %s", filepath)
	}
	return f.Close()
}
