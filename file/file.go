package file

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrapf(err, "could not create output dir %s", dir)
	}
	return nil
}

// NewOutputPath names a fresh file in dir, e.g. "<uuid>.png".
func NewOutputPath(dir string, ext string) (string, error) {
	if err := EnsureOutputDir(dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, uuid.New().String()+ext), nil
}

// OutputPath uses name if given, otherwise a generated name in dir.
func OutputPath(name string, dir string, ext string) (string, error) {
	if name == "" {
		return NewOutputPath(dir, ext)
	}
	if parent := filepath.Dir(name); parent != "." {
		if err := EnsureOutputDir(parent); err != nil {
			return "", err
		}
	}
	return name, nil
}
