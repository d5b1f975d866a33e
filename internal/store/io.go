package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// document is a single JSON file on disk, optionally sealed under a
// passphrase. Writes replace the whole file atomically.
type document struct {
	path       string
	passphrase string
	sealed     bool
	mode       os.FileMode
}

// read decodes the file into v. It reports false, and leaves v untouched,
// when the file does not exist yet.
func (d document) read(v any) (bool, error) {
	b, err := os.ReadFile(d.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", filepath.Base(d.path), err)
	}
	if d.sealed {
		if b, err = open(d.passphrase, b); err != nil {
			return false, err
		}
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", filepath.Base(d.path), err)
	}
	return true, nil
}

// write encodes v, seals it when configured, and swaps it into place.
func (d document) write(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(d.path), err)
	}
	if d.sealed {
		if b, err = seal(d.passphrase, b); err != nil {
			return err
		}
	}
	if err := replaceFile(d.path, b, d.mode); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(d.path), err)
	}
	return nil
}

// replaceFile stages b next to path and renames it over the target, so a
// crash leaves either the old or the new contents.
func replaceFile(path string, b []byte, mode os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	staged := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(staged)
		}
	}()

	if _, err = f.Write(b); err == nil {
		if err = f.Chmod(mode); err == nil {
			err = f.Sync()
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return os.Rename(staged, path)
}
