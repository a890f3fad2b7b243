package anniversary

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileBackend keeps the records as a pretty-printed JSON array in a
// single file.
type FileBackend struct {
	path string
}

// NewFileBackend opens the store at path, creating it with an empty
// sequence when it does not exist yet.
func NewFileBackend(path string) (*FileBackend, error) {
	fb := &FileBackend{path: path}

	_, err := os.Stat(path)
	if err == nil {
		return fb, nil
	}
	if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create directory %s", dir)
	}
	if err := fb.Save(context.Background(), []Record{}); err != nil {
		return nil, err
	}
	return fb, nil
}

func (fb *FileBackend) Path() string {
	return fb.path
}

func (fb *FileBackend) Load(_ context.Context) ([]Record, error) {
	data, err := os.ReadFile(fb.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", fb.path)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "decode %s", fb.path)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Save rewrites the whole file. The data goes to a temporary file in the
// same directory first, so a failed write leaves the previous contents.
func (fb *FileBackend) Save(_ context.Context, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode anniversaries")
	}

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(fb.path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(fb.path), filepath.Base(fb.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	// CreateTemp uses 0600; keep the store's own permissions across the rename.
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "chmod %s", tmp.Name())
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), fb.path); err != nil {
		return errors.Wrapf(err, "replace %s", fb.path)
	}
	return nil
}
