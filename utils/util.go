package utils

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrFilesystem is matched by every FSError
var ErrFilesystem = errors.New("filesystem error")

// FSError records a failed filesystem operation and the path it touched.
type FSError struct {
	Op   string
	Path string
	Err  error
}

func (e *FSError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FSError) Unwrap() error { return e.Err }

// Is reports true for ErrFilesystem
func (e *FSError) Is(target error) bool {
	return target == ErrFilesystem
}

// ReadyDir makes sure the parent directory of filename exists
func ReadyDir(filename string) error {
	return MakeDir(filepath.Dir(filename))
}

// MakeDir ...
func MakeDir(dir string) error {
	if err := os.MkdirAll(dir, os.FileMode(0755)); err != nil {
		return &FSError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// CreateFile opens filename for writing, truncating an existing file.
func CreateFile(filename string) (*os.File, error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(0644))
	if err != nil {
		return nil, &FSError{Op: "create", Path: filename, Err: err}
	}
	return f, nil
}

// Exists returns true if a file exists
func Exists(fpath string) bool {
	_, err := os.Stat(fpath)
	return !os.IsNotExist(err)
}

// IsDir ...
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsDir()
}

// FileSize returns the size of fpath in bytes
func FileSize(fpath string) (int64, error) {
	fi, err := os.Stat(fpath)
	if err != nil {
		return 0, &FSError{Op: "stat", Path: fpath, Err: err}
	}
	return fi.Size(), nil
}
