package image

import (
	"errors"
)

var (
	ErrDecode      = errors.New("decode image failed")
	ErrFormat      = errors.New("invalid or unsupported image format")
	ErrInvalidSize = errors.New("invalid target size")
)

// DecodeError reports an input that is missing, unreadable or not an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return "decode " + e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports true for ErrDecode
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
