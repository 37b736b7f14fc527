package image

import (
	"bufio"
	"bytes"
	"io"
)

// TypeId identifies an image payload by its leading signature.
type TypeId int

const (
	TYPE_NONE TypeId = iota
	TYPE_GIF
	TYPE_JPEG
	TYPE_PNG
	TYPE_BMP
	TYPE_TIFF
	TYPE_WEBP
)

const (
	SIG_GIF  = "GIF8"
	SIG_JPG  = "\xff\xd8\xff"
	SIG_PNG  = "\211PNG\r\n\032\n"
	SIG_BMP  = "BM"
	SIG_TIFL = "II*\x00"
	SIG_TIFM = "MM\x00*"
	SIG_RIFF = "RIFF"
	SIG_WEBP = "WEBP"
)

func (t TypeId) String() string {
	switch t {
	case TYPE_GIF:
		return "gif"
	case TYPE_JPEG:
		return "jpeg"
	case TYPE_PNG:
		return "png"
	case TYPE_BMP:
		return "bmp"
	case TYPE_TIFF:
		return "tiff"
	case TYPE_WEBP:
		return "webp"
	default:
		return "none"
	}
}

// GuessType ...
func GuessType(head []byte) TypeId {
	if bytes.HasPrefix(head, []byte(SIG_GIF)) {
		return TYPE_GIF
	}

	if bytes.HasPrefix(head, []byte(SIG_JPG)) {
		return TYPE_JPEG
	}

	if bytes.HasPrefix(head, []byte(SIG_PNG)) {
		return TYPE_PNG
	}

	if bytes.HasPrefix(head, []byte(SIG_TIFL)) || bytes.HasPrefix(head, []byte(SIG_TIFM)) {
		return TYPE_TIFF
	}

	// RIFF, 4 bytes of length, WEBP
	if len(head) >= 12 && bytes.HasPrefix(head, []byte(SIG_RIFF)) && string(head[8:12]) == SIG_WEBP {
		return TYPE_WEBP
	}

	if bytes.HasPrefix(head, []byte(SIG_BMP)) {
		return TYPE_BMP
	}

	return TYPE_NONE
}

// ExtByType ...
func ExtByType(t TypeId) string {
	switch t {
	case TYPE_GIF:
		return ".gif"
	case TYPE_JPEG:
		return ".jpg"
	case TYPE_PNG:
		return ".png"
	case TYPE_BMP:
		return ".bmp"
	case TYPE_TIFF:
		return ".tiff"
	case TYPE_WEBP:
		return ".webp"
	default:
		return ""
	}
}

const headSize = 12

// A reader is an io.Reader that can also peek ahead.
type reader interface {
	io.Reader
	Peek(int) ([]byte, error)
}

// asReader converts an io.Reader to a reader.
func asReader(r io.Reader) reader {
	if rr, ok := r.(reader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// sniff peeks at the signature without consuming it. Short payloads are
// judged on what is there.
func sniff(rr reader) TypeId {
	head, _ := rr.Peek(headSize)
	return GuessType(head)
}
