package image

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-imsto/pngpress/hash"
	zlog "github.com/go-imsto/pngpress/log"
)

// Decode opens the file at name and decodes it. Any failure is a *DecodeError.
func Decode(name string) (image.Image, TypeId, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, TYPE_NONE, &DecodeError{Path: name, Err: err}
	}
	defer f.Close()

	rr := asReader(f)
	t := sniff(rr)
	if t == TYPE_NONE {
		return nil, t, &DecodeError{Path: name, Err: ErrFormat}
	}
	if t != TYPE_PNG {
		zlog.Debugw("decode: not a png payload", "name", name, "type", t)
	}

	m, _, err := image.Decode(rr)
	if err != nil {
		return nil, t, &DecodeError{Path: name, Err: err}
	}
	return m, t, nil
}

// Stat reads the header and fingerprint of the image at name without
// decoding its pixels.
func Stat(name string) (*Attr, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}
	defer f.Close()

	rr := asReader(f)
	t := sniff(rr)
	if t == TYPE_NONE {
		return nil, &DecodeError{Path: name, Err: ErrFormat}
	}
	cfg, _, err := image.DecodeConfig(rr)
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}

	a := NewAttr(cfg.Width, cfg.Height, t)
	a.Name = name
	a.Hash, a.Size, err = hash.SumFile(name)
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}
	return a, nil
}
