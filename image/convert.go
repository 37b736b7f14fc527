package image

import (
	zlog "github.com/go-imsto/pngpress/log"
	"github.com/go-imsto/pngpress/utils"
)

// Convert decodes src, resizes it to exactly size with alpha and writes an
// optimized PNG to dest, overwriting any existing file. The parent of dest
// is created first. A failure leaves no file at dest unless the encoder
// failed part way.
func Convert(src, dest string, size Size) (*Attr, error) {
	if !size.Valid() {
		return nil, ErrInvalidSize
	}
	if err := utils.ReadyDir(dest); err != nil {
		return nil, err
	}

	m, t, err := Decode(src)
	if err != nil {
		return nil, err
	}
	b := m.Bounds()
	zlog.Debugw("decoded", "src", src, "type", t, "width", b.Dx(), "height", b.Dy())

	m, err = Resize(NormalizeAlpha(m), size)
	if err != nil {
		return nil, err
	}

	a, err := SavePNG(dest, m)
	if err != nil {
		return nil, err
	}
	zlog.Debugw("saved", "dest", dest, "size", a.Size, "hash", a.Hash)
	return a, nil
}
