package image

import (
	"bufio"
	"image"
	"image/png"
	"io"

	"github.com/go-imsto/pngpress/hash"
	"github.com/go-imsto/pngpress/utils"
)

// the encoder picks a filter per row; compression is the only knob
var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// alphaImage hides opacity from the encoder so an opaque image is still
// stored as truecolor with alpha.
type alphaImage struct {
	image.Image
}

func (alphaImage) Opaque() bool { return false }

// EncodePNG writes m to w as an optimized PNG with an alpha channel.
func EncodePNG(w io.Writer, m image.Image) error {
	return pngEncoder.Encode(w, alphaImage{m})
}

// SavePNG writes m to name, replacing any existing file, and returns the
// attributes of what was written.
func SavePNG(name string, m image.Image) (*Attr, error) {
	out, err := utils.CreateFile(name)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	hw := hash.NewWriter(bw)
	if err = EncodePNG(hw, m); err != nil {
		return nil, &utils.FSError{Op: "encode", Path: name, Err: err}
	}
	if err = bw.Flush(); err != nil {
		return nil, &utils.FSError{Op: "write", Path: name, Err: err}
	}
	if err = out.Close(); err != nil {
		return nil, &utils.FSError{Op: "close", Path: name, Err: err}
	}

	b := m.Bounds()
	a := NewAttr(b.Dx(), b.Dy(), TYPE_PNG)
	a.Name = name
	a.Size = hw.Len()
	a.Hash = hw.String()
	return a, nil
}
