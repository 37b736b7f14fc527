package image

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Size is a target width and height in pixels.
type Size struct {
	Width, Height uint
}

// DefaultSize is the target used when none is given.
var DefaultSize = Size{Width: 300, Height: 300}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Valid ...
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Set parses "WxH", for use as a flag.Value
func (s *Size) Set(v string) error {
	sz, err := ParseSize(v)
	if err != nil {
		return err
	}
	*s = sz
	return nil
}

// ParseSize parses "300x300" or a single "300" for a square.
func ParseSize(v string) (Size, error) {
	ws, hs, found := strings.Cut(strings.ToLower(strings.TrimSpace(v)), "x")
	if !found {
		hs = ws
	}
	w, err := strconv.ParseUint(ws, 10, 32)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, v)
	}
	h, err := strconv.ParseUint(hs, 10, 32)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, v)
	}
	s := Size{Width: uint(w), Height: uint(h)}
	if !s.Valid() {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, v)
	}
	return s, nil
}

// NormalizeAlpha returns m unchanged when it already carries 8-bit alpha,
// otherwise a new *image.NRGBA with the same pixels and transparency.
func NormalizeAlpha(m image.Image) image.Image {
	switch m.(type) {
	case *image.NRGBA, *image.RGBA:
		return m
	}
	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	return dst
}

// Resize scales m to exactly s with Lanczos3. Aspect ratio is not kept.
func Resize(m image.Image, s Size) (image.Image, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSize, s)
	}
	return resize.Resize(s.Width, s.Height, m, resize.Lanczos3), nil
}
