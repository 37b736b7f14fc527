package image

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	s, err := ParseSize("300x200")
	assert.NoError(t, err)
	assert.Equal(t, Size{Width: 300, Height: 200}, s)

	s, err = ParseSize(" 64X64 ")
	assert.NoError(t, err)
	assert.Equal(t, Size{Width: 64, Height: 64}, s)

	s, err = ParseSize("128")
	assert.NoError(t, err)
	assert.Equal(t, Size{Width: 128, Height: 128}, s)

	for _, v := range []string{"", "x", "0x10", "10x0", "ax3", "-1x4"} {
		_, err = ParseSize(v)
		assert.ErrorIs(t, err, ErrInvalidSize, v)
	}

	var fs Size
	assert.NoError(t, fs.Set("40x30"))
	assert.Equal(t, "40x30", fs.String())
}

func TestNormalizeAlpha(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, nrgba, NormalizeAlpha(nrgba))
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, rgba, NormalizeAlpha(rgba))

	gray := image.NewGray(image.Rect(2, 3, 6, 8))
	gray.SetGray(2, 3, color.Gray{Y: 200})
	m := NormalizeAlpha(gray)
	out, ok := m.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 4, 5), out.Bounds())
	assert.Equal(t, color.NRGBA{200, 200, 200, 255}, out.NRGBAAt(0, 0))

	pal := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{
		color.NRGBA{0, 0, 0, 0}, color.NRGBA{0, 0, 255, 128},
	})
	pal.SetColorIndex(1, 0, 1)
	out = NormalizeAlpha(pal).(*image.NRGBA)
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, color.NRGBA{0, 0, 255, 128}, out.NRGBAAt(1, 0))
}

func TestResize(t *testing.T) {
	m, err := Resize(gradientGray(100, 10), Size{Width: 30, Height: 70})
	require.NoError(t, err)
	assert.Equal(t, 30, m.Bounds().Dx())
	assert.Equal(t, 70, m.Bounds().Dy())

	_, err = Resize(gradientGray(10, 10), Size{})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	name := writePNG(t, filepath.Join(dir, "s.png"), gradientGray(33, 44))

	a, err := Stat(name)
	require.NoError(t, err)
	assert.Equal(t, Dimension(33), a.Width)
	assert.Equal(t, Dimension(44), a.Height)
	assert.Equal(t, ".png", a.Ext)
	assert.NotEmpty(t, a.Hash)
	assert.Greater(t, a.Size, int64(0))

	_, err = Stat(filepath.Join(dir, "none.png"))
	assert.ErrorIs(t, err, ErrDecode)
}
