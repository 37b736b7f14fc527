package image

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func gradientGray(w, h int) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetGray(x, y, color.Gray{Y: uint8((x + y) % 256)})
		}
	}
	return m
}

func writePNG(t *testing.T, name string, m image.Image) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
	return name
}

func writeJPEG(t *testing.T, name string, m image.Image) string {
	t.Helper()
	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, m, &jpeg.Options{Quality: 80}))
	return name
}

func readPNG(t *testing.T, name string) image.Image {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	m, err := png.Decode(f)
	require.NoError(t, err)
	return m
}

// colorTypeRGBA is the IHDR color type of 8-bit truecolor with alpha
const colorTypeRGBA = 6

// pngColorType returns the color type byte of the IHDR chunk.
func pngColorType(t *testing.T, name string) byte {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	// signature(8) length(4) "IHDR"(4) width(4) height(4) depth(1)
	require.Greater(t, len(data), 25)
	require.Equal(t, "IHDR", string(data[12:16]))
	return data[25]
}
