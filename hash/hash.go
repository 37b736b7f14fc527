// Package hash fingerprints encoded image content with murmur3.
package hash

import (
	"fmt"
	"io"
	"os"

	"github.com/spaolacci/murmur3"
)

// Writer passes writes through to an underlying writer while hashing and
// counting them. A nil underlying writer only hashes.
type Writer struct {
	w   io.Writer
	mm3 murmur3.Hash128
	n   int64
}

// NewWriter ...
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, mm3: murmur3.New128()}
}

func (hw *Writer) Write(p []byte) (n int, err error) {
	if hw.w != nil {
		n, err = hw.w.Write(p)
		if err != nil {
			p = p[:n]
		}
	} else {
		n = len(p)
	}
	hw.mm3.Write(p)
	hw.n += int64(len(p))
	return
}

// Len returns the count of bytes written
func (hw *Writer) Len() int64 {
	return hw.n
}

// Bytes ...
func (hw *Writer) Bytes() []byte {
	h1, h2 := hw.mm3.Sum128()
	return combine(h1, h2, hw.n)
}

func (hw *Writer) String() string {
	return fmt.Sprintf("%x", hw.Bytes())
}

// SumFile returns the fingerprint and size of the file at name.
func SumFile(name string) (string, int64, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()
	hw := NewWriter(nil)
	if _, err = io.Copy(hw, f); err != nil {
		return "", 0, err
	}
	return hw.String(), hw.Len(), nil
}

// the trailing two bytes carry the low 16 bits of the content length
func combine(h1, h2 uint64, t int64) []byte {
	return []byte{
		byte(h1 >> 56), byte(h1 >> 48), byte(h1 >> 40), byte(h1 >> 32),
		byte(h1 >> 24), byte(h1 >> 16), byte(h1 >> 8), byte(h1),

		byte(h2 >> 56), byte(h2 >> 48), byte(h2 >> 40), byte(h2 >> 32),
		byte(h2 >> 24), byte(h2 >> 16), byte(h2 >> 8), byte(h2),

		byte(t >> 8), byte(t),
	}
}
