package image

import (
	"fmt"
	"mime"
)

type Dimension uint32

// Attr describes an encoded image on disk.
type Attr struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
	Size   int64     `json:"size"`
	Ext    string    `json:"ext,omitempty"`
	Mime   string    `json:"mime,omitempty"`
	Hash   string    `json:"hash,omitempty"`
	Name   string    `json:"name,omitempty"`
}

// NewAttr ...
func NewAttr(w, h int, t TypeId) *Attr {
	ext := ExtByType(t)
	return &Attr{
		Width:  Dimension(w),
		Height: Dimension(h),
		Ext:    ext,
		Mime:   mime.TypeByExtension(ext),
	}
}

func (a Attr) String() string {
	return fmt.Sprintf("%dx%d %s %d bytes %s", a.Width, a.Height, a.Ext, a.Size, a.Hash)
}
