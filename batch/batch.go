// Package batch runs the converter over every PNG of an input tree and
// prints a size report per file.
package batch

import (
	"fmt"
	"io"

	"github.com/go-imsto/pngpress/image"
	zlog "github.com/go-imsto/pngpress/log"
	"github.com/go-imsto/pngpress/utils"
	"github.com/go-imsto/pngpress/walk"
)

const (
	DefaultInputRoot  = "images"
	DefaultOutputRoot = "compressed_images"
)

// Options ...
type Options struct {
	InputRoot  string
	OutputRoot string
	Size       image.Size
}

// DefaultOptions returns images -> compressed_images at 300x300.
func DefaultOptions() Options {
	return Options{
		InputRoot:  DefaultInputRoot,
		OutputRoot: DefaultOutputRoot,
		Size:       image.DefaultSize,
	}
}

// Report holds the byte sizes of one converted file.
type Report struct {
	Input      string
	Output     string
	Original   int64
	Compressed int64
}

// Ratio returns compressed/original, zero for an empty original.
func (r Report) Ratio() float64 {
	if r.Original == 0 {
		return 0
	}
	return float64(r.Compressed) / float64(r.Original)
}

// WriteTo prints the size lines and a blank separator.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "  Original size: %.2f KB\n  Compressed size: %.2f KB\n  Compression ratio: %.2f%%\n\n",
		float64(r.Original)/1024, float64(r.Compressed)/1024, r.Ratio()*100)
	return int64(n), err
}

// Plan lists the pairs a run would convert. The output root is created.
func Plan(opts Options) ([]walk.Pair, error) {
	return walk.Collect(opts.InputRoot, opts.OutputRoot)
}

// Run converts every PNG below opts.InputRoot and writes a report for each
// to w. The first failure stops the run; files already written stay.
func Run(opts Options, w io.Writer) (int, error) {
	pairs, err := walk.Pairs(opts.InputRoot, opts.OutputRoot)
	if err != nil {
		return 0, err
	}

	var count int
	for p := range pairs {
		fmt.Fprintf(w, "Processing: %s\n", p.Input)
		r, err := convert(p, opts.Size)
		if err != nil {
			zlog.Warnw("batch: abort", "input", p.Input, "done", count, "err", err)
			return count, err
		}
		if _, err = r.WriteTo(w); err != nil {
			return count, err
		}
		count++
	}
	zlog.Infow("batch: done", "in", opts.InputRoot, "out", opts.OutputRoot, "count", count)
	return count, nil
}

func convert(p walk.Pair, size image.Size) (*Report, error) {
	a, err := image.Convert(p.Input, p.Output, size)
	if err != nil {
		return nil, err
	}
	orig, err := utils.FileSize(p.Input)
	if err != nil {
		return nil, err
	}
	comp, err := utils.FileSize(p.Output)
	if err != nil {
		return nil, err
	}
	zlog.Debugw("converted", "input", p.Input, "output", p.Output, "hash", a.Hash)
	return &Report{Input: p.Input, Output: p.Output, Original: orig, Compressed: comp}, nil
}
