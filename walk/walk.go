// Package walk finds PNG files under an input root and pairs each with its
// mirrored location under an output root.
package walk

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	zlog "github.com/go-imsto/pngpress/log"
	"github.com/go-imsto/pngpress/utils"
)

// Pair is an input file and the output path it maps to.
type Pair struct {
	Input  string
	Output string
}

func (p Pair) String() string {
	return p.Input + " -> " + p.Output
}

// IsPNG reports whether name ends in .png, ignoring case.
func IsPNG(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".png")
}

// Pairs creates outRoot and returns a sequence of pairs for every PNG file
// below inRoot. The tree is read lazily while the sequence is ranged over;
// ranging again walks again. A missing inRoot yields nothing.
func Pairs(inRoot, outRoot string) (iter.Seq[Pair], error) {
	if err := utils.MakeDir(outRoot); err != nil {
		return nil, err
	}

	return func(yield func(Pair) bool) {
		filepath.WalkDir(inRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				zlog.Debugw("walk: skip", "path", path, "err", err)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			// a file given as the root is not a tree
			if d.IsDir() || path == inRoot || !IsPNG(d.Name()) {
				return nil
			}
			// symlinked directories are not followed
			if d.Type()&fs.ModeSymlink != 0 && utils.IsDir(path) {
				return nil
			}
			rel, err := filepath.Rel(inRoot, path)
			if err != nil {
				return nil
			}
			if !yield(Pair{Input: path, Output: filepath.Join(outRoot, rel)}) {
				return filepath.SkipAll
			}
			return nil
		})
	}, nil
}

// Collect gathers every pair of a walk.
func Collect(inRoot, outRoot string) ([]Pair, error) {
	seq, err := Pairs(inRoot, outRoot)
	if err != nil {
		return nil, err
	}
	var pairs []Pair
	for p := range seq {
		pairs = append(pairs, p)
	}
	return pairs, nil
}
