package cmd

import (
	"fmt"

	"github.com/go-imsto/pngpress/batch"
	"github.com/go-imsto/pngpress/image"
)

var cmdWalk = &Command{
	UsageLine: "walk [-in images] [-out compressed_images]",
	Short:     "list the files compress would convert",
	Long: `
walk prints every input png and its output path without converting.
The output root is created.
`,
}

var win, wout string

func init() {
	cmdWalk.Run = runWalk
	cmdWalk.Flag.StringVar(&win, "in", "", "input root")
	cmdWalk.Flag.StringVar(&wout, "out", "", "output root")
}

func runWalk(args []string) bool {
	pairs, err := batch.Plan(batchOptions(win, wout, image.Size{}))
	if err != nil {
		errorf("walk: %s", err)
		setExitStatus(1)
		return true
	}
	for _, p := range pairs {
		fmt.Println(p)
	}
	return true
}
