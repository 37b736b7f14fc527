package cmd

import (
	"fmt"
	"os"

	"github.com/go-imsto/pngpress/batch"
	"github.com/go-imsto/pngpress/image"
)

var cmdCompress = &Command{
	UsageLine: "compress [-in images] [-out compressed_images] [-size 300x300]",
	Short:     "resize and optimize every png below a directory",
	Long: `
compress walks the input directory, resizes each .png to the target size
and writes an optimized png to the same relative path below the output
directory, printing the size change of every file.
The first file that fails stops the run.
`,
}

var (
	cin, cout string
	csize     image.Size
)

func init() {
	cmdCompress.Run = runCompress
	cmdCompress.Flag.StringVar(&cin, "in", "", "input root, PNGPRESS_INPUT_ROOT or images")
	cmdCompress.Flag.StringVar(&cout, "out", "", "output root, PNGPRESS_OUTPUT_ROOT or compressed_images")
	cmdCompress.Flag.Var(&csize, "size", "target WxH, PNGPRESS_WIDTH/HEIGHT or 300x300")
}

// batchOptions starts from the loaded config and applies flags that were set.
func batchOptions(in, out string, size image.Size) batch.Options {
	opts := batch.DefaultOptions()
	if current != nil {
		opts.InputRoot = current.InputRoot
		opts.OutputRoot = current.OutputRoot
		opts.Size = image.Size{Width: current.Width, Height: current.Height}
	}
	if in != "" {
		opts.InputRoot = in
	}
	if out != "" {
		opts.OutputRoot = out
	}
	if size.Valid() {
		opts.Size = size
	}
	return opts
}

func runCompress(args []string) bool {
	opts := batchOptions(cin, cout, csize)
	logger().Infow("compress", "in", opts.InputRoot, "out", opts.OutputRoot, "size", opts.Size.String())

	n, err := batch.Run(opts, os.Stdout)
	if err != nil {
		logger().Errorw("compress failed", "in", opts.InputRoot, "done", n, "err", err)
		reportError(err, map[string]string{"cmd": "compress"})
		errorf("compress: %s", err)
		setExitStatus(1)
		return true
	}

	fmt.Println("Image processing complete!")
	return true
}
