package cmd

import (
	"fmt"

	"github.com/go-imsto/pngpress/image"
)

var cmdAttr = &Command{
	UsageLine: "attr filename...",
	Short:     "show dimensions, size and fingerprint of images",
	Long: `
attr reads the header of each file and prints width, height, byte size,
type and murmur3 fingerprint.
`,
}

func init() {
	cmdAttr.Run = runAttr
}

func runAttr(args []string) bool {
	if len(args) == 0 {
		return false
	}
	for _, name := range args {
		a, err := image.Stat(name)
		if err != nil {
			errorf("attr: %s", err)
			setExitStatus(1)
			continue
		}
		fmt.Printf("%s\n  width: \t%d\n  height: \t%d\n  size: \t%d\n  mime: \t%s\n  hash: \t%s\n",
			name, a.Width, a.Height, a.Size, a.Mime, a.Hash)
	}
	return true
}
