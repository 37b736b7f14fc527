package main

import (
	"github.com/go-imsto/pngpress/cmd"
)

func main() {
	cmd.Main()
}
