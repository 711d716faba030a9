// Command clip2d-view opens the interactive clipping scene viewer.
// An optional scene file argument is loaded on startup.
package main

import (
	"flag"
	"fmt"
	"os"

	"clip2d/internal/gui"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [scene-file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	a := gui.New()
	if flag.NArg() > 0 {
		a.RunWithFile(flag.Arg(0))
		return
	}
	a.Run()
}
