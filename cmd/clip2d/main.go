// Command clip2d clips the segments of a scene file against its window
// and renders the result to a PNG.
//
// Usage:
//
//	clip2d -in scene.txt -out scene.png
//	cat scene.txt | clip2d > scene.png
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/term"

	"clip2d"
	"clip2d/render"
	"clip2d/scene"
)

// pipeName is the file name that selects stdin/stdout.
const pipeName = "-"

var (
	in       = flag.String("in", pipeName, "Scene file (\"-\" for stdin)")
	out      = flag.String("out", pipeName, "Output PNG (\"-\" for stdout)")
	width    = flag.Int("width", 800, "Image width in pixels")
	height   = flag.Int("height", 600, "Image height in pixels")
	ss       = flag.Int("ss", 2, "Supersampling factor (1 disables)")
	epsilon  = flag.Float64("eps", clip2d.DefaultEpsilon, "Subdivision length cutoff (rectangle windows)")
	maxDepth = flag.Int("depth", clip2d.DefaultMaxDepth, "Subdivision depth limit (rectangle windows)")
	workers  = flag.Int("workers", 0, "Clipping goroutines (0 = GOMAXPROCS)")
	noTicks  = flag.Bool("no-ticks", false, "Suppress axis tick labels")
	verbose  = flag.Bool("v", false, "Debug logging to stderr")
)

func main() {
	log.SetPrefix("clip2d: ")
	log.SetFlags(0)
	flag.Parse()

	if *verbose {
		clip2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sc, err := scene.ParseFile(*in)
	if err != nil {
		log.Fatal(err)
	}

	pieces := sc.Clip(
		clip2d.WithEpsilon(*epsilon),
		clip2d.WithMaxDepth(*maxDepth),
		clip2d.WithWorkers(*workers),
	)

	opts := render.DefaultOptions()
	opts.Width = *width
	opts.Height = *height
	opts.Supersample = *ss
	opts.NoTicks = *noTicks

	img := render.Render(sc, pieces, opts)
	if err := render.SavePNG(*out, img); err != nil {
		log.Fatal(err)
	}

	summarize(sc, pieces)
}

// summarize prints a one-line result summary to stderr, colorized when
// it is a terminal.
func summarize(sc *scene.Scene, pieces [][]clip2d.Segment) {
	visible, hidden := 0, 0
	for _, ps := range pieces {
		if len(ps) == 0 {
			hidden++
		}
		visible += len(ps)
	}

	msg := fmt.Sprintf("%d segments against %s window: %d visible pieces, %d segments fully hidden",
		len(sc.Segments), sc.WindowName(), visible, hidden)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg = "\x1b[32m" + msg + "\x1b[0m"
	}
	fmt.Fprintln(os.Stderr, msg)
}
