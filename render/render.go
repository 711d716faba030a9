// Package render draws a clipped scene into an image: the input
// segments, the clip window, and the visible pieces, each in its own
// color, over light axes. It owns the world-to-screen mapping; the
// clipping core works in world coordinates only.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	"clip2d"
	"clip2d/scene"
)

// Options configure the rendered image.
type Options struct {
	// Width and Height of the output image in pixels.
	Width, Height int

	// Supersample renders at an integer multiple of the output size
	// and downscales with a Lanczos filter. 1 disables it.
	Supersample int

	// Colors. Zero values fall back to the defaults.
	Background color.Color
	Axis       color.Color
	Labels     color.Color
	Input      color.Color
	Window     color.Color
	Visible    color.Color

	// NoTicks suppresses the axis tick labels.
	NoTicks bool
}

// DefaultOptions returns the standard 800x600 configuration:
// gray input segments, blue window, red visible pieces, 2x supersampling.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Supersample: 2,
		Background:  color.White,
		Axis:        color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
		Labels:      color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff},
		Input:       color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff},
		Window:      color.RGBA{R: 0x20, G: 0x50, B: 0xc8, A: 0xff},
		Visible:     color.RGBA{R: 0xd8, G: 0x20, B: 0x20, A: 0xff},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	if o.Supersample < 1 {
		o.Supersample = def.Supersample
	}
	if o.Background == nil {
		o.Background = def.Background
	}
	if o.Axis == nil {
		o.Axis = def.Axis
	}
	if o.Labels == nil {
		o.Labels = def.Labels
	}
	if o.Input == nil {
		o.Input = def.Input
	}
	if o.Window == nil {
		o.Window = def.Window
	}
	if o.Visible == nil {
		o.Visible = def.Visible
	}
	return o
}

// Render draws the scene and its clip results into a new image.
// pieces must be the result of sc.Clip (index-aligned with sc.Segments);
// pass nil to draw the scene without clip results.
func Render(sc *scene.Scene, pieces [][]clip2d.Segment, opts Options) *image.RGBA {
	o := opts.withDefaults()
	ss := o.Supersample
	w, h := o.Width*ss, o.Height*ss

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	m := NewMapper(sc.Extent(), w, h)
	f := float64(ss)

	drawAxes(img, m, o.Axis, f)
	for _, s := range sc.Segments {
		strokeSegment(img, m, s, o.Input, 1.5*f)
	}
	for _, e := range sc.WindowOutline() {
		strokeSegment(img, m, e, o.Window, 2*f)
	}
	for _, ps := range pieces {
		for _, p := range ps {
			strokeSegment(img, m, p, o.Visible, 3*f)
		}
	}

	out := img
	if ss > 1 {
		small := imaging.Resize(img, o.Width, o.Height, imaging.Lanczos)
		out = image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
		draw.Draw(out, out.Bounds(), small, image.Point{}, draw.Src)
	}
	if !o.NoTicks {
		// Ticks go on at output resolution so the text stays crisp.
		DrawTicks(out, NewMapper(sc.Extent(), o.Width, o.Height), o.Labels)
	}
	return out
}

// drawAxes strokes the world X and Y axes where they cross the extent.
func drawAxes(dst *image.RGBA, m Mapper, col color.Color, width float64) {
	ext := m.Extent()
	if ext.YMin <= 0 && 0 <= ext.YMax {
		strokeSegment(dst, m, clip2d.SegXY(ext.XMin, 0, ext.XMax, 0), col, width)
	}
	if ext.XMin <= 0 && 0 <= ext.XMax {
		strokeSegment(dst, m, clip2d.SegXY(0, ext.YMin, 0, ext.YMax), col, width)
	}
}

// strokeSegment fills the quad covering a world-space segment stroked
// at the given pixel width.
func strokeSegment(dst *image.RGBA, m Mapper, s clip2d.Segment, col color.Color, width float64) {
	ax, ay := m.ToScreen(s.A)
	bx, by := m.ToScreen(s.B)

	r := &vector.Rasterizer{}
	r.Reset(dst.Bounds().Dx(), dst.Bounds().Dy())

	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		// Degenerate segment: draw a square marker instead.
		half := width / 2
		r.MoveTo(float32(ax-half), float32(ay-half))
		r.LineTo(float32(ax+half), float32(ay-half))
		r.LineTo(float32(ax+half), float32(ay+half))
		r.LineTo(float32(ax-half), float32(ay+half))
	} else {
		// Perpendicular unit vector scaled to half the stroke width.
		nx := -dy / length * width / 2
		ny := dx / length * width / 2
		r.MoveTo(float32(ax+nx), float32(ay+ny))
		r.LineTo(float32(bx+nx), float32(by+ny))
		r.LineTo(float32(bx-nx), float32(by-ny))
		r.LineTo(float32(ax-nx), float32(ay-ny))
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}
