package render

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"clip2d"
)

// tickTarget is the rough number of tick labels per axis.
const tickTarget = 8

// DrawTicks labels the world axes with coordinate values along the
// bottom and left image edges. It draws directly at output resolution,
// so call it on the final (post-downscale) image with a matching
// mapper; supersampled text would blur.
func DrawTicks(dst *image.RGBA, m Mapper, col color.Color) {
	ext := m.Extent()
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}

	h := dst.Bounds().Dy()
	step := niceStep(ext.Width() / tickTarget)
	for v := math.Ceil(ext.XMin/step) * step; v <= ext.XMax; v += step {
		x, _ := m.ToScreen(clip2d.Pt(v, 0))
		label := formatTick(v, step)
		d.Dot = fixed.P(int(x)-d.MeasureString(label).Ceil()/2, h-4)
		d.DrawString(label)
	}

	step = niceStep(ext.Height() / tickTarget)
	for v := math.Ceil(ext.YMin/step) * step; v <= ext.YMax; v += step {
		_, y := m.ToScreen(clip2d.Pt(0, v))
		d.Dot = fixed.P(4, int(y)+face.Ascent/2)
		d.DrawString(formatTick(v, step))
	}
}

// niceStep rounds a raw step up to the nearest 1, 2 or 5 times a power
// of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// formatTick renders a tick value with just enough precision for the
// step size.
func formatTick(v, step float64) string {
	prec := 0
	if step < 1 {
		prec = int(math.Ceil(-math.Log10(step)))
	}
	// Suppress negative zero from floating point ceil/step arithmetic.
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
