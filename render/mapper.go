package render

import "clip2d"

// Mapper converts world coordinates to screen pixels. The world extent
// is fit into the image with uniform scale, centered on the unused
// axis, and the Y axis is flipped: world Y grows upward, screen Y
// grows downward.
type Mapper struct {
	ext    clip2d.Rect
	scale  float64
	offX   float64
	offY   float64
	height float64
}

// NewMapper builds a mapper fitting ext into a w-by-h pixel image.
func NewMapper(ext clip2d.Rect, w, h int) Mapper {
	scale := min(float64(w)/ext.Width(), float64(h)/ext.Height())
	return Mapper{
		ext:    ext,
		scale:  scale,
		offX:   (float64(w) - ext.Width()*scale) / 2,
		offY:   (float64(h) - ext.Height()*scale) / 2,
		height: float64(h),
	}
}

// ToScreen maps a world point to pixel coordinates.
func (m Mapper) ToScreen(p clip2d.Point) (x, y float64) {
	x = m.offX + (p.X-m.ext.XMin)*m.scale
	y = m.height - m.offY - (p.Y-m.ext.YMin)*m.scale
	return x, y
}

// Extent returns the world extent the mapper was built for.
func (m Mapper) Extent() clip2d.Rect {
	return m.ext
}

// Scale returns the pixels-per-world-unit factor.
func (m Mapper) Scale() float64 {
	return m.scale
}
