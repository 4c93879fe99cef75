package export

import (
	"image"
	"image/color"
	"math"
)

// Raster is a render.Surface backed by an in-memory RGBA image. Shapes
// are alpha blended over what is already drawn.
type Raster struct {
	img *image.RGBA
}

// NewRaster returns a transparent w x h raster.
func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))}
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Clear() { clear(r.img.Pix) }

func (r *Raster) FillRect(x, y, w, h float64, c color.NRGBA) {
	b := r.img.Bounds().Intersect(image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	))
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			r.blend(px, py, c)
		}
	}
}

// FillCircle blends every pixel whose centre lies within radius of (x, y).
// A disc smaller than a pixel still covers the pixel under its centre.
func (r *Raster) FillCircle(x, y, radius float64, c color.NRGBA) {
	if radius < 0.5 {
		r.blend(int(math.Floor(x)), int(math.Floor(y)), c)
		return
	}
	x0, x1 := int(math.Floor(x-radius)), int(math.Ceil(x+radius))
	y0, y1 := int(math.Floor(y-radius)), int(math.Ceil(y+radius))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			dx, dy := float64(px)+0.5-x, float64(py)+0.5-y
			if dx*dx+dy*dy <= radius*radius {
				r.blend(px, py, c)
			}
		}
	}
}

// StrokeLine uses Bresenham for hairlines so no pixel is blended twice,
// and a distance test against the segment for wider strokes.
func (r *Raster) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if width <= 1.5 {
		r.hairline(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Floor(x1)), int(math.Floor(y1)), c)
		return
	}
	half := width / 2
	minX, maxX := int(math.Floor(min(x0, x1)-half)), int(math.Ceil(max(x0, x1)+half))
	minY, maxY := int(math.Floor(min(y0, y1)-half)), int(math.Ceil(max(y0, y1)+half))
	b := r.img.Bounds().Intersect(image.Rect(minX, minY, maxX+1, maxY+1))
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			if segmentDistance(float64(px)+0.5, float64(py)+0.5, x0, y0, x1, y1) <= half {
				r.blend(px, py, c)
			}
		}
	}
}

func (r *Raster) hairline(x0, y0, x1, y1 int, c color.NRGBA) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		r.blend(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// blend composites c over the premultiplied pixel at (x, y).
func (r *Raster) blend(x, y int, c color.NRGBA) {
	if !(image.Point{x, y}.In(r.img.Rect)) || c.A == 0 {
		return
	}
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+4 : i+4]
	a := uint32(c.A)
	inv := 255 - a
	p[0] = uint8((uint32(c.R)*a + uint32(p[0])*inv + 127) / 255)
	p[1] = uint8((uint32(c.G)*a + uint32(p[1])*inv + 127) / 255)
	p[2] = uint8((uint32(c.B)*a + uint32(p[2])*inv + 127) / 255)
	p[3] = uint8((255*a + uint32(p[3])*inv + 127) / 255)
}

func segmentDistance(px, py, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-x0, py-y0)
	}
	t := ((px-x0)*dx + (py-y0)*dy) / l2
	t = max(0, min(1, t))
	return math.Hypot(px-(x0+t*dx), py-(y0+t*dy))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
