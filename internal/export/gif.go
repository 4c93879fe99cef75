package export

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// GIF captures frames from a Raster and encodes them as a looping animation.
type GIF struct {
	raster *Raster
	delay  int
	frames []*image.Paletted
}

// NewGIF records frames drawn on r, shown for 1/fps seconds each.
func NewGIF(r *Raster, fps int) *GIF {
	delay := 2
	if fps > 0 {
		delay = max(100/fps, 2)
	}
	return &GIF{raster: r, delay: delay}
}

func (g *GIF) Len() int { return len(g.frames) }

// Capture appends the raster's current contents as a frame.
func (g *GIF) Capture() {
	src := g.raster.Image()
	frame := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, src.Bounds(), src, image.Point{})
	g.frames = append(g.frames, frame)
}

// Encode writes every captured frame as a looping GIF.
func (g *GIF) Encode(w io.Writer) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range g.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.delay)
	}
	return gif.EncodeAll(w, &anim)
}
