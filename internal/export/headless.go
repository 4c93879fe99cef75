// Package export runs a network scene without a window and writes its
// frames as SVG or animated GIF.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/san-kum/nodeweb/internal/anim"
	"github.com/san-kum/nodeweb/internal/render"
	"github.com/san-kum/nodeweb/internal/scene"
)

var ErrNoFrames = errors.New("export: frame count must be positive")

// Headless starts s at w x h and runs n frames onto surf as fast as
// possible. after, when set, is called once each frame has been drawn.
func Headless(ctx context.Context, s *scene.Scene, w, h float64, n int, surf render.Surface, after func(frame int)) error {
	if n <= 0 {
		return ErrNoFrames
	}
	s.Start(w, h)

	loop := anim.NewLoop(0)
	frame := 0
	return loop.Run(ctx, func() {
		s.Frame(surf)
		if after != nil {
			after(frame)
		}
		frame++
		if frame == n {
			loop.Stop()
		}
	})
}

// WriteSVG runs n frames and writes the last one.
func WriteSVG(ctx context.Context, out io.Writer, s *scene.Scene, w, h float64, n int) error {
	svg := NewSVG(w, h)
	if err := Headless(ctx, s, w, h, n, svg, nil); err != nil {
		return err
	}
	if _, err := io.WriteString(out, svg.String()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// WriteGIF runs n frames and writes all of them as an animation paced at fps.
func WriteGIF(ctx context.Context, out io.Writer, s *scene.Scene, w, h, n, fps int) error {
	raster := NewRaster(w, h)
	rec := NewGIF(raster, fps)
	if err := Headless(ctx, s, float64(w), float64(h), n, raster, func(int) { rec.Capture() }); err != nil {
		return err
	}
	if err := rec.Encode(out); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
