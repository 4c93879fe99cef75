package export

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/gif"
	"strings"
	"testing"

	"github.com/san-kum/nodeweb/internal/network"
	"github.com/san-kum/nodeweb/internal/scene"
)

func newScene(t *testing.T) *scene.Scene {
	t.Helper()
	opts := scene.DefaultOptions()
	opts.NetworkColor = "#3a7bd5"
	opts.Seed = 42
	s, err := scene.New(opts)
	if err != nil {
		t.Fatalf("scene.New: %v", err)
	}
	return s
}

func TestSVGElements(t *testing.T) {
	s := NewSVG(100, 50)
	s.FillRect(0, 0, 100, 50, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	s.FillCircle(10, 20, 2, color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 128})
	s.StrokeLine(0, 0, 10, 10, 0.8, color.NRGBA{A: 255})

	out := s.String()
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"`,
		`<rect x="0.0" y="0.0" width="100.0" height="50.0" fill="#ffffff"/>`,
		`<circle cx="10.0" cy="20.0" r="2.0" fill="#1a2b3c" fill-opacity="0.502"/>`,
		`<line x1="0.0" y1="0.0" x2="10.0" y2="10.0" stroke="#000000" stroke-width="0.80"/>`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %s", want)
		}
	}
	if s.Elements() != 3 {
		t.Errorf("elements = %d, want 3", s.Elements())
	}

	s.Clear()
	if s.Elements() != 0 || strings.Contains(s.String(), "<circle") {
		t.Error("Clear kept elements")
	}
}

func TestRasterBlend(t *testing.T) {
	r := NewRaster(4, 4)
	r.FillRect(0, 0, 4, 4, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	r.FillCircle(1, 1, 0.4, color.NRGBA{R: 0, G: 0, B: 0, A: 128})

	got := r.Image().RGBAAt(1, 1)
	if got.R != 127 || got.A != 255 {
		t.Errorf("blended pixel = %v, want R=127 A=255", got)
	}
	if r.Image().RGBAAt(0, 0).R != 255 {
		t.Error("neighbouring pixel changed")
	}
}

func TestRasterHairline(t *testing.T) {
	r := NewRaster(10, 10)
	r.StrokeLine(0, 5, 9, 5, 0.8, color.NRGBA{R: 255, A: 255})
	for x := 0; x < 10; x++ {
		if r.Image().RGBAAt(x, 5).R != 255 {
			t.Fatalf("pixel (%d,5) not drawn", x)
		}
	}
	if r.Image().RGBAAt(5, 4).A != 0 {
		t.Error("hairline drew outside its row")
	}
}

func TestRasterWideLine(t *testing.T) {
	r := NewRaster(10, 10)
	r.StrokeLine(0, 5, 10, 5, 4, color.NRGBA{G: 255, A: 255})
	for _, y := range []int{3, 4, 5, 6} {
		if r.Image().RGBAAt(5, y).G != 255 {
			t.Errorf("pixel (5,%d) not drawn", y)
		}
	}
	if r.Image().RGBAAt(5, 0).A != 0 {
		t.Error("wide line drew too far")
	}
}

func TestRasterIgnoresOutOfBounds(t *testing.T) {
	r := NewRaster(4, 4)
	r.FillCircle(-20, -20, 3, color.NRGBA{A: 255})
	r.StrokeLine(-50, -50, 100, -50, 3, color.NRGBA{A: 255})
	for _, v := range r.Image().Pix {
		if v != 0 {
			t.Fatal("drawing outside the image touched pixels")
		}
	}
}

func TestHeadlessRunsFrames(t *testing.T) {
	s := newScene(t)
	var frames []int
	err := Headless(context.Background(), s, 640, 480, 5, NewSVG(640, 480), func(i int) {
		frames = append(frames, i)
	})
	if err != nil {
		t.Fatalf("Headless: %v", err)
	}
	if len(frames) != 5 || frames[4] != 4 {
		t.Errorf("frames = %v", frames)
	}
	if !s.Started() {
		t.Error("scene not started")
	}
}

func TestHeadlessRejectsZeroFrames(t *testing.T) {
	err := Headless(context.Background(), newScene(t), 10, 10, 0, NewSVG(10, 10), nil)
	if !errors.Is(err, ErrNoFrames) {
		t.Errorf("err = %v, want ErrNoFrames", err)
	}
}

func TestHeadlessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Headless(ctx, newScene(t), 10, 10, 3, NewSVG(10, 10), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestWriteSVG(t *testing.T) {
	s := newScene(t)
	s.Engine().Resize(640, 480)
	s.Engine().Add(network.Node{X: 320, Y: 240, Opacity: 1})

	var buf bytes.Buffer
	if err := WriteSVG(context.Background(), &buf, s, 640, 480, 1); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>") {
		t.Error("not a complete svg document")
	}
	if !strings.Contains(out, `fill="#3a7bd5"`) {
		t.Error("svg missing node color")
	}
}

func TestWriteGIF(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGIF(context.Background(), &buf, newScene(t), 200, 100, 4, 25); err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 4 {
		t.Errorf("frames = %d, want 4", len(g.Image))
	}
	if g.Delay[0] != 4 {
		t.Errorf("delay = %d, want 4", g.Delay[0])
	}
	if b := g.Image[0].Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("bounds = %v", b)
	}
}
