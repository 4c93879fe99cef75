package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Fatal("dot not set")
	}
	if c.Lit() != 1 {
		t.Errorf("lit = %d, want 1", c.Lit())
	}
	c.Unset(3, 5)
	if c.IsSet(3, 5) || c.Lit() != 0 {
		t.Error("dot still set after Unset")
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		c.Set(p[0], p[1])
		if c.IsSet(p[0], p[1]) {
			t.Errorf("IsSet(%d, %d) = true", p[0], p[1])
		}
	}
	if c.Lit() != 0 {
		t.Errorf("lit = %d, want 0", c.Lit())
	}
}

func TestCanvasDrawLine(t *testing.T) {
	tests := []struct {
		name   string
		stride int
		want   int
	}{
		{"solid", 1, 10},
		{"dotted", 2, 5},
		{"zero stride is solid", 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(10, 2)
			c.DrawLine(0, 0, 9, 0, tt.stride)
			if got := c.Lit(); got != tt.want {
				t.Errorf("lit = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCanvasDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(2, 3, 15, 17, 1)
	if !c.IsSet(2, 3) || !c.IsSet(15, 17) {
		t.Error("line endpoints not set")
	}
}

func TestCanvasFillDisc(t *testing.T) {
	tests := []struct {
		r    float64
		want int
	}{
		{-0.5, 1},
		{0, 1},
		{1, 5},
		{1.5, 9},
	}
	for _, tt := range tests {
		c := NewCanvas(10, 5)
		c.FillDisc(8, 8, tt.r)
		if got := c.Lit(); got != tt.want {
			t.Errorf("r=%v: lit = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)
	c.Resize(6, 3)
	if w, h := c.Dots(); w != 12 || h != 12 {
		t.Errorf("dots = %dx%d, want 12x12", w, h)
	}
	if c.Lit() != 0 {
		t.Error("resize did not clear")
	}

	c.Resize(0, -3)
	if c.Width != 1 || c.Height != 1 {
		t.Errorf("size = %dx%d, want 1x1", c.Width, c.Height)
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0)
	rows := strings.Split(c.String(), "\n")
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0] != "⠁⠀⠀" {
		t.Errorf("row 0 = %q", rows[0])
	}
}
