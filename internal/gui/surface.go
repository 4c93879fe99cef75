package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface draws onto the current raylib frame. Calls are only valid
// between rl.BeginDrawing and rl.EndDrawing.
type Surface struct{}

func (Surface) Clear() { rl.ClearBackground(rl.Blank) }

func (Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	rl.DrawRectangleV(vec(x, y), vec(w, h), toColor(c))
}

func (Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	rl.DrawCircleV(vec(x, y), float32(r), toColor(c))
}

func (Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	rl.DrawLineEx(vec(x0, y0), vec(x1, y1), float32(width), toColor(c))
}

func vec(x, y float64) rl.Vector2 { return rl.NewVector2(float32(x), float32(y)) }

// raylib blends with straight alpha, so the components pass through unchanged.
func toColor(c color.NRGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }
