package render

import "image/color"

// Surface is a 2D drawing target. Coordinates are canvas pixels with the
// origin at the top left.
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(x, y, r float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
}

// Op identifies a recorded Surface call.
type Op int

const (
	OpClear Op = iota
	OpRect
	OpCircle
	OpLine
)

// Call is one recorded drawing operation.
type Call struct {
	Op     Op
	Coords [4]float64
	Size   float64
	Color  color.NRGBA
}

// Recorder is a Surface that keeps the calls of the current frame. Clear
// starts a new frame, so a recorder never holds more than one.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

func (r *Recorder) Clear() { r.Calls = append(r.Calls[:0], Call{Op: OpClear}) }

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpRect, Coords: [4]float64{x, y, w, h}, Color: c})
}

func (r *Recorder) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, Coords: [4]float64{x, y}, Size: radius, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpLine, Coords: [4]float64{x0, y0, x1, y1}, Size: width, Color: c})
}

// Count returns how many recorded calls are op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Discard is a Surface that draws nothing. Runs that only observe the
// simulation use it.
type Discard struct{}

func (Discard) Clear()                                              {}
func (Discard) FillRect(x, y, w, h float64, c color.NRGBA)          {}
func (Discard) FillCircle(x, y, r float64, c color.NRGBA)           {}
func (Discard) StrokeLine(x0, y0, x1, y1, w float64, c color.NRGBA) {}
