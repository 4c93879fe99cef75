// Package gui hosts a network scene in a resizable raylib window.
package gui

import (
	"context"
	"errors"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/nodeweb/internal/anim"
	"github.com/san-kum/nodeweb/internal/metrics"
	"github.com/san-kum/nodeweb/internal/scene"
)

const (
	telemetryCapacity = 200
	fontSize          = 16
)

// Window describes the window to open.
type Window struct {
	Title  string
	Width  int
	Height int
	FPS    int
}

// App owns the scene while the window is open.
type App struct {
	Scene   *scene.Scene
	Running bool
	ShowHUD bool

	loop    *anim.Loop
	inside  bool
	edges   int
	nodes   *metrics.History
	opacity *metrics.MeanOpacity
	text    rl.Color
	dim     rl.Color
}

// initWindow opens a resizable window and lets raylib pace frames at fps.
func initWindow(w Window) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetTargetFPS(int32(w.FPS))
	rl.SetExitKey(0)
}

// NewApp wires the HUD metrics into s. It needs an open window.
func NewApp(s *scene.Scene) *App {
	st := s.Style()
	app := &App{
		Scene:   s,
		Running: true,
		ShowHUD: true,
		loop:    anim.NewLoop(0),
		nodes:   metrics.NewHistory(metrics.NewNodeCount(), telemetryCapacity),
		opacity: metrics.NewMeanOpacity(),
		text:    rl.NewColor(st.Node.R, st.Node.G, st.Node.B, 255),
		dim:     rl.NewColor(st.Node.R, st.Node.G, st.Node.B, 120),
	}
	s.AddObserver(metrics.Set{app.nodes, app.opacity})
	return app
}

// Run opens a window showing s and blocks until it is closed or ctx ends.
// It must be called from the main goroutine.
func Run(ctx context.Context, s *scene.Scene, w Window) error {
	initWindow(w)
	defer rl.CloseWindow()

	app := NewApp(s)
	s.Start(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	log.Printf("window %dx%d, %d nodes", rl.GetScreenWidth(), rl.GetScreenHeight(), s.Engine().Particles())

	err := app.RunLoop(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// RunLoop drives update and draw on the calling goroutine. raylib throttles
// each frame in EndDrawing, so the loop itself runs unpaced.
func (a *App) RunLoop(ctx context.Context) error {
	return a.loop.Run(ctx, func() {
		if rl.WindowShouldClose() {
			a.loop.Stop()
			return
		}
		a.Update()
		a.Draw()
	})
}

// Update polls input and forwards resize and pointer changes to the scene.
func (a *App) Update() {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.loop.Stop()
	case rl.IsKeyPressed(rl.KeySpace):
		a.Running = !a.Running
	case rl.IsKeyPressed(rl.KeyH):
		a.ShowHUD = !a.ShowHUD
	}

	if rl.IsWindowResized() {
		a.Scene.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	over := rl.IsCursorOnScreen() && rl.IsWindowFocused()
	switch {
	case over:
		p := rl.GetMousePosition()
		a.Scene.PointerMove(float64(p.X), float64(p.Y))
		if !a.inside {
			a.Scene.PointerEnter()
			a.inside = true
		}
	case a.inside:
		a.Scene.PointerLeave()
		a.inside = false
	}
}

// Draw renders one frame, advancing the scene unless paused.
func (a *App) Draw() {
	rl.BeginDrawing()

	if a.Running {
		a.edges = a.Scene.Frame(Surface{})
	} else {
		a.edges = a.Scene.Render(Surface{})
	}
	if a.ShowHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

// DrawHUD overlays counts, the node telemetry and key help.
func (a *App) DrawHUD() {
	eng := a.Scene.Engine()
	h := int32(rl.GetScreenHeight())

	rl.DrawText("nodeweb", 30, 30, 24, a.text)
	rl.DrawText(fmt.Sprintf("%d / %d nodes  %d edges  opacity %.2f",
		eng.Particles(), eng.Target(), a.edges, a.opacity.Value()), 30, 62, fontSize, a.dim)

	if !a.Running {
		rl.DrawText("PAUSED", int32(rl.GetScreenWidth())-110, 30, fontSize, a.text)
	}

	a.DrawTelemetry(30, h-110, 300, 50)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, h-40, 14, a.dim)
	rl.DrawText("[SPACE] PAUSE  [H] HUD  [Q] QUIT", 140, h-40, 14, a.dim)
}

// DrawTelemetry plots the node count history as a line strip.
func (a *App) DrawTelemetry(x, y, width, height int32) {
	values := a.nodes.Values()
	if len(values) < 2 {
		return
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(values))
	for i, v := range values {
		px := float32(x) + float32(i)/float32(telemetryCapacity)*float32(width)
		norm := (v - minVal) / (maxVal - minVal)
		py := float32(y+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, a.dim)
}
