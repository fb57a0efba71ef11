//go:build !headless

package render

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gordonklaus/persona"
)

// A Window shows the live stack.  Update runs on ebiten's game goroutine,
// so everything it calls (Poll, Loop, OnKey) owns the synth for its
// duration.  A non-nil error from Poll, or false from OnKey, closes the
// window.
type Window struct {
	Canvas *Canvas
	Loop   *persona.FrameLoop
	View   func() (persona.VisualFrame, Settings)
	Poll   func() error
	OnKey  func(ebiten.Key) bool

	start time.Time
	keys  []ebiten.Key
}

func NewWindow(c *Canvas, loop *persona.FrameLoop, view func() (persona.VisualFrame, Settings)) *Window {
	return &Window{Canvas: c, Loop: loop, View: view, start: time.Now()}
}

// Run blocks until the window is closed or Escape is pressed.
func (w *Window) Run(title string) error {
	b := w.Canvas.Image().Bounds()
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if w.Poll != nil {
		if err := w.Poll(); err != nil {
			return err
		}
	}
	if w.OnKey != nil {
		w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
		for _, k := range w.keys {
			if !w.OnKey(k) {
				return ebiten.Termination
			}
		}
	}
	if w.Loop != nil {
		w.Loop.Tick(time.Now())
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	f, s := w.View()
	img := w.Canvas.Draw(&f, s, time.Since(w.start).Seconds())
	screen.WritePixels(img.Pix)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.Canvas.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
