// Package ebiteninput feeds Ebitengine mouse and touch state into
// urdf.PointerControls.
package ebiteninput

import (
	urdf "github.com/linan1109/urdf-loaders-sub000"

	"github.com/hajimehoshi/ebiten/v2"
)

// Adapter polls Ebitengine input once per frame. The left mouse button
// drives the controls; while a touch is active the first touch takes over
// until it ends.
type Adapter struct {
	controls *urdf.PointerControls

	touchIDs []ebiten.TouchID
	touch    ebiten.TouchID
	touching bool
	lastTX   float64
	lastTY   float64
}

// New returns an Adapter driving controls.
func New(controls *urdf.PointerControls) *Adapter {
	return &Adapter{controls: controls}
}

// Update processes one frame of input. Injected events queued on the
// controls take precedence over device input for the frame they are
// consumed in. Call from ebiten.Game.Update.
func (a *Adapter) Update() {
	if a.controls.Update() {
		return
	}
	if a.processTouch() {
		return
	}
	mx, my := ebiten.CursorPosition()
	a.controls.ProcessPointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// processTouch tracks the first active touch. It returns true if touch
// input was handled this frame.
func (a *Adapter) processTouch() bool {
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])

	if a.touching {
		for _, id := range a.touchIDs {
			if id == a.touch {
				tx, ty := ebiten.TouchPosition(id)
				a.lastTX, a.lastTY = float64(tx), float64(ty)
				a.controls.ProcessPointer(a.lastTX, a.lastTY, true)
				return true
			}
		}
		// Touch lifted.
		a.touching = false
		a.controls.ProcessPointer(a.lastTX, a.lastTY, false)
		return true
	}

	if len(a.touchIDs) == 0 {
		return false
	}
	a.touch = a.touchIDs[0]
	a.touching = true
	tx, ty := ebiten.TouchPosition(a.touch)
	a.lastTX, a.lastTY = float64(tx), float64(ty)
	// Hover first so the press grabs what is under the finger.
	a.controls.ProcessPointer(a.lastTX, a.lastTY, false)
	a.controls.ProcessPointer(a.lastTX, a.lastTY, true)
	return true
}
