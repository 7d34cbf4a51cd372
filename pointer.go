package urdf

import (
	"math"
)

// PointerControls is the pointer-driven front end of DragControls. It turns
// screen-space pointer input into picking rays through a Camera, grabs on
// press, drags on move, releases on release and reports a click when a
// press is released within the drag dead zone.
type PointerControls struct {
	ctl *DragControls
	cam *Camera

	deadZone float64

	// Per-pointer state.
	down           bool
	dragging       bool
	outside        bool // press began outside the camera viewport
	hasLast        bool
	startX, startY float64
	lastX, lastY   float64

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// NewPointerControls builds DragControls over query using a
// CameraAwareSolver for cam, configured from cfg.
func NewPointerControls(query SceneQuery, cam *Camera, cfg Config) *PointerControls {
	solver := NewCameraAwareSolver(cam, cfg.CoplanarThreshold)
	return &PointerControls{
		ctl:      NewDragControls(query, solver),
		cam:      cam,
		deadZone: cfg.DragDeadZone,
	}
}

// Controls returns the underlying DragControls for callback registration.
func (p *PointerControls) Controls() *DragControls {
	return p.ctl
}

// Camera returns the camera rays are cast from.
func (p *PointerControls) Camera() *Camera {
	return p.cam
}

// SetDragDeadZone sets the minimum movement in pixels before a press stops
// counting as a click.
func (p *PointerControls) SetDragDeadZone(pixels float64) {
	p.deadZone = pixels
}

// ProcessPointer runs the pointer state machine for one input sample.
func (p *PointerControls) ProcessPointer(sx, sy float64, pressed bool) {
	moved := !p.hasLast || sx != p.lastX || sy != p.lastY
	if moved {
		p.ctl.MoveRay(p.cam.ScreenToRay(sx, sy))
	}
	p.lastX, p.lastY, p.hasLast = sx, sy, true

	switch {
	case pressed && !p.down:
		// Just pressed.
		p.down = true
		p.dragging = false
		p.startX, p.startY = sx, sy
		p.outside = !p.inViewport(sx, sy)
		if p.outside {
			return
		}
		p.ctl.SetGrabbed(true)
	case p.outside:
		// Presses that start outside the viewport neither grab nor click.
		if !pressed {
			p.down = false
			p.outside = false
		}
	case pressed && p.down:
		if !p.dragging && math.Hypot(sx-p.startX, sy-p.startY) > p.deadZone {
			p.dragging = true
		}
	case !pressed && p.down:
		// Just released.
		if !p.dragging && math.Hypot(sx-p.startX, sy-p.startY) > p.deadZone {
			p.dragging = true
		}
		p.ctl.SetGrabbed(false)
		if !p.dragging {
			p.ctl.debugf("click at (%.1f, %.1f)", sx, sy)
			p.ctl.Click()
		}
		p.down = false
		p.dragging = false
	}
}

// inViewport reports whether a screen point lies in the camera viewport.
// An empty viewport accepts every point.
func (p *PointerControls) inViewport(sx, sy float64) bool {
	vp := p.cam.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return true
	}
	return vp.Contains(sx, sy)
}

// Update consumes one injected pointer event, if any, after advancing an
// attached TestRunner. It returns true if an event was consumed so that
// real device input can be skipped for this frame.
func (p *PointerControls) Update() bool {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	return p.processInjectedInput()
}
