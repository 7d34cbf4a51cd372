package urdf

// syntheticPointerEvent represents a single injected pointer event in
// screen coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Update call.
func (p *PointerControls) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (p *PointerControls) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectHover queues a pointer move with no button held.
func (p *PointerControls) InjectHover(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (p *PointerControls) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (p *PointerControls) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). Minimum frames is 2 (press + release).
func (p *PointerControls) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (p *PointerControls) Pending() int {
	return len(p.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through ProcessPointer.
func (p *PointerControls) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	p.ProcessPointer(evt.screenX, evt.screenY, evt.pressed)
	return true
}
