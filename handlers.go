package urdf

import "github.com/go-gl/mathgl/mgl64"

// JointContext carries manipulation event data.
type JointContext struct {
	Joint *Node
	Robot *Node // nearest robot root above Joint, may be nil
	// Point is the hovered point in Joint's local frame. Only set for
	// EventClick.
	Point mgl64.Vec3
	// Value is the joint value after the event.
	Value float64
}

// --- Handler registry ---

type jointHandler struct {
	id uint32
	fn func(JointContext)
}

type handlerRegistry struct {
	hover       []jointHandler
	unhover     []jointHandler
	dragStart   []jointHandler
	dragEnd     []jointHandler
	click       []jointHandler
	jointChange []jointHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if list := h.reg.list(h.event); list != nil {
		*list = removeJointHandler(*list, h.id)
	}
}

func (r *handlerRegistry) list(event EventType) *[]jointHandler {
	switch event {
	case EventHover:
		return &r.hover
	case EventUnhover:
		return &r.unhover
	case EventDragStart:
		return &r.dragStart
	case EventDragEnd:
		return &r.dragEnd
	case EventClick:
		return &r.click
	case EventJointChange:
		return &r.jointChange
	}
	return nil
}

func (r *handlerRegistry) add(event EventType, fn func(JointContext)) CallbackHandle {
	r.nextID++
	id := r.nextID
	list := r.list(event)
	*list = append(*list, jointHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

func removeJointHandler(s []jointHandler, id uint32) []jointHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = jointHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Registration ---

// OnHover registers a callback fired when a movable joint becomes hovered.
func (c *DragControls) OnHover(fn func(JointContext)) CallbackHandle {
	return c.handlers.add(EventHover, fn)
}

// OnUnhover registers a callback fired when the hovered joint loses hover.
// It always fires before the OnHover of the joint that replaces it.
func (c *DragControls) OnUnhover(fn func(JointContext)) CallbackHandle {
	return c.handlers.add(EventUnhover, fn)
}

// OnDragStart registers a callback fired when a hovered joint is grabbed.
func (c *DragControls) OnDragStart(fn func(JointContext)) CallbackHandle {
	return c.handlers.add(EventDragStart, fn)
}

// OnDragEnd registers a callback fired when the manipulated joint is released.
func (c *DragControls) OnDragEnd(fn func(JointContext)) CallbackHandle {
	return c.handlers.add(EventDragEnd, fn)
}

// OnClick registers a callback fired by Click over a hovered joint.
func (c *DragControls) OnClick(fn func(JointContext)) CallbackHandle {
	return c.handlers.add(EventClick, fn)
}

// OnJointChange registers a callback fired after a drag applies a new joint
// value. Mimic followers moved by the drag fire after their leader.
func (c *DragControls) OnJointChange(fn func(JointContext)) CallbackHandle {
	return c.handlers.add(EventJointChange, fn)
}

// --- Event dispatch ---

func (c *DragControls) fire(event EventType, ctx JointContext) {
	if ctx.Joint != nil {
		ctx.Value = ctx.Joint.JointValue()
	}
	for _, h := range *c.handlers.list(event) {
		h.fn(ctx)
	}
	c.emitManipulationEvent(event, ctx)
}

// --- Event store bridge ---

// EventStore is the interface for optional event-bus integration.
// When set on a DragControls, manipulation events are forwarded to it.
type EventStore interface {
	EmitEvent(event ManipulationEvent)
}

// ManipulationEvent carries manipulation data for an EventStore.
type ManipulationEvent struct {
	Type      EventType
	JointID   uint32
	JointName string
	RobotName string
	Value     float64
	Point     mgl64.Vec3 // valid for EventClick
}

// SetEventStore sets the optional event-bus bridge.
func (c *DragControls) SetEventStore(store EventStore) {
	c.store = store
}

func (c *DragControls) emitManipulationEvent(event EventType, ctx JointContext) {
	if c.store == nil || ctx.Joint == nil {
		return
	}
	ev := ManipulationEvent{
		Type:      event,
		JointID:   ctx.Joint.ID,
		JointName: ctx.Joint.Name,
		Value:     ctx.Value,
		Point:     ctx.Point,
	}
	if ctx.Robot != nil {
		ev.RobotName = ctx.Robot.Name
	}
	c.store.EmitEvent(ev)
}
