// Package ecs provides ECS adapters for urdf.
package ecs

import (
	urdf "github.com/linan1109/urdf-loaders-sub000"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ManipulationEventType is the Donburi event type for joint manipulation
// events. Subscribe to this in your ECS systems to receive hover, drag,
// click and joint change events.
var ManipulationEventType = events.NewEventType[urdf.ManipulationEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Manipulation events are published to ManipulationEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) urdf.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event urdf.ManipulationEvent) {
	ManipulationEventType.Publish(s.world, event)
}

// JointStateData mirrors one movable joint inside the ECS world.
type JointStateData struct {
	JointID uint32
	Name    string
	Value   float64
	Active  bool // true between drag start and drag end
}

// JointState is the component holding JointStateData.
var JointState = donburi.NewComponentType[JointStateData]()

// JointMirror keeps one JointState entity per movable joint of a robot and
// updates them from processed manipulation events.
type JointMirror struct {
	world    donburi.World
	joints   []*urdf.Node
	entities map[uint32]donburi.Entity
}

// NewJointMirror creates a JointState entity for every movable joint under
// root and subscribes to ManipulationEventType so the entities follow joint
// changes whenever events are processed.
func NewJointMirror(world donburi.World, root *urdf.Node) *JointMirror {
	m := &JointMirror{world: world, entities: make(map[uint32]donburi.Entity)}
	for _, j := range root.Joints() {
		if !j.IsMovableJoint() {
			continue
		}
		e := world.Create(JointState)
		JointState.SetValue(world.Entry(e), JointStateData{
			JointID: j.ID,
			Name:    j.Name,
			Value:   j.JointValue(),
		})
		m.entities[j.ID] = e
		m.joints = append(m.joints, j)
	}
	ManipulationEventType.Subscribe(world, m.onEvent)
	return m
}

// Entity returns the entity mirroring joint, if any.
func (m *JointMirror) Entity(joint *urdf.Node) (donburi.Entity, bool) {
	if joint == nil {
		return donburi.Null, false
	}
	e, ok := m.entities[joint.ID]
	return e, ok
}

// State returns the mirrored state for joint.
func (m *JointMirror) State(joint *urdf.Node) (JointStateData, bool) {
	if joint == nil {
		return JointStateData{}, false
	}
	e, ok := m.entities[joint.ID]
	if !ok || !m.world.Valid(e) {
		return JointStateData{}, false
	}
	return *JointState.Get(m.world.Entry(e)), true
}

// Sync copies every mirrored joint's current value into its entity. Use it
// for changes that bypass DragControls, such as tweens or direct
// SetJointValue calls. Active is left alone.
func (m *JointMirror) Sync() {
	for _, j := range m.joints {
		e := m.entities[j.ID]
		if !m.world.Valid(e) {
			continue
		}
		JointState.Get(m.world.Entry(e)).Value = j.JointValue()
	}
}

func (m *JointMirror) onEvent(w donburi.World, ev urdf.ManipulationEvent) {
	e, ok := m.entities[ev.JointID]
	if !ok || !w.Valid(e) {
		return
	}
	st := JointState.Get(w.Entry(e))
	switch ev.Type {
	case urdf.EventDragStart:
		st.Active = true
	case urdf.EventDragEnd:
		st.Active = false
	}
	st.Value = ev.Value
}
