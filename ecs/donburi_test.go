package ecs

import (
	"testing"

	urdf "github.com/linan1109/urdf-loaders-sub000"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []urdf.ManipulationEvent
	ManipulationEventType.Subscribe(world, func(w donburi.World, e urdf.ManipulationEvent) {
		received = append(received, e)
	})

	store.EmitEvent(urdf.ManipulationEvent{
		Type:      urdf.EventJointChange,
		JointID:   42,
		JointName: "elbow",
		Value:     0.5,
	})
	store.EmitEvent(urdf.ManipulationEvent{
		Type:  urdf.EventClick,
		Point: mgl64.Vec3{1, 2, 3},
	})

	// Events are queued until processed.
	ManipulationEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != urdf.EventJointChange || e0.JointID != 42 || e0.JointName != "elbow" || e0.Value != 0.5 {
		t.Errorf("event 0: %+v", e0)
	}
	e1 := received[1]
	if e1.Type != urdf.EventClick || e1.Point != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store urdf.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	ManipulationEventType.Subscribe(world, func(w donburi.World, e urdf.ManipulationEvent) {
		count1++
	})
	ManipulationEventType.Subscribe(world, func(w donburi.World, e urdf.ManipulationEvent) {
		count2++
	})

	store.EmitEvent(urdf.ManipulationEvent{Type: urdf.EventHover})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func buildSlider() (*urdf.Node, *urdf.Node) {
	robot := urdf.NewRobot("rail")
	slide := urdf.NewJoint("slide", urdf.JointPrismatic, mgl64.Vec3{1, 0, 0})
	robot.AddChild(slide)
	slide.AddChild(urdf.NewVisual("car", urdf.Box{Size: mgl64.Vec3{1, 1, 1}}))
	weld := urdf.NewJoint("weld", urdf.JointFixed, mgl64.Vec3{})
	robot.AddChild(weld)
	return robot, slide
}

func TestJointMirrorCreatesMovableJointEntities(t *testing.T) {
	world := donburi.NewWorld()
	robot, slide := buildSlider()
	m := NewJointMirror(world, robot)

	if got := world.Len(); got != 1 {
		t.Errorf("world.Len = %d, want 1 (fixed joints are skipped)", got)
	}
	st, ok := m.State(slide)
	if !ok {
		t.Fatal("slide should be mirrored")
	}
	if st.Name != "slide" || st.JointID != slide.ID || st.Value != 0 || st.Active {
		t.Errorf("state = %+v", st)
	}
	if _, ok := m.State(robot.FindByName("weld")); ok {
		t.Error("fixed joint should not be mirrored")
	}
}

func TestJointMirrorFollowsDrag(t *testing.T) {
	world := donburi.NewWorld()
	robot, slide := buildSlider()
	m := NewJointMirror(world, robot)

	c := urdf.NewDragControls(urdf.NewRaycaster(robot), nil)
	c.SetEventStore(NewDonburiStore(world))

	down := func(x float64) urdf.Ray {
		return urdf.NewRay(mgl64.Vec3{x, 0, 10}, mgl64.Vec3{0, 0, -1})
	}
	c.Update(down(0))
	c.SetGrabbed(true)
	c.MoveRay(down(0.4))
	events.ProcessAllEvents(world)

	st, _ := m.State(slide)
	if !st.Active {
		t.Error("joint should be active while grabbed")
	}
	if st.Value < 0.39 || st.Value > 0.41 {
		t.Errorf("Value = %v, want 0.4", st.Value)
	}

	c.SetGrabbed(false)
	events.ProcessAllEvents(world)
	st, _ = m.State(slide)
	if st.Active {
		t.Error("joint should be inactive after release")
	}
}

func TestJointMirrorFollowsMimicAndSync(t *testing.T) {
	world := donburi.NewWorld()
	robot, slide := buildSlider()
	twin := urdf.NewJoint("twin", urdf.JointPrismatic, mgl64.Vec3{-1, 0, 0})
	robot.AddChild(twin)
	twin.SetMimic(slide, 1, 0)
	m := NewJointMirror(world, robot)

	c := urdf.NewDragControls(urdf.NewRaycaster(robot), nil)
	c.SetEventStore(NewDonburiStore(world))
	c.Update(urdf.NewRay(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}))
	c.SetGrabbed(true)
	c.MoveRay(urdf.NewRay(mgl64.Vec3{0.4, 0, 10}, mgl64.Vec3{0, 0, -1}))
	c.SetGrabbed(false)
	events.ProcessAllEvents(world)

	st, _ := m.State(twin)
	if st.Value < 0.39 || st.Value > 0.41 {
		t.Errorf("twin Value = %v, want 0.4", st.Value)
	}

	for _, tw := range urdf.ResetPose(robot, 0.2, nil) {
		for !tw.Done {
			tw.Update(0.05)
		}
	}
	m.Sync()
	for _, j := range []*urdf.Node{slide, twin} {
		st, _ := m.State(j)
		if st.Value != 0 || j.JointValue() != 0 {
			t.Errorf("%s: mirror %v joint %v, want 0 after reset", j.Name, st.Value, j.JointValue())
		}
		if st.Active {
			t.Errorf("%s: Sync should not mark joints active", j.Name)
		}
	}

	if _, ok := m.State(nil); ok {
		t.Error("nil joint should not be mirrored")
	}
}
