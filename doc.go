// Package urdf provides pointer-driven joint manipulation for articulated
// robot models.
//
// A robot is a tree of [Node] values: a robot root, links, joints and
// visuals carrying pickable [Shape] geometry. [DragControls] takes picking
// rays, tracks which movable joint is under the pointer, and while grabbed
// converts pointer motion into joint value changes.
//
// # Quick start
//
//	robot := urdf.NewRobot("arm")
//	shoulder := urdf.NewJoint("shoulder", urdf.JointRevolute, mgl64.Vec3{0, 0, 1})
//	robot.AddChild(shoulder)
//	upper := urdf.NewLink("upper")
//	shoulder.AddChild(upper)
//	upper.AddChild(urdf.NewVisual("upper_geom", urdf.Box{Size: mgl64.Vec3{1, 0.2, 0.2}}))
//
//	ctl := urdf.NewDragControls(urdf.NewRaycaster(robot), nil)
//	ctl.OnJointChange(func(ctx urdf.JointContext) {
//		log.Printf("%s = %.3f", ctx.Joint.Name, ctx.Value)
//	})
//
//	ctl.Update(ray)       // hover
//	ctl.SetGrabbed(true)  // grab
//	ctl.MoveRay(nextRay)  // drag
//	ctl.SetGrabbed(false) // release
//
// # Delta solvers
//
// How a pointer motion maps to a joint delta is pluggable through
// [DeltaSolver]. [PlaneAngleSolver] measures the swept angle in the
// joint's rotation plane and the displacement along a prismatic axis.
// [CameraAwareSolver] switches to a screen-tangent heuristic when the
// rotation plane is seen nearly edge-on.
//
// # Pointer input
//
// [PointerControls] wraps DragControls with a [Camera] and a press, move,
// release state machine driven from screen coordinates. Synthetic input can
// be queued with InjectPress, InjectMove, InjectRelease, InjectClick and
// InjectDrag, or scripted with [LoadTestScript]. The ebiteninput package
// feeds it from Ebitengine's mouse and touch state.
//
// # Events
//
// Hover, unhover, drag start, drag end, click and joint change callbacks
// are registered on DragControls and return a [CallbackHandle]. An
// [EventStore] receives a [ManipulationEvent] for every fired event; the
// ecs package publishes them into a Donburi world.
package urdf
