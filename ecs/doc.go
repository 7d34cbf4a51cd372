// Package ecs provides ECS adapters for urdf's manipulation events.
//
// The primary adapter is [NewDonburiStore], which bridges urdf
// manipulation events (hover, drag, click, joint change) into a [Donburi]
// world as typed events. Subscribe to [ManipulationEventType] in your ECS
// systems to receive them. [NewJointMirror] keeps a [JointState] entity per
// movable joint in step with those events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	controls.SetEventStore(store)
//	mirror := ecs.NewJointMirror(world, robot)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
