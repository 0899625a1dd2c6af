// Package ecs provides ECS adapters for marquee's board event system.
//
// The primary adapter is [NewDonburiSink], which bridges board events
// (hover, stroke start and end, painted lights) into a [Donburi] world as
// typed events. Subscribe to [BoardEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.AddBoard(world, board)
//	ecs.BoardEventType.Subscribe(world, func(w donburi.World, e marquee.BoardEvent) {
//	    // ...
//	})
//	// once per tick:
//	ecs.BoardEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
