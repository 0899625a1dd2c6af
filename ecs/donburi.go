// Package ecs provides ECS adapters for marquee board events.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/marquee"
)

// BoardEventType is the Donburi event type for marquee board events.
// Subscribe to this in your ECS systems to receive hover, stroke and paint
// events.
var BoardEventType = events.NewEventType[marquee.BoardEvent]()

// BoardComponent attaches a board to an entity so systems can find it.
var BoardComponent = donburi.NewComponentType[BoardData]()

// BoardData is the BoardComponent payload.
type BoardData struct {
	Board *marquee.Board
}

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Board events are published to BoardEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) marquee.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event marquee.BoardEvent) {
	BoardEventType.Publish(s.world, event)
}

// AddBoard creates an entity carrying b and routes b's events into world.
func AddBoard(world donburi.World, b *marquee.Board) donburi.Entity {
	e := world.Create(BoardComponent)
	BoardComponent.SetValue(world.Entry(e), BoardData{Board: b})
	b.SetEventSink(NewDonburiSink(world))
	return e
}

// Boards returns every board attached to an entity in world.
func Boards(world donburi.World) []*marquee.Board {
	var out []*marquee.Board
	BoardComponent.Each(world, func(entry *donburi.Entry) {
		out = append(out, BoardComponent.Get(entry).Board)
	})
	return out
}
