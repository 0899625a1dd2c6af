package marquee

// EventType identifies a board interaction event.
type EventType uint8

const (
	EventPointerEnter EventType = iota // pointer entered the board
	EventPointerLeave                  // pointer left the board
	EventStrokeStart                   // press started a stroke
	EventPaint                         // a stroke changed one light
	EventStrokeEnd                     // stroke ended by release, leave or disable
)

var eventTypeNames = [...]string{
	EventPointerEnter: "pointer-enter",
	EventPointerLeave: "pointer-leave",
	EventStrokeStart:  "stroke-start",
	EventPaint:        "paint",
	EventStrokeEnd:    "stroke-end",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// BoardEvent carries interaction data for an EventSink.
type BoardEvent struct {
	Type  EventType
	Board *Board
	// X and Y are board-local pixels (EventStrokeStart).
	X, Y float64
	// Row and Col are pattern coordinates and Cell the value written
	// (EventPaint).
	Row, Col int
	Cell     Cell
}

// EventSink is the interface for optional event integration, such as the
// ECS bridge in package ecs. When set on a Board, overlay events are
// forwarded to it synchronously.
type EventSink interface {
	EmitEvent(event BoardEvent)
}

// SetEventSink sets the optional event bridge. Nil removes it.
func (b *Board) SetEventSink(sink EventSink) {
	b.sink = sink
}

func (b *Board) emit(e BoardEvent) {
	if b.sink == nil {
		return
	}
	e.Board = b
	b.sink.EmitEvent(e)
}
