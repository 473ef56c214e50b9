package ecs

import "github.com/jakecoffman/cp"

// EventType names a tick event.
type EventType string

const (
	EventJump         EventType = "jump"
	EventLand         EventType = "land"
	EventFire         EventType = "fire"
	EventBulletCulled EventType = "bullet_culled"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Tick uint64
	Data any
}

// JumpEvent is the payload of EventJump.
type JumpEvent struct {
	Count int
}

// LandEvent is the payload of EventLand.
type LandEvent struct {
	Position cp.Vector
}

// FireEvent is the payload of EventFire.
type FireEvent struct {
	Bullet Entity
	Center cp.Vector
	Damage float64
}

// CullEvent is the payload of EventBulletCulled.
type CullEvent struct {
	Bullet Entity
	Center cp.Vector
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
