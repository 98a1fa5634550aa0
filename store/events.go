package store

import (
	"sync"

	"fixit-be/models"
)

// EventKind enum
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventDeleted EventKind = "deleted"
)

// Event is a change notification pushed to subscribers. It replaces
// the poll-and-diff refresh the original UI did.
type Event struct {
	Kind  EventKind    `json:"kind"`
	Issue models.Issue `json:"issue"`
}

type broker struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func newBroker() *broker {
	return &broker{subs: make(map[int]chan Event)}
}

// subscribe registers a buffered event channel and returns it with a
// cancel func. The channel is closed on cancel.
func (b *broker) subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan Event, 16)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// publish fans the event out without blocking; a subscriber that has
// fallen 16 events behind misses this one and catches up on its next
// list.
func (b *broker) publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
