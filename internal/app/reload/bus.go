package reload

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"planner/internal/core/domain"
	"planner/internal/core/ports"
)

// Signal tells a subscriber its data for Entity is stale. Marker is unique
// per publish and carries no meaning beyond that.
type Signal struct {
	Entity domain.Entity
	ID     uint64
	Marker string
	At     time.Time
}

type subscriber struct {
	entity domain.Entity
	ch     chan Signal
}

// Bus fans out change signals to subscribers of an entity. Each subscriber
// has a one-slot buffer: an unread signal already means "re-fetch", so later
// ones are coalesced into it.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]subscriber
}

var _ ports.ReloadPublisher = (*Bus)(nil)

func NewBus() *Bus {
	return &Bus{subs: make(map[int]subscriber)}
}

func (b *Bus) Subscribe(entity domain.Entity) (<-chan Signal, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Signal, 1)
	b.subs[id] = subscriber{entity: entity, ch: ch}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			close(ch)
			b.mu.Unlock()
		})
	}
}

func (b *Bus) Publish(entity domain.Entity, id uint64) {
	signal := Signal{
		Entity: entity,
		ID:     id,
		Marker: uuid.NewString(),
		At:     time.Now(),
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if sub.entity != entity {
			continue
		}
		select {
		case sub.ch <- signal:
		default:
		}
	}
}
