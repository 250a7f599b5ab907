package realtime

import (
	"context"
	"log"
	"sync"
)

// MemoryBus is a single-process Bus used by tests and local development
// without Redis. Delivery is synchronous: Publish returns after every
// member present at call time has been offered the payload. It honors the
// same contract as RedisBus apart from cross-process visibility.
type MemoryBus struct {
	mu     sync.Mutex
	groups map[string]map[Member]struct{}
}

// NewMemoryBus returns an empty in-process bus.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{groups: make(map[string]map[Member]struct{})}
}

// Join registers m as a member of group.
func (b *MemoryBus) Join(ctx context.Context, group string, m Member) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	g, ok := b.groups[group]
	if !ok {
		g = make(map[Member]struct{})
		b.groups[group] = g
	}
	g[m] = struct{}{}
	return nil
}

// Leave removes m from group, discarding the group once it is empty.
func (b *MemoryBus) Leave(ctx context.Context, group string, m Member) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	g, ok := b.groups[group]
	if !ok {
		return nil
	}
	delete(g, m)
	if len(g) == 0 {
		delete(b.groups, group)
	}
	return nil
}

// Publish delivers payload to every current member of group. Per-member
// failures are logged and skipped, matching the production bus.
func (b *MemoryBus) Publish(ctx context.Context, group string, payload []byte) error {
	b.mu.Lock()
	members := make([]Member, 0, len(b.groups[group]))
	for m := range b.groups[group] {
		members = append(members, m)
	}
	b.mu.Unlock()

	for _, m := range members {
		if err := m.Deliver(ctx, payload); err != nil {
			log.Printf("realtime: dropping delivery to member of %s: %v", group, err)
		}
	}
	return nil
}
