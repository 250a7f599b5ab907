package realtime

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// deliverTimeout bounds how long a single member may block the fan-out.
const deliverTimeout = 5 * time.Second

// RedisBus is the production Bus. Groups map to Redis Pub/Sub channels, so
// a publish from any server process reaches the members connected to every
// other process. Each process keeps one subscription per group with local
// members; the subscription is opened by the first local Join and closed by
// the last local Leave.
type RedisBus struct {
	rdb *redis.Client

	mu     sync.Mutex
	groups map[string]*groupSub
}

// groupSub tracks this process's share of one group: the Redis subscription
// and the local members messages fan out to.
type groupSub struct {
	pubsub  *redis.PubSub
	members map[Member]struct{}
}

// NewRedisBus builds a RedisBus on an already-connected client.
func NewRedisBus(rdb *redis.Client) *RedisBus {
	return &RedisBus{rdb: rdb, groups: make(map[string]*groupSub)}
}

// Join registers m as a member of group. The first member in this process
// opens the group's Redis subscription; if Redis is unreachable the error
// is returned and the member is not registered, because a connection that
// cannot be kept informed must not be admitted.
func (b *RedisBus) Join(ctx context.Context, group string, m Member) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	gs, ok := b.groups[group]
	if !ok {
		ps := b.rdb.Subscribe(ctx, group)
		// Receive waits for the subscription confirmation, so a dead Redis
		// fails the join here instead of silently dropping every publish.
		if _, err := ps.Receive(ctx); err != nil {
			_ = ps.Close()
			return err
		}
		gs = &groupSub{pubsub: ps, members: make(map[Member]struct{})}
		b.groups[group] = gs
		go b.fanOut(group, ps)
	}
	gs.members[m] = struct{}{}
	return nil
}

// Leave removes m from group. When the last local member leaves, the Redis
// subscription is closed and the group's fan-out goroutine exits. Removal
// happens before this method returns: a completed Leave precedes the
// fan-out of any later publish.
func (b *RedisBus) Leave(ctx context.Context, group string, m Member) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	gs, ok := b.groups[group]
	if !ok {
		return nil
	}
	delete(gs.members, m)
	if len(gs.members) == 0 {
		delete(b.groups, group)
		return gs.pubsub.Close()
	}
	return nil
}

// Publish sends payload to every member of group across all processes.
// Errors from Redis are surfaced to the caller.
func (b *RedisBus) Publish(ctx context.Context, group string, payload []byte) error {
	return b.rdb.Publish(ctx, group, payload).Err()
}

// fanOut pumps messages from the group's Redis channel to the local members.
// It exits when the subscription is closed by the last Leave. A failing
// member is logged and skipped; one dead connection cannot block the rest
// of the group.
func (b *RedisBus) fanOut(group string, ps *redis.PubSub) {
	for msg := range ps.Channel() {
		b.mu.Lock()
		gs, ok := b.groups[group]
		var members []Member
		if ok {
			members = make([]Member, 0, len(gs.members))
			for m := range gs.members {
				members = append(members, m)
			}
		}
		b.mu.Unlock()

		payload := []byte(msg.Payload)
		for _, m := range members {
			dctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
			if err := m.Deliver(dctx, payload); err != nil {
				log.Printf("realtime: dropping delivery to member of %s: %v", group, err)
			}
			cancel()
		}
	}
}
