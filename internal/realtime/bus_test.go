package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMember collects delivered payloads.
type recordingMember struct {
	mu     sync.Mutex
	frames []string
	err    error // returned from Deliver when set
}

func (m *recordingMember) Deliver(_ context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.frames = append(m.frames, string(payload))
	return nil
}

func (m *recordingMember) received() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.frames...)
}

func TestMemoryBusDeliversToAllMembers(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()
	g := Group(1)
	c1, c2 := &recordingMember{}, &recordingMember{}

	require.NoError(t, bus.Join(ctx, g, c1))
	require.NoError(t, bus.Join(ctx, g, c2))
	require.NoError(t, bus.Publish(ctx, g, []byte("m1")))

	assert.Equal(t, []string{"m1"}, c1.received())
	assert.Equal(t, []string{"m1"}, c2.received())
}

func TestMemoryBusLeaveStopsDelivery(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()
	g := Group(1)
	c1, c2 := &recordingMember{}, &recordingMember{}

	require.NoError(t, bus.Join(ctx, g, c1))
	require.NoError(t, bus.Join(ctx, g, c2))
	require.NoError(t, bus.Publish(ctx, g, []byte("m1")))
	require.NoError(t, bus.Leave(ctx, g, c1))
	require.NoError(t, bus.Publish(ctx, g, []byte("m2")))

	assert.Equal(t, []string{"m1"}, c1.received(), "left member must not see m2")
	assert.Equal(t, []string{"m1", "m2"}, c2.received())
}

func TestMemoryBusGroupsAreIsolated(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()
	c1, c2 := &recordingMember{}, &recordingMember{}

	require.NoError(t, bus.Join(ctx, Group(1), c1))
	require.NoError(t, bus.Join(ctx, Group(2), c2))
	require.NoError(t, bus.Publish(ctx, Group(1), []byte("m1")))

	assert.Equal(t, []string{"m1"}, c1.received())
	assert.Empty(t, c2.received())
}

func TestMemoryBusDeadMemberDoesNotBlockGroup(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()
	g := Group(1)
	dead := &recordingMember{err: errors.New("connection gone")}
	alive := &recordingMember{}

	require.NoError(t, bus.Join(ctx, g, dead))
	require.NoError(t, bus.Join(ctx, g, alive))
	require.NoError(t, bus.Publish(ctx, g, []byte("m1")))

	assert.Equal(t, []string{"m1"}, alive.received())
}

func TestMemoryBusPublishToEmptyGroup(t *testing.T) {
	bus := NewMemoryBus()
	// nobody listening is not an error: notification is best-effort
	assert.NoError(t, bus.Publish(context.Background(), Group(9), []byte("m1")))
}

func TestMemoryBusLeaveUnknownMember(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Leave(context.Background(), Group(1), &recordingMember{}))
}
