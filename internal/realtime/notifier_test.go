package realtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyhours/backend/internal/model"
)

func TestNotifyNewOrderReachesEstablishmentGroup(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	partner := &recordingMember{}
	bystander := &recordingMember{}
	require.NoError(t, bus.Join(ctx, Group(4), partner))
	require.NoError(t, bus.Join(ctx, Group(9), bystander))

	order := &model.Order{ID: 21, EstablishmentID: 4, BeverageID: 3, ClientID: 11, Status: model.StatusPending}
	require.NoError(t, NotifyNewOrder(ctx, bus, order, "Mojito"))

	frames := decodeFrames(t, partner.received())
	require.Len(t, frames, 1)
	got := frames[0]
	assert.Equal(t, TypeOrderCreated, got.Type)
	assert.Equal(t, uint64(21), got.OrderID)
	assert.Equal(t, uint64(4), got.EstablishmentID)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.NotEmpty(t, got.Details)
	assert.Contains(t, got.Details, "Mojito")

	// other establishments never see it
	assert.Empty(t, bystander.received())
}
