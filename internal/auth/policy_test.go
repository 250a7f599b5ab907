package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/happyhours/backend/internal/model"
)

func window(startH, endH int) (*model.TimeOfDay, *model.TimeOfDay) {
	s := model.NewTimeOfDay(startH, 0, 0)
	e := model.NewTimeOfDay(endH, 0, 0)
	return &s, &e
}

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 10, hour, min, 0, 0, time.Local)
}

func TestCanAdmitOwnerInsideWindow(t *testing.T) {
	start, end := window(9, 17)
	est := &model.Establishment{ID: 4, OwnerID: 7, HappyhoursStart: start, HappyhoursEnd: end}
	owner := Principal{ID: 7, Role: model.RolePartner}

	assert.True(t, CanAdmit(owner, est, at(12, 0)))
	// bounds are inclusive
	assert.True(t, CanAdmit(owner, est, at(9, 0)))
	assert.True(t, CanAdmit(owner, est, at(17, 0)))
}

func TestCanAdmitOutsideWindow(t *testing.T) {
	start, end := window(9, 17)
	est := &model.Establishment{ID: 4, OwnerID: 7, HappyhoursStart: start, HappyhoursEnd: end}
	owner := Principal{ID: 7, Role: model.RolePartner}

	assert.False(t, CanAdmit(owner, est, at(8, 59)))
	assert.False(t, CanAdmit(owner, est, at(20, 0)))
	assert.False(t, CanAdmit(owner, est, at(0, 0)))
}

func TestCanAdmitNonOwner(t *testing.T) {
	start, end := window(0, 23)
	est := &model.Establishment{ID: 4, OwnerID: 7, HappyhoursStart: start, HappyhoursEnd: end}

	// wrong owner is refused at any hour
	stranger := Principal{ID: 8, Role: model.RolePartner}
	for hour := 0; hour < 24; hour++ {
		assert.False(t, CanAdmit(stranger, est, at(hour, 30)), "hour %d", hour)
	}
}

func TestCanAdmitAnonymousAndWrongRole(t *testing.T) {
	start, end := window(0, 23)
	est := &model.Establishment{ID: 4, OwnerID: 7, HappyhoursStart: start, HappyhoursEnd: end}

	assert.False(t, CanAdmit(Anonymous, est, at(12, 0)))
	assert.False(t, CanAdmit(Principal{ID: 7, Role: model.RoleClient}, est, at(12, 0)))
}

func TestCanAdmitUnsetWindow(t *testing.T) {
	owner := Principal{ID: 7, Role: model.RolePartner}
	start := model.NewTimeOfDay(9, 0, 0)

	// no window configured means never eligible
	assert.False(t, CanAdmit(owner, &model.Establishment{ID: 4, OwnerID: 7}, at(12, 0)))
	assert.False(t, CanAdmit(owner, &model.Establishment{ID: 4, OwnerID: 7, HappyhoursStart: &start}, at(12, 0)))
	assert.False(t, CanAdmit(owner, nil, at(12, 0)))
}
