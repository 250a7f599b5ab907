package auth

import (
	"time"

	"github.com/happyhours/backend/internal/model"
)

// CanAdmit decides whether a principal may open the realtime order feed of
// an establishment at the given moment. It is a pure function of its
// arguments; time is injected so the window check stays testable.
//
// Admission requires all of:
//   - the principal is a non-anonymous partner,
//   - the principal owns the establishment,
//   - now's local time of day falls inside the establishment's happy-hour
//     window, bounds inclusive.
//
// An establishment with either bound unset is never eligible: no window
// configured means the feed is closed, not open around the clock.
func CanAdmit(p Principal, est *model.Establishment, now time.Time) bool {
	if est == nil || p.IsAnonymous() || p.Role != model.RolePartner {
		return false
	}
	if est.OwnerID != p.ID {
		return false
	}
	if est.HappyhoursStart == nil || est.HappyhoursEnd == nil {
		return false
	}
	tod := model.TimeOfDayFrom(now)
	return *est.HappyhoursStart <= tod && tod <= *est.HappyhoursEnd
}
