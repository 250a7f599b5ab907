package model

import "time"

// Establishment represents a partner venue persisted in the
// `establishments` table. Each establishment belongs to a single
// partner user and carries an optional daily happy-hour window
// during which its realtime order feed may be opened.
//
// HappyhoursStart/HappyhoursEnd are naive local times of day
// (nullable TIME columns). A nil bound means the window is not
// configured; admission policy treats that as never eligible.
//
// Fields:
//  ID              – primary key identifier.
//  OwnerID         – users.id of the partner who owns the venue.
//  Name            – human-friendly venue name.
//  Address         – street address (optional).
//  PhoneNumber     – contact phone (optional).
//  HappyhoursStart – daily window start, nil when unset.
//  HappyhoursEnd   – daily window end, nil when unset.
//  CreatedAt       – timestamp of creation.
//  UpdatedAt       – timestamp of last update.
type Establishment struct {
	ID              uint64     // establishments.id
	OwnerID         uint64     // establishments.owner_id
	Name            string     // establishments.name
	Address         string     // establishments.address
	PhoneNumber     string     // establishments.phone_number
	HappyhoursStart *TimeOfDay // establishments.happyhours_start (nullable)
	HappyhoursEnd   *TimeOfDay // establishments.happyhours_end (nullable)
	CreatedAt       time.Time  // establishments.created_at
	UpdatedAt       time.Time  // establishments.updated_at
}
