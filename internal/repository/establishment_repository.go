package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/happyhours/backend/internal/model"
)

// EstablishmentRepo encapsulates all database queries related to partner
// establishments, including the happy-hour window the admission policy
// reads on every realtime connection attempt.
type EstablishmentRepo struct {
	db *sql.DB
}

// NewEstablishmentRepo constructs an EstablishmentRepo with the provided DB
// handle so the database can be injected in tests and at startup.
func NewEstablishmentRepo(db *sql.DB) *EstablishmentRepo {
	return &EstablishmentRepo{db: db}
}

// Create inserts a new establishment. On success the ID field is populated
// with the auto-generated value and the timestamp fields are read back so
// callers receive a fully populated record.
func (r *EstablishmentRepo) Create(ctx context.Context, e *model.Establishment) error {
	const qInsert = `INSERT INTO establishments
	                 (owner_id, name, address, phone_number, happyhours_start, happyhours_end)
	                 VALUES (?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		e.OwnerID, e.Name, e.Address, e.PhoneNumber, e.HappyhoursStart, e.HappyhoursEnd)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM establishments WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, e.ID).Scan(&e.CreatedAt, &e.UpdatedAt)
}

// GetByID fetches an establishment by its ID regardless of owner. The
// realtime admission path uses this lookup and applies the ownership check
// itself so a wrong owner and a missing venue are indistinguishable to the
// connecting client.
func (r *EstablishmentRepo) GetByID(ctx context.Context, id uint64) (*model.Establishment, error) {
	const q = `SELECT id, owner_id, name, address, phone_number,
	                  happyhours_start, happyhours_end, created_at, updated_at
	           FROM establishments WHERE id = ?`
	var (
		e          model.Establishment
		start, end sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&e.ID, &e.OwnerID, &e.Name, &e.Address, &e.PhoneNumber,
		&start, &end, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEstablishmentNotFound
		}
		return nil, err
	}
	if err := applyWindow(&e, start, end); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByOwner returns all establishments for a specific owner ordered by id.
func (r *EstablishmentRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Establishment, error) {
	const q = `SELECT id, owner_id, name, address, phone_number,
	                  happyhours_start, happyhours_end, created_at, updated_at
	           FROM establishments WHERE owner_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Establishment
	for rows.Next() {
		e := new(model.Establishment)
		var start, end sql.NullString
		if err := rows.Scan(
			&e.ID, &e.OwnerID, &e.Name, &e.Address, &e.PhoneNumber,
			&start, &end, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		if err := applyWindow(e, start, end); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateHappyHours sets the daily window if the establishment belongs to
// the provided owner. Passing nil bounds clears the window, which closes
// the realtime feed until a new window is configured. It returns
// sql.ErrNoRows when no row is affected (not found / not owned).
func (r *EstablishmentRepo) UpdateHappyHours(ctx context.Context, id, ownerID uint64, start, end *model.TimeOfDay) error {
	const q = `UPDATE establishments
	           SET happyhours_start = ?, happyhours_end = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, start, end, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// applyWindow converts nullable TIME columns into the model's optional
// bounds. NULL stays nil, which the admission policy reads as "no window,
// never eligible".
func applyWindow(e *model.Establishment, start, end sql.NullString) error {
	if start.Valid {
		t, err := model.ParseTimeOfDay(start.String)
		if err != nil {
			return err
		}
		e.HappyhoursStart = &t
	}
	if end.Valid {
		t, err := model.ParseTimeOfDay(end.String)
		if err != nil {
			return err
		}
		e.HappyhoursEnd = &t
	}
	return nil
}
