package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/happyhours/backend/internal/model"
)

// BeverageRepo handles the menu items clients order. Order placement
// resolves a beverage to find the establishment the order belongs to.
type BeverageRepo struct {
	db *sql.DB
}

func NewBeverageRepo(db *sql.DB) *BeverageRepo {
	return &BeverageRepo{db: db}
}

// Create inserts a beverage after verifying the establishment belongs to
// ownerID. ErrEstablishmentNotFound is returned for a missing venue and
// ErrForbidden for someone else's.
func (r *BeverageRepo) Create(ctx context.Context, ownerID uint64, b *model.Beverage) error {
	var dbOwnerID uint64
	err := r.db.QueryRowContext(ctx,
		"SELECT owner_id FROM establishments WHERE id = ?", b.EstablishmentID).Scan(&dbOwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEstablishmentNotFound
		}
		return err
	}
	if dbOwnerID != ownerID {
		return ErrForbidden
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO beverages (establishment_id, name, price_cents) VALUES (?,?,?)",
		b.EstablishmentID, b.Name, b.PriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID fetches a beverage by id.
func (r *BeverageRepo) GetByID(ctx context.Context, id uint64) (*model.Beverage, error) {
	const q = `SELECT id, establishment_id, name, price_cents, created_at, updated_at
	           FROM beverages WHERE id = ?`
	var b model.Beverage
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.EstablishmentID, &b.Name, &b.PriceCents, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBeverageNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByEstablishment returns an establishment's menu ordered by id.
func (r *BeverageRepo) ListByEstablishment(ctx context.Context, establishmentID uint64) ([]*model.Beverage, error) {
	const q = `SELECT id, establishment_id, name, price_cents, created_at, updated_at
	           FROM beverages WHERE establishment_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, establishmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Beverage
	for rows.Next() {
		b := new(model.Beverage)
		if err := rows.Scan(&b.ID, &b.EstablishmentID, &b.Name, &b.PriceCents, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
