package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/happyhours/backend/internal/model"
)

// OrderRepo encapsulates order persistence. Status updates are a single
// conditional UPDATE scoped to the establishment, so concurrent writers are
// serialized by the database and a cross-establishment id can never match.
type OrderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create inserts a new order in its initial status. On success the ID and
// OrderDate fields are populated.
func (r *OrderRepo) Create(ctx context.Context, o *model.Order) error {
	const qInsert = `INSERT INTO orders (establishment_id, beverage_id, client_id, status)
	                 VALUES (?,?,?,?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		o.EstablishmentID, o.BeverageID, o.ClientID, o.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	o.ID = uint64(id)

	const qSelect = "SELECT order_date FROM orders WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, o.ID).Scan(&o.OrderDate)
}

// GetByID fetches an order by id.
func (r *OrderRepo) GetByID(ctx context.Context, id uint64) (*model.Order, error) {
	const q = `SELECT id, establishment_id, beverage_id, client_id, status, order_date
	           FROM orders WHERE id = ?`
	var o model.Order
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&o.ID, &o.EstablishmentID, &o.BeverageID, &o.ClientID, &o.Status, &o.OrderDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// UpdateStatus atomically sets the status of an order belonging to the
// given establishment. The establishment scope is part of the WHERE clause:
// an unknown id and an order owned by another establishment both report
// ErrOrderNotFound without touching any row. The connection pool opens the
// session with clientFoundRows, so re-applying the current status still
// counts as a match and the caller republishes it (updates are not
// deduplicated).
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID, establishmentID uint64, status string) error {
	const q = "UPDATE orders SET status = ? WHERE id = ? AND establishment_id = ?"
	res, err := r.db.ExecContext(ctx, q, status, orderID, establishmentID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// ListByClient returns a client's order history, newest first.
func (r *OrderRepo) ListByClient(ctx context.Context, clientID uint64) ([]*model.Order, error) {
	const q = `SELECT id, establishment_id, beverage_id, client_id, status, order_date
	           FROM orders WHERE client_id = ? ORDER BY order_date DESC, id DESC`
	return r.list(ctx, q, clientID)
}

// ListByOwner returns all orders across establishments owned by ownerID,
// newest first. Backs the partner's order history view.
func (r *OrderRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Order, error) {
	const q = `SELECT o.id, o.establishment_id, o.beverage_id, o.client_id, o.status, o.order_date
	           FROM orders o
	           JOIN establishments e ON e.id = o.establishment_id
	           WHERE e.owner_id = ? ORDER BY o.order_date DESC, o.id DESC`
	return r.list(ctx, q, ownerID)
}

func (r *OrderRepo) list(ctx context.Context, q string, arg any) ([]*model.Order, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Order
	for rows.Next() {
		o := new(model.Order)
		if err := rows.Scan(&o.ID, &o.EstablishmentID, &o.BeverageID, &o.ClientID, &o.Status, &o.OrderDate); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
