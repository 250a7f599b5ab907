package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyhours/backend/internal/model"
)

func TestOrderUpdateStatusMatchesScopedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE orders SET status = \\? WHERE id = \\? AND establishment_id = \\?").
		WithArgs(model.StatusCompleted, uint64(7), uint64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOrderRepo(db)
	require.NoError(t, repo.UpdateStatus(context.Background(), 7, 4, model.StatusCompleted))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderUpdateStatusUnmatchedRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// unknown id and a row owned by another establishment both affect 0 rows
	mock.ExpectExec("UPDATE orders SET status = \\? WHERE id = \\? AND establishment_id = \\?").
		WithArgs(model.StatusCompleted, uint64(99), uint64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewOrderRepo(db)
	err = repo.UpdateStatus(context.Background(), 99, 4, model.StatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreatePopulatesIDAndDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	placed := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(uint64(4), uint64(3), uint64(11), model.StatusPending).
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectQuery("SELECT order_date FROM orders WHERE id = \\?").
		WithArgs(uint64(21)).
		WillReturnRows(sqlmock.NewRows([]string{"order_date"}).AddRow(placed))

	o := &model.Order{EstablishmentID: 4, BeverageID: 3, ClientID: 11, Status: model.StatusPending}
	repo := NewOrderRepo(db)
	require.NoError(t, repo.Create(context.Background(), o))
	assert.Equal(t, uint64(21), o.ID)
	assert.Equal(t, placed, o.OrderDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, establishment_id, beverage_id, client_id, status, order_date").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewOrderRepo(db)
	_, err = repo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderListByOwnerJoinsEstablishments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	placed := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "establishment_id", "beverage_id", "client_id", "status", "order_date"}).
		AddRow(22, 4, 3, 11, model.StatusPending, placed).
		AddRow(21, 4, 2, 12, model.StatusCompleted, placed.Add(-time.Hour))
	mock.ExpectQuery("JOIN establishments e ON e.id = o.establishment_id").
		WithArgs(uint64(2)).
		WillReturnRows(rows)

	repo := NewOrderRepo(db)
	got, err := repo.ListByOwner(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(22), got[0].ID)
	assert.Equal(t, model.StatusCompleted, got[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}
