package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyhours/backend/internal/model"
)

func TestEstablishmentGetByIDParsesWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "name", "address", "phone_number",
		"happyhours_start", "happyhours_end", "created_at", "updated_at",
	}).AddRow(4, 2, "The Tap", "Main St 1", "+100", "09:00:00", "17:00:00", now, now)
	mock.ExpectQuery("FROM establishments WHERE id = \\?").
		WithArgs(uint64(4)).
		WillReturnRows(rows)

	repo := NewEstablishmentRepo(db)
	e, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, e.HappyhoursStart)
	require.NotNil(t, e.HappyhoursEnd)
	assert.Equal(t, model.NewTimeOfDay(9, 0, 0), *e.HappyhoursStart)
	assert.Equal(t, model.NewTimeOfDay(17, 0, 0), *e.HappyhoursEnd)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentGetByIDWithoutWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "name", "address", "phone_number",
		"happyhours_start", "happyhours_end", "created_at", "updated_at",
	}).AddRow(4, 2, "The Tap", "Main St 1", "+100", nil, nil, now, now)
	mock.ExpectQuery("FROM establishments WHERE id = \\?").
		WithArgs(uint64(4)).
		WillReturnRows(rows)

	repo := NewEstablishmentRepo(db)
	e, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Nil(t, e.HappyhoursStart)
	assert.Nil(t, e.HappyhoursEnd)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM establishments WHERE id = \\?").
		WithArgs(uint64(404)).
		WillReturnError(sql.ErrNoRows)

	repo := NewEstablishmentRepo(db)
	_, err = repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrEstablishmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentUpdateHappyHours(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := model.NewTimeOfDay(9, 0, 0)
	end := model.NewTimeOfDay(17, 0, 0)
	mock.ExpectExec("UPDATE establishments").
		WithArgs("09:00:00", "17:00:00", uint64(4), uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEstablishmentRepo(db)
	require.NoError(t, repo.UpdateHappyHours(context.Background(), 4, 2, &start, &end))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentUpdateHappyHoursClearsWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE establishments").
		WithArgs(nil, nil, uint64(4), uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEstablishmentRepo(db)
	require.NoError(t, repo.UpdateHappyHours(context.Background(), 4, 2, nil, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEstablishmentUpdateHappyHoursWrongOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE establishments").
		WithArgs(nil, nil, uint64(4), uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewEstablishmentRepo(db)
	err = repo.UpdateHappyHours(context.Background(), 4, 99, nil, nil)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
