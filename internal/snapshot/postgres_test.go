package snapshot

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgres(sqlx.NewDb(db, "postgres")), mock
}

func TestPostgresInit(t *testing.T) {
	pg, mock := newMockPostgres(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS snapshots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, pg.Init(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveUpserts(t *testing.T) {
	pg, mock := newMockPostgres(t)

	payload := []byte(`[{"id":"1"}]`)
	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs("tms_teachers", payload, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, pg.Save(context.Background(), "tms_teachers", payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoad(t *testing.T) {
	pg, mock := newMockPostgres(t)

	payload := []byte(`[{"id":"1"}]`)
	mock.ExpectQuery("SELECT data FROM snapshots").
		WithArgs("tms_teachers").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(payload))

	got, err := pg.Load(context.Background(), "tms_teachers")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoadMissingKey(t *testing.T) {
	pg, mock := newMockPostgres(t)

	mock.ExpectQuery("SELECT data FROM snapshots").
		WithArgs("tms_missing").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err := pg.Load(context.Background(), "tms_missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
