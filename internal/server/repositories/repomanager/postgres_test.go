package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/reomoon/memo/internal/server/repositories/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewPostgresRepositoryManager()
	s := m.Sessions(db)
	require.NotNil(t, s)
	assert.IsType(t, &sessions.PostgresRepository{}, s)
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	require.NoError(t, m.RunMigrations(context.Background(), db))
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	err := m.RunMigrations(context.Background(), db)
	require.EqualError(t, err, "boom")
}

func TestOpenPostgres(t *testing.T) {
	db, mock := newDB(t)

	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })

	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driver)
		assert.Equal(t, "postgres://memo", dsn)
		return db, nil
	}
	mock.ExpectPing()

	got, err := OpenPostgres(context.Background(), "postgres://memo")
	require.NoError(t, err)
	assert.Same(t, db, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_Errors(t *testing.T) {
	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })

	sqlOpen = func(string, string) (*sql.DB, error) { return nil, errors.New("bad dsn") }
	_, err := OpenPostgres(context.Background(), "x")
	require.ErrorContains(t, err, "db open error: bad dsn")

	db, mock := newDB(t)
	sqlOpen = func(string, string) (*sql.DB, error) { return db, nil }
	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	_, err = OpenPostgres(context.Background(), "x")
	require.ErrorContains(t, err, "db ping error: refused")
}
