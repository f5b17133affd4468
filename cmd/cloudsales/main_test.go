package main

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (sqlmock.Sqlmock, *gorm.DB) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		// gorm.Open pings eagerly by default, which the mock has no
		// expectation for; only the handler's ping should be observed.
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return mock, db
}

func TestHealthEndpointOK(t *testing.T) {
	mock, db := newTestApp(t)
	mock.ExpectPing()

	app := NewApplication(db)
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthEndpointDatabaseDown(t *testing.T) {
	mock, db := newTestApp(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	app := NewApplication(db)
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	assert.Equal(t, 503, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
