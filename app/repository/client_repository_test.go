package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsaleshq/cloudsales/app/models"
)

// Timestamps are owned by the database: the INSERT omits created_at and
// updated_at so the column defaults apply, and the server-clock values flow
// back into the model through RETURNING.
func TestClientCreateTimestampsComeFromDatabase(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	serverNow := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "clients"`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(serverNow, serverNow))
	mock.ExpectCommit()

	client := &models.Client{
		Name:         "PT Maju Jaya",
		BillingEmail: "billing@majujaya.example",
		Status:       models.ClientStatusActive,
	}
	require.NoError(t, repo.Create(client))

	assert.True(t, client.CreatedAt.Equal(serverNow))
	assert.True(t, client.UpdatedAt.Equal(serverNow))
	require.NoError(t, mock.ExpectationsWereMet())
}
