package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// Inserting a second payment with an already-stored xendit_payment_id is
// rejected by the unique index and maps to dberr.ErrDuplicateKey.
func TestPaymentCreateDuplicateXenditPaymentID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "payments"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ux_payments_xendit_payment_id"})
	mock.ExpectRollback()

	xenditID := "inv_123"
	payment := &models.Payment{
		ClientID:        uuid.New(),
		Amount:          decimal.RequireFromString("150.00"),
		Currency:        "IDR",
		Method:          models.PaymentMethodXenditVA,
		XenditPaymentID: &xenditID,
	}
	err := repo.Create(payment)
	assert.ErrorIs(t, err, dberr.ErrDuplicateKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentGetByXenditPaymentID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	id := uuid.New()
	clientID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "payments" WHERE xendit_payment_id = $1`)).
		WithArgs("inv_123", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "amount", "currency", "status", "method", "xendit_payment_id"}).
			AddRow(id.String(), clientID.String(), "150.00", "IDR", "SUCCESS", "XENDIT_VA", "inv_123"))

	payment, err := repo.GetByXenditPaymentID("inv_123")
	require.NoError(t, err)

	assert.Equal(t, id, payment.ID)
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
	require.NotNil(t, payment.XenditPaymentID)
	assert.Equal(t, "inv_123", *payment.XenditPaymentID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentGetByXenditPaymentIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "payments" WHERE xendit_payment_id = $1`)).
		WithArgs("inv_missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByXenditPaymentID("inv_missing")
	assert.ErrorIs(t, err, dberr.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentListByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "payments" WHERE status = $1`)).
		WithArgs("PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(uuid.NewString(), "PENDING").
			AddRow(uuid.NewString(), "PENDING"))

	payments, err := repo.ListByStatus(models.PaymentStatusPending)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}
