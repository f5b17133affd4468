package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletAccountApply(t *testing.T) {
	wa := &WalletAccount{Balance: decimal.RequireFromString("100.00"), Currency: "IDR"}

	wa.Apply(&WalletTransaction{
		Type:      WalletTransactionTopup,
		Direction: WalletDirectionIn,
		Amount:    decimal.RequireFromString("50.00"),
	})
	assert.True(t, wa.Balance.Equal(decimal.RequireFromString("150.00")), wa.Balance.String())

	wa.Apply(&WalletTransaction{
		Type:      WalletTransactionCharge,
		Direction: WalletDirectionOut,
		Amount:    decimal.RequireFromString("70.00"),
	})
	assert.True(t, wa.Balance.Equal(decimal.RequireFromString("80.00")), wa.Balance.String())
}

// Amounts are unsigned magnitudes; the direction column carries the sign.
func TestWalletTransactionRejectsNonPositiveAmount(t *testing.T) {
	wt := &WalletTransaction{
		WalletAccountID: mustUUID(t),
		Type:            WalletTransactionCharge,
		Direction:       WalletDirectionOut,
		Amount:          decimal.RequireFromString("-10.00"),
	}

	err := wt.Validate()
	require.ErrorIs(t, err, ErrNonPositiveAmount)

	wt.Amount = decimal.Zero
	require.ErrorIs(t, wt.Validate(), ErrNonPositiveAmount)

	wt.Amount = decimal.RequireFromString("10.00")
	require.NoError(t, wt.Validate())
}

func TestWalletTransactionValidateEnums(t *testing.T) {
	wt := &WalletTransaction{
		WalletAccountID: mustUUID(t),
		Type:            WalletTransactionType("WITHDRAWAL"),
		Direction:       WalletDirectionOut,
		Amount:          decimal.RequireFromString("10.00"),
	}
	assert.Error(t, wt.Validate())

	related := WalletRelatedPayment
	wt.Type = WalletTransactionCharge
	wt.RelatedType = &related
	assert.NoError(t, wt.Validate())
}

func TestWalletEnumSets(t *testing.T) {
	assert.True(t, WalletDirectionIn.Valid())
	assert.True(t, WalletDirectionOut.Valid())
	assert.False(t, WalletDirection("BOTH").Valid())

	assert.True(t, WalletRelatedSubscription.Valid())
	assert.False(t, WalletRelatedType("INVOICE").Valid())
}
