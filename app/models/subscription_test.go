package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionItemComputeAmount(t *testing.T) {
	si := &SubscriptionItem{
		Quantity:  12,
		UnitPrice: decimal.RequireFromString("7.50"),
	}

	si.ComputeAmount()

	assert.True(t, si.Amount.Equal(decimal.RequireFromString("90.00")), si.Amount.String())
}

func TestSubscriptionIsBillable(t *testing.T) {
	s := &Subscription{Status: SubscriptionStatusActive}
	assert.True(t, s.IsBillable())

	s.Status = SubscriptionStatusPendingActivation
	assert.True(t, s.IsBillable())

	s.Status = SubscriptionStatusCancelled
	assert.False(t, s.IsBillable())
}

func TestSubscriptionValidate(t *testing.T) {
	s := &Subscription{
		ClientID:          mustUUID(t),
		CreatedByUserID:   mustUUID(t),
		Status:            SubscriptionStatusPendingActivation,
		BillingPeriod:     BillingPeriodMonthly,
		PaymentMethodType: PaymentMethodTypeWallet,
		Currency:          "IDR",
	}
	require.NoError(t, s.Validate())

	s.BillingPeriod = BillingPeriod("WEEKLY")
	assert.Error(t, s.Validate())
}

func TestBillingCycleOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	bc := &BillingCycle{
		Status:  BillingCycleStatusInvoiced,
		DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, bc.IsOverdue(now))

	bc.Status = BillingCycleStatusPaid
	assert.False(t, bc.IsOverdue(now))

	bc.Status = BillingCycleStatusPending
	bc.DueDate = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, bc.IsOverdue(now))
}

func TestPaymentTransitions(t *testing.T) {
	p := &Payment{Status: PaymentStatusPending}

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	p.MarkPaid(at)
	assert.Equal(t, PaymentStatusSuccess, p.Status)
	require.NotNil(t, p.PaidAt)
	assert.Equal(t, at, *p.PaidAt)

	p.MarkFailed("card declined")
	assert.Equal(t, PaymentStatusFailed, p.Status)
	assert.Equal(t, "card declined", p.FailureReason)
}

func TestProvisioningTaskTransitions(t *testing.T) {
	task := &ProvisioningTask{
		Action:       ProvisioningActionActivate,
		TargetSystem: ProvisioningTargetGWorkspace,
		Status:       ProvisioningTaskPending,
	}

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	task.MarkSucceeded("job-42", at)
	assert.Equal(t, ProvisioningTaskSuccess, task.Status)
	assert.Equal(t, "job-42", task.ExternalReference)
	require.NotNil(t, task.ExecutedAt)

	task.MarkFailed("quota exceeded", at)
	assert.Equal(t, ProvisioningTaskFailed, task.Status)
	assert.Equal(t, "quota exceeded", task.ErrorMessage)
}

func TestEnumValiditySets(t *testing.T) {
	assert.True(t, SubscriptionStatusPendingActivation.Valid())
	assert.False(t, SubscriptionStatus("PAUSED").Valid())

	assert.True(t, PaymentMethodTypeXenditSubscription.Valid())
	assert.False(t, PaymentMethodType("STRIPE").Valid())

	assert.True(t, ProvisioningStateTerminated.Valid())
	assert.False(t, ProvisioningState("DELETED").Valid())

	assert.True(t, BillingCycleStatusInvoiceRequested.Valid())
	assert.False(t, BillingCycleStatus("WRITTEN_OFF").Valid())

	assert.True(t, PaymentMethodXenditVA.Valid())
	assert.False(t, PaymentMethod("XENDIT_QRIS").Valid())

	assert.True(t, ProductTypeAddon.Valid())
	assert.False(t, ProductType("HARDWARE").Valid())

	assert.True(t, BillingPeriodYearly.Valid())
	assert.False(t, BillingPeriod("QUARTERLY").Valid())
}
