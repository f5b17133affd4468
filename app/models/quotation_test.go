package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotationItemComputeSubtotals(t *testing.T) {
	qi := &QuotationItem{
		Quantity:        2,
		UnitPrice:       decimal.RequireFromString("100.00"),
		UnitPriceClient: decimal.RequireFromString("1650000.00"),
	}

	qi.ComputeSubtotals()

	assert.True(t, qi.SubtotalAmount.Equal(decimal.RequireFromString("200.00")), qi.SubtotalAmount.String())
	assert.True(t, qi.SubtotalAmountClient.Equal(decimal.RequireFromString("3300000.00")), qi.SubtotalAmountClient.String())
}

func TestQuotationItemComputeSubtotalsWithDiscount(t *testing.T) {
	qi := &QuotationItem{
		Quantity:        3,
		UnitPrice:       decimal.RequireFromString("100.00"),
		UnitPriceClient: decimal.RequireFromString("200.00"),
		DiscountPercent: decimal.NewNullDecimal(decimal.RequireFromString("10.00")),
	}

	qi.ComputeSubtotals()

	// 3 * 100 * 0.9
	assert.True(t, qi.SubtotalAmount.Equal(decimal.RequireFromString("270.00")), qi.SubtotalAmount.String())
	assert.True(t, qi.SubtotalAmountClient.Equal(decimal.RequireFromString("540.00")), qi.SubtotalAmountClient.String())
}

func TestQuotationItemSubtotalRounding(t *testing.T) {
	qi := &QuotationItem{
		Quantity:        1,
		UnitPrice:       decimal.RequireFromString("99.99"),
		UnitPriceClient: decimal.RequireFromString("99.99"),
		DiscountPercent: decimal.NewNullDecimal(decimal.RequireFromString("33.33")),
	}

	qi.ComputeSubtotals()

	assert.Equal(t, int32(-2), qi.SubtotalAmount.Exponent())
}

// Two items, quantities 2 and 1 at 100.00 and 50.00, no discount: the
// quotation total must come out as 250.00. The schema does not enforce
// this; SumItems is the application-side invariant.
func TestQuotationSumItems(t *testing.T) {
	q := &Quotation{
		Currency:       "USD",
		ClientCurrency: "IDR",
		Items: []QuotationItem{
			{Quantity: 2, UnitPrice: decimal.RequireFromString("100.00"), UnitPriceClient: decimal.RequireFromString("100.00")},
			{Quantity: 1, UnitPrice: decimal.RequireFromString("50.00"), UnitPriceClient: decimal.RequireFromString("50.00")},
		},
	}
	for i := range q.Items {
		q.Items[i].ComputeSubtotals()
	}

	q.SumItems()

	assert.True(t, q.TotalAmount.Equal(decimal.RequireFromString("250.00")), q.TotalAmount.String())
	assert.True(t, q.TotalAmountClient.Equal(decimal.RequireFromString("250.00")), q.TotalAmountClient.String())
}

func TestQuotationStatusValid(t *testing.T) {
	for _, s := range []QuotationStatus{
		QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted,
		QuotationStatusRejected, QuotationStatusExpired,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, QuotationStatus("APPROVED").Valid())
}

func TestQuotationValidateRejectsUnknownStatus(t *testing.T) {
	q := &Quotation{
		ClientID:       mustUUID(t),
		SalesUserID:    mustUUID(t),
		Number:         "Q-2025-0001",
		Status:         QuotationStatus("APPROVED"),
		Currency:       "USD",
		ClientCurrency: "IDR",
	}

	require.Error(t, q.Validate())

	q.Status = QuotationStatusDraft
	require.NoError(t, q.Validate())
}

func TestQuotationIsOpen(t *testing.T) {
	q := &Quotation{Status: QuotationStatusSent}
	assert.True(t, q.IsOpen())

	q.Status = QuotationStatusRejected
	assert.False(t, q.IsOpen())
}
