package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailLogRelated(t *testing.T) {
	id := mustUUID(t)
	log := &EmailLog{RelatedType: EmailRelatedInvoiceRequest, RelatedID: &id}

	ref, ok := log.Related()
	require.True(t, ok)
	assert.Equal(t, EmailRelatedInvoiceRequest, ref.Type)
	assert.Equal(t, id, ref.ID)

	log.RelatedID = nil
	_, ok = log.Related()
	assert.False(t, ok)
}

func TestEmailLogMarkSent(t *testing.T) {
	log := &EmailLog{
		Direction:   EmailDirectionOutbound,
		RelatedType: EmailRelatedQuotation,
		Status:      EmailStatusDraft,
	}

	at := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	log.MarkSent("msg-abc", at)

	assert.Equal(t, EmailStatusSent, log.Status)
	assert.Equal(t, "msg-abc", log.GmailMessageID)
	require.NotNil(t, log.SentAt)
	assert.Equal(t, at, *log.SentAt)
}

func TestEmailLogValidate(t *testing.T) {
	log := &EmailLog{
		Direction:   EmailDirectionOutbound,
		RelatedType: EmailRelatedQuotation,
		FromEmail:   "sales@cloudsales.example",
		ToEmail:     "client@example.com",
		Status:      EmailStatusDraft,
	}
	require.NoError(t, log.Validate())

	log.RelatedType = EmailRelatedType("NEWSLETTER")
	assert.Error(t, log.Validate())
}

func TestEmailEnumSets(t *testing.T) {
	assert.True(t, EmailDirectionInbound.Valid())
	assert.False(t, EmailDirection("INTERNAL").Valid())

	assert.True(t, EmailRelatedPaymentStatus.Valid())
	assert.False(t, EmailRelatedType("").Valid())

	assert.True(t, EmailStatusParsed.Valid())
	assert.False(t, EmailStatus("BOUNCED").Valid())
}
