package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookEventMarkProcessedWithExplicitTime(t *testing.T) {
	ev := &WebhookEvent{Source: "xendit", EventType: "invoice.paid", RawPayloadJSON: `{}`}
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	ev.MarkProcessed(&at)

	assert.True(t, ev.Processed)
	require.NotNil(t, ev.ProcessedAt)
	assert.Equal(t, at, *ev.ProcessedAt)
}

func TestWebhookEventMarkProcessedDefaultsToNow(t *testing.T) {
	ev := &WebhookEvent{Source: "xendit", EventType: "invoice.paid", RawPayloadJSON: `{}`}
	before := time.Now().UTC()

	ev.MarkProcessed(nil)

	assert.True(t, ev.Processed)
	require.NotNil(t, ev.ProcessedAt)
	assert.False(t, ev.ProcessedAt.Before(before))
	assert.False(t, ev.ProcessedAt.After(time.Now().UTC()))
}

// A second call silently overwrites processed_at; there is no guard
// against double processing.
func TestWebhookEventMarkProcessedTwiceOverwrites(t *testing.T) {
	ev := &WebhookEvent{Source: "xendit", EventType: "invoice.paid", RawPayloadJSON: `{}`}
	first := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	second := time.Date(2025, 3, 2, 8, 30, 0, 0, time.UTC)

	ev.MarkProcessed(&first)
	ev.MarkProcessed(&second)

	assert.True(t, ev.Processed)
	require.NotNil(t, ev.ProcessedAt)
	assert.Equal(t, second, *ev.ProcessedAt)
}

func TestWebhookEventValidate(t *testing.T) {
	ev := &WebhookEvent{Source: "xendit", EventType: "invoice.paid", RawPayloadJSON: `{"id":"inv_123"}`}
	require.NoError(t, ev.Validate())

	missing := &WebhookEvent{EventType: "invoice.paid", RawPayloadJSON: `{}`}
	assert.Error(t, missing.Validate())
}
