package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeWebhookPayload(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("NilPayload", func(t *testing.T) {
		assert.Nil(t, DecodeWebhookPayload(nil))
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		assert.Nil(t, DecodeWebhookPayload(strPtr("")))
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		assert.Nil(t, DecodeWebhookPayload(strPtr("not json at all")))
		assert.Nil(t, DecodeWebhookPayload(strPtr(`{"truncated":`)))
	})

	t.Run("NonObjectDocument", func(t *testing.T) {
		assert.Nil(t, DecodeWebhookPayload(strPtr(`[1, 2, 3]`)))
		assert.Nil(t, DecodeWebhookPayload(strPtr(`"just a string"`)))
	})

	t.Run("ValidObject", func(t *testing.T) {
		decoded := DecodeWebhookPayload(strPtr(`{"transaction_status":"settlement","gross_amount":"150000.00"}`))
		assert.Equal(t, "settlement", decoded["transaction_status"])
		assert.Equal(t, "150000.00", decoded["gross_amount"])
	})
}
