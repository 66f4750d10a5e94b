package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLedgerRef(t *testing.T) {
	t.Run("KnownTables", func(t *testing.T) {
		for _, table := range []string{"payouts", "payments", "refunds"} {
			ref, err := ParseLedgerRef(table, 42)
			assert.NoError(t, err)
			assert.Equal(t, table, ref.RefTable())
			assert.Equal(t, uint64(42), ref.ID)
		}
	})

	t.Run("UnknownTable", func(t *testing.T) {
		_, err := ParseLedgerRef("invoices", 1)
		assert.Error(t, err)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		ref := LedgerRef{Kind: RefKindPayout, ID: 7}
		parsed, err := ParseLedgerRef(ref.RefTable(), ref.ID)
		assert.NoError(t, err)
		assert.Equal(t, ref, parsed)
	})
}
