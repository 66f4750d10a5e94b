package converter

import (
	"testing"

	"benerin-admin-service/src/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBalancePageTotals(t *testing.T) {
	t.Run("EmptyPage", func(t *testing.T) {
		totals := BalancePageTotals(nil)
		assert.Equal(t, 0, totals.Accounts)
		assert.Equal(t, "0", totals.Balance)
		assert.Equal(t, "0", totals.TotalCredit)
		assert.Equal(t, "0", totals.TotalDebit)
	})

	t.Run("SumsOnlyGivenRows", func(t *testing.T) {
		rows := []entity.BalanceRollup{
			{
				OwnerID:     1,
				Balance:     decimal.RequireFromString("150000.50"),
				TotalCredit: decimal.RequireFromString("200000.50"),
				TotalDebit:  decimal.RequireFromString("-50000"),
			},
			{
				OwnerID:     2,
				Balance:     decimal.RequireFromString("-25000"),
				TotalCredit: decimal.RequireFromString("0"),
				TotalDebit:  decimal.RequireFromString("-25000"),
			},
			{OwnerID: 3},
		}

		totals := BalancePageTotals(rows)
		assert.Equal(t, 3, totals.Accounts)
		assert.True(t, decimal.RequireFromString(totals.Balance).Equal(decimal.RequireFromString("125000.5")))
		assert.True(t, decimal.RequireFromString(totals.TotalCredit).Equal(decimal.RequireFromString("200000.5")))
		assert.True(t, decimal.RequireFromString(totals.TotalDebit).Equal(decimal.RequireFromString("-75000")))
	})

	t.Run("BalanceEqualsCreditPlusDebit", func(t *testing.T) {
		rows := []entity.BalanceRollup{
			{
				Balance:     decimal.RequireFromString("70000"),
				TotalCredit: decimal.RequireFromString("100000"),
				TotalDebit:  decimal.RequireFromString("-30000"),
			},
		}

		totals := BalancePageTotals(rows)
		credit := decimal.RequireFromString(totals.TotalCredit)
		debit := decimal.RequireFromString(totals.TotalDebit)
		assert.Equal(t, totals.Balance, credit.Add(debit).String())
	})
}
