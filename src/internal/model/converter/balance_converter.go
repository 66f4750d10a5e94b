package converter

import (
	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"

	"github.com/shopspring/decimal"
)

func BalanceRollupToResponse(row *entity.BalanceRollup) model.BalanceRollupResponse {
	return model.BalanceRollupResponse{
		ID:           row.OwnerID,
		Role:         row.Role,
		Name:         row.Name,
		Email:        row.Email,
		Phone:        row.Phone,
		TotalCredit:  row.TotalCredit.String(),
		TotalDebit:   row.TotalDebit.String(),
		Balance:      row.Balance.String(),
		EntriesCount: row.EntriesCount,
	}
}

// BalancePageTotals sums the rows that made it onto the current page. This
// is a page-level summary, not a global one.
func BalancePageTotals(rows []entity.BalanceRollup) model.BalancePageTotals {
	balance := decimal.Zero
	credit := decimal.Zero
	debit := decimal.Zero
	for _, row := range rows {
		balance = balance.Add(row.Balance)
		credit = credit.Add(row.TotalCredit)
		debit = debit.Add(row.TotalDebit)
	}
	return model.BalancePageTotals{
		Accounts:    len(rows),
		Balance:     balance.String(),
		TotalCredit: credit.String(),
		TotalDebit:  debit.String(),
	}
}

func UserToBalanceOwner(user *entity.User) model.BalanceOwnerResponse {
	return model.BalanceOwnerResponse{
		ID:            user.ID,
		Role:          user.Role,
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		BankName:      user.BankName,
		AccountName:   user.AccountName,
		AccountNumber: user.AccountNumber,
	}
}
