package model

import (
	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/utils"
)

// BalanceListRequest carries the raw query-string filters for the rollup.
// Values stay strings here so the response can echo them back verbatim;
// the usecase parses them into typed entity filters.
type BalanceListRequest struct {
	Q         string `json:"q"`
	OwnerRole string `json:"owner_role" validate:"omitempty,oneof=user teknisi"`
	Type      string `json:"type"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
	AmountMin string `json:"amount_min"`
	AmountMax string `json:"amount_max"`
	OwnerID   string `json:"owner_id"`
	RefTable  string `json:"ref_table"`
	RefID     string `json:"ref_id"`
	Page      int    `json:"-"`
	Size      int    `json:"-"`
}

type BalanceRollupResponse struct {
	ID           uint64 `json:"id"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	TotalCredit  string `json:"totalCredit"`
	TotalDebit   string `json:"totalDebit"`
	Balance      string `json:"balance"`
	EntriesCount int64  `json:"entriesCount"`
}

// BalancePageTotals sums the rows of the current page only.
type BalancePageTotals struct {
	Accounts    int    `json:"accounts"`
	Balance     string `json:"balance"`
	TotalCredit string `json:"totalCredit"`
	TotalDebit  string `json:"totalDebit"`
}

type BalanceListResponse struct {
	Items      []BalanceRollupResponse `json:"items"`
	Totals     BalancePageTotals       `json:"totals"`
	Filters    BalanceListRequest      `json:"filters"`
	Pagination utils.Pagination        `json:"pagination"`
}

type BalanceDetailRequest struct {
	OwnerRole string `json:"owner_role" validate:"required,oneof=user teknisi"`
	OwnerID   uint64 `json:"owner_id" validate:"required"`
	Q         string `json:"q"`
	Type      string `json:"type"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
	RefTable  string `json:"ref_table"`
	RefID     string `json:"ref_id"`
	Page      int    `json:"-"`
	Size      int    `json:"-"`
}

type BalanceOwnerResponse struct {
	ID            uint64  `json:"id"`
	Role          string  `json:"role"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	BankName      *string `json:"bank_name"`
	AccountName   *string `json:"account_name"`
	AccountNumber *string `json:"account_number"`
}

type BalanceDetailResponse struct {
	Owner      BalanceOwnerResponse `json:"owner"`
	Entries    []entity.LedgerEntry `json:"entries"`
	Filters    BalanceDetailRequest `json:"filters"`
	Pagination utils.Pagination     `json:"pagination"`
}
