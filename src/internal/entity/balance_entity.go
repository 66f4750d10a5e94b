package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one immutable row of the balances table. Positive amounts
// credit the owner, negative amounts debit it. Corrections are made by
// inserting offsetting entries, never by updating existing rows.
type LedgerEntry struct {
	ID        uint64          `db:"id" json:"id"`
	OwnerRole string          `db:"owner_role" json:"owner_role"`
	OwnerID   uint64          `db:"owner_id" json:"owner_id"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Currency  string          `db:"currency" json:"currency"`
	Type      string          `db:"type" json:"type"`
	RefTable  *string         `db:"ref_table" json:"ref_table,omitempty"`
	RefID     *uint64         `db:"ref_id" json:"ref_id,omitempty"`
	Note      *string         `db:"note" json:"note,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

const (
	LedgerTypePayout  = "payout"
	LedgerTypePayment = "payment"
	LedgerTypeFee     = "fee"
)

// BalanceRollup is the per-account aggregation row produced by the rollup
// query: one row per user/teknisi account, zero-entry accounts included.
type BalanceRollup struct {
	OwnerID      uint64          `db:"id"`
	Role         string          `db:"role"`
	Name         string          `db:"name"`
	Email        string          `db:"email"`
	Phone        string          `db:"phone"`
	Balance      decimal.Decimal `db:"balance"`
	TotalCredit  decimal.Decimal `db:"total_credit"`
	TotalDebit   decimal.Decimal `db:"total_debit"`
	EntriesCount int64           `db:"entries_count"`
}

// LedgerEntryFilter holds the entry-level predicates. They are applied inside
// the LEFT JOIN condition of the rollup so a filter can never knock a
// zero-entry account out of the result set.
type LedgerEntryFilter struct {
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
	OwnerID  *uint64
	RefTable string
	RefID    *uint64
}

// BalanceHavingFilter holds the predicates that reference the aggregate, not
// a raw column. They become the HAVING clause.
type BalanceHavingFilter struct {
	AmountMin *decimal.Decimal
	AmountMax *decimal.Decimal
}

type BalanceRollupFilter struct {
	Search    string
	OwnerRole string
	Entry     LedgerEntryFilter
	Having    BalanceHavingFilter
}

type LedgerDetailFilter struct {
	Search string
	Entry  LedgerEntryFilter
}

// LedgerRefKind tags the table a ledger entry's polymorphic reference points
// at. The flat (ref_table, ref_id) pair only exists at the persistence
// boundary.
type LedgerRefKind string

const (
	RefKindPayout  LedgerRefKind = "payouts"
	RefKindPayment LedgerRefKind = "payments"
	RefKindRefund  LedgerRefKind = "refunds"
)

type LedgerRef struct {
	Kind LedgerRefKind
	ID   uint64
}

func (r LedgerRef) RefTable() string {
	return string(r.Kind)
}

func ParseLedgerRef(table string, id uint64) (LedgerRef, error) {
	switch LedgerRefKind(table) {
	case RefKindPayout, RefKindPayment, RefKindRefund:
		return LedgerRef{Kind: LedgerRefKind(table), ID: id}, nil
	}
	return LedgerRef{}, fmt.Errorf("unknown ledger ref table: %s", table)
}
