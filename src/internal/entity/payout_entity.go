package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PayoutStatusPending  = "pending"
	PayoutStatusPaid     = "paid"
	PayoutStatusRejected = "rejected"
)

// Payout is a technician withdrawal request. The bank fields are a snapshot
// taken at request time so later profile edits do not change where an
// approved payout was sent.
type Payout struct {
	ID            uint64          `db:"id" json:"id"`
	TechnicianID  uint64          `db:"technician_id" json:"technician_id"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Status        string          `db:"status" json:"status"`
	BankName      string          `db:"bank_name" json:"bank_name"`
	AccountName   string          `db:"account_name" json:"account_name"`
	AccountNumber string          `db:"account_number" json:"account_number"`
	Note          *string         `db:"note" json:"note,omitempty"`
	PaidAt        *time.Time      `db:"paid_at" json:"paid_at,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}

// PayoutRow is a payout joined with its technician's lite profile for the
// admin list view.
type PayoutRow struct {
	Payout
	TechnicianName  string `db:"technician_name"`
	TechnicianEmail string `db:"technician_email"`
	TechnicianPhone string `db:"technician_phone"`
}

type PayoutFilter struct {
	Search       string
	Status       string
	TechnicianID *uint64
	DateFrom     *time.Time
	DateTo       *time.Time
	AmountMin    *decimal.Decimal
	AmountMax    *decimal.Decimal
}

// PayoutMismatch is one finding of the reconciliation sweep: a paid payout
// with no matching ledger entry.
type PayoutMismatch struct {
	PayoutID     uint64          `db:"id" json:"payout_id"`
	TechnicianID uint64          `db:"technician_id" json:"technician_id"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	PaidAt       *time.Time      `db:"paid_at" json:"paid_at,omitempty"`
}
