package model

import (
	"time"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/utils"
)

type PayoutListRequest struct {
	Q            string `json:"q"`
	Status       string `json:"status" validate:"omitempty,oneof=pending paid rejected"`
	TechnicianID string `json:"technician_id"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	AmountMin    string `json:"amount_min"`
	AmountMax    string `json:"amount_max"`
	Page         int    `json:"-"`
	Size         int    `json:"-"`
}

type LiteProfile struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type PayoutResponse struct {
	ID            uint64       `json:"id"`
	TechnicianID  uint64       `json:"technician_id"`
	Amount        string       `json:"amount"`
	Status        string       `json:"status"`
	BankName      string       `json:"bank_name"`
	AccountName   string       `json:"account_name"`
	AccountNumber string       `json:"account_number"`
	Note          *string      `json:"note,omitempty"`
	PaidAt        *time.Time   `json:"paid_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	Technician    *LiteProfile `json:"technician,omitempty"`
}

type PayoutListResponse struct {
	Items      []PayoutResponse  `json:"items"`
	Filters    PayoutListRequest `json:"filters"`
	Pagination utils.Pagination  `json:"pagination"`
}

type PayoutDetailRequest struct {
	ID uint64 `json:"id" validate:"required"`
}

type PayoutDetailResponse struct {
	Payout PayoutResponse       `json:"payout"`
	Ledger []entity.LedgerEntry `json:"ledger"`
}

type PayoutApproveRequest struct {
	ID      uint64 `json:"-" validate:"required"`
	AdminID uint64 `json:"-"`
	Note    string `json:"note" validate:"max=255"`
}

type PayoutRejectRequest struct {
	ID      uint64 `json:"-" validate:"required"`
	AdminID uint64 `json:"-"`
	Note    string `json:"note" validate:"required,max=255"`
}

// PayoutReconcileReport is what the background sweep leaves behind for the
// admin endpoint to read.
type PayoutReconcileReport struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Mismatches  []entity.PayoutMismatch `json:"mismatches"`
}
