package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusSettled = "settlement"
	PaymentStatusFailed  = "failure"
	PaymentStatusExpired = "expire"
)

// Payment is one attempt to collect a service request's accepted price via
// the gateway. A request may have several attempts; the latest by id is the
// current one.
type Payment struct {
	ID              uint64          `db:"id" json:"id"`
	RequestID       uint64          `db:"request_id" json:"request_id"`
	UserID          uint64          `db:"user_id" json:"user_id"`
	TechnicianID    *uint64         `db:"technician_id" json:"technician_id,omitempty"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	Status          string          `db:"status" json:"status"`
	Provider        string          `db:"provider" json:"provider"`
	ProviderRef     *string         `db:"provider_ref" json:"provider_ref,omitempty"`
	SnapToken       *string         `db:"snap_token" json:"snap_token,omitempty"`
	SnapRedirectURL *string         `db:"snap_redirect_url" json:"snap_redirect_url,omitempty"`
	WebhookPayload  *string         `db:"webhook_payload" json:"-"`
	PaidAt          *time.Time      `db:"paid_at" json:"paid_at,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
}

// PaymentRow joins the payment with customer and technician lite profiles
// for the admin list view.
type PaymentRow struct {
	Payment
	UserName        string  `db:"user_name"`
	UserEmail       string  `db:"user_email"`
	TechnicianName  *string `db:"technician_name"`
	TechnicianEmail *string `db:"technician_email"`
}

type PaymentFilter struct {
	Search       string
	Status       string
	Provider     string
	TechnicianID *uint64
	UserID       *uint64
	RequestID    *uint64
	DateFrom     *time.Time
	DateTo       *time.Time
	AmountMin    *decimal.Decimal
	AmountMax    *decimal.Decimal
}

type Refund struct {
	ID          uint64          `db:"id" json:"id"`
	PaymentID   uint64          `db:"payment_id" json:"payment_id"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Status      string          `db:"status" json:"status"`
	Reason      *string         `db:"reason" json:"reason,omitempty"`
	ProviderRef *string         `db:"provider_ref" json:"provider_ref,omitempty"`
	RefundedAt  *time.Time      `db:"refunded_at" json:"refunded_at,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
