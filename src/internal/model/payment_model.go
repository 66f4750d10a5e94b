package model

import (
	"time"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/utils"
)

type PaymentListRequest struct {
	Q            string `json:"q"`
	Status       string `json:"status"`
	Provider     string `json:"provider"`
	TechnicianID string `json:"technician_id"`
	UserID       string `json:"user_id"`
	RequestID    string `json:"request_id"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	AmountMin    string `json:"amount_min"`
	AmountMax    string `json:"amount_max"`
	Page         int    `json:"-"`
	Size         int    `json:"-"`
}

type PaymentResponse struct {
	ID          uint64       `json:"id"`
	RequestID   uint64       `json:"request_id"`
	Amount      string       `json:"amount"`
	Status      string       `json:"status"`
	Provider    string       `json:"provider"`
	ProviderRef *string      `json:"provider_ref,omitempty"`
	PaidAt      *time.Time   `json:"paid_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	User        *LiteProfile `json:"user,omitempty"`
	Technician  *LiteProfile `json:"technician,omitempty"`
}

type PaymentListResponse struct {
	Items      []PaymentResponse  `json:"items"`
	Filters    PaymentListRequest `json:"filters"`
	Pagination utils.Pagination   `json:"pagination"`
}

type PaymentDetailRequest struct {
	ID uint64 `json:"id" validate:"required"`
}

type RequestLite struct {
	ID            uint64     `json:"id"`
	Status        string     `json:"status"`
	Description   string     `json:"description"`
	AcceptedPrice *string    `json:"accepted_price,omitempty"`
	ScheduledFor  *time.Time `json:"scheduled_for,omitempty"`
}

type PaymentDetailResponse struct {
	Payment        PaymentResponse        `json:"payment"`
	WebhookPayload map[string]interface{} `json:"webhook_payload"`
	Request        *RequestLite           `json:"request"`
	Refunds        []entity.Refund        `json:"refunds"`
}
