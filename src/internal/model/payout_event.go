package model

import "time"

type Event interface {
	GetId() string
}

// PayoutStatusEvent is published when a payout leaves the pending state.
type PayoutStatusEvent struct {
	EventID      string    `json:"event_id"`
	PayoutID     uint64    `json:"payout_id"`
	TechnicianID uint64    `json:"technician_id"`
	Amount       string    `json:"amount"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (e *PayoutStatusEvent) GetId() string {
	return e.EventID
}
