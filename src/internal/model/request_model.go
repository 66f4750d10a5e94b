package model

import (
	"time"

	"benerin-admin-service/src/pkg/utils"
)

type RequestListRequest struct {
	Q            string `json:"q"`
	Status       string `json:"status" validate:"omitempty,oneof=menunggu diproses dijadwalkan selesai dibatalkan"`
	CategoryID   string `json:"category_id"`
	TechnicianID string `json:"technician_id"`
	UserID       string `json:"user_id"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	Page         int    `json:"-"`
	Size         int    `json:"-"`
}

type ServiceRequestResponse struct {
	ID            uint64       `json:"id"`
	Status        string       `json:"status"`
	Description   string       `json:"description"`
	CategoryID    uint64       `json:"category_id"`
	CategoryName  string       `json:"category_name,omitempty"`
	AcceptedPrice *string      `json:"accepted_price,omitempty"`
	Address       string       `json:"address"`
	Latitude      *float64     `json:"latitude,omitempty"`
	Longitude     *float64     `json:"longitude,omitempty"`
	ScheduledFor  *time.Time   `json:"scheduled_for,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	User          *LiteProfile `json:"user,omitempty"`
	Technician    *LiteProfile `json:"technician,omitempty"`
}

type RequestListResponse struct {
	Items      []ServiceRequestResponse `json:"items"`
	Filters    RequestListRequest       `json:"filters"`
	Pagination utils.Pagination         `json:"pagination"`
}

type RequestDetailRequest struct {
	ID uint64 `json:"id" validate:"required"`
}

type ScheduleRequestRequest struct {
	ID           uint64 `json:"-" validate:"required"`
	ScheduledFor string `json:"scheduled_for" validate:"required"`
}
