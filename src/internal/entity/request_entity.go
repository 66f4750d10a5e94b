package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RequestStatusMenunggu    = "menunggu"
	RequestStatusDiproses    = "diproses"
	RequestStatusDijadwalkan = "dijadwalkan"
	RequestStatusSelesai     = "selesai"
	RequestStatusDibatalkan  = "dibatalkan"
)

// ServiceRequest is a customer's repair job.
type ServiceRequest struct {
	ID            uint64           `db:"id" json:"id"`
	UserID        uint64           `db:"user_id" json:"user_id"`
	TechnicianID  *uint64          `db:"technician_id" json:"technician_id,omitempty"`
	CategoryID    uint64           `db:"category_id" json:"category_id"`
	Description   string           `db:"description" json:"description"`
	Status        string           `db:"status" json:"status"`
	AcceptedPrice *decimal.Decimal `db:"accepted_price" json:"accepted_price,omitempty"`
	Address       string           `db:"address" json:"address"`
	Latitude      *float64         `db:"latitude" json:"latitude,omitempty"`
	Longitude     *float64         `db:"longitude" json:"longitude,omitempty"`
	ScheduledFor  *time.Time       `db:"scheduled_for" json:"scheduled_for,omitempty"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time       `db:"updated_at" json:"updated_at,omitempty"`
}

// ServiceRequestRow joins the request with customer/technician/category lite
// columns for the admin list.
type ServiceRequestRow struct {
	ServiceRequest
	UserName       string  `db:"user_name"`
	UserEmail      string  `db:"user_email"`
	TechnicianName *string `db:"technician_name"`
	CategoryName   string  `db:"category_name"`
}

type ServiceRequestFilter struct {
	Search       string
	Status       string
	CategoryID   *uint64
	TechnicianID *uint64
	UserID       *uint64
	DateFrom     *time.Time
	DateTo       *time.Time
}
