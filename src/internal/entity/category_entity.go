package entity

import "time"

type Category struct {
	ID        uint64     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Slug      string     `db:"slug" json:"slug"`
	Icon      *string    `db:"icon" json:"icon,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// TechnicianService marks a technician as offering repairs in a category.
// The (technician_id, category_id) pair is unique.
type TechnicianService struct {
	ID           uint64     `db:"id" json:"id"`
	TechnicianID uint64     `db:"technician_id" json:"technician_id"`
	CategoryID   uint64     `db:"category_id" json:"category_id"`
	Active       bool       `db:"active" json:"active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type TechnicianServiceRow struct {
	TechnicianService
	CategoryName string `db:"category_name"`
	CategorySlug string `db:"category_slug"`
}
