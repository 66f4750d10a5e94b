package model

import "benerin-admin-service/src/pkg/utils"

type CategoryRequest struct {
	ID   uint64 `json:"-"`
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=100"`
	Icon string `json:"icon" validate:"omitempty,max=100"`
}

type CategoryDeleteRequest struct {
	ID uint64 `json:"-" validate:"required"`
}

type TechnicianServiceRequest struct {
	TechnicianID uint64 `json:"technician_id" validate:"required"`
	CategoryID   uint64 `json:"category_id" validate:"required"`
	Active       *bool  `json:"active"`
}

type TechnicianServiceToggleRequest struct {
	TechnicianID uint64 `json:"-" validate:"required"`
	CategoryID   uint64 `json:"category_id" validate:"required"`
}

type TechnicianServiceBulkRequest struct {
	TechnicianID uint64 `json:"-" validate:"required"`
}

type TechnicianServiceListRequest struct {
	TechnicianID uint64 `json:"-" validate:"required"`
	Page         int    `json:"-"`
	Size         int    `json:"-"`
}

type TechnicianServiceListResponse struct {
	Items      interface{}      `json:"items"`
	Pagination utils.Pagination `json:"pagination"`
}
