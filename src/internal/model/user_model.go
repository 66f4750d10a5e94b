package model

import (
	"time"

	"benerin-admin-service/src/pkg/utils"
)

type UserListRequest struct {
	Q    string `json:"q"`
	Role string `json:"role" validate:"omitempty,oneof=admin user teknisi"`
	Page int    `json:"-"`
	Size int    `json:"-"`
}

type UserResponse struct {
	ID            uint64     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Role          string     `json:"role"`
	BankName      *string    `json:"bank_name,omitempty"`
	AccountName   *string    `json:"account_name,omitempty"`
	AccountNumber *string    `json:"account_number,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type UserListResponse struct {
	Items      []UserResponse   `json:"items"`
	Pagination utils.Pagination `json:"pagination"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Phone    string `json:"phone" validate:"required,max=30"`
	Role     string `json:"role" validate:"required,oneof=admin user teknisi"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

type UpdateUserRequest struct {
	ID            uint64  `json:"-" validate:"required"`
	Name          string  `json:"name" validate:"omitempty,max=100"`
	Phone         string  `json:"phone" validate:"omitempty,max=30"`
	Role          string  `json:"role" validate:"omitempty,oneof=admin user teknisi"`
	Password      string  `json:"password" validate:"omitempty,min=8,max=100"`
	BankName      *string `json:"bank_name" validate:"omitempty"`
	AccountName   *string `json:"account_name" validate:"omitempty"`
	AccountNumber *string `json:"account_number" validate:"omitempty"`
}

type GetUserRequest struct {
	ID uint64 `json:"id" validate:"required"`
}

type DeleteUserRequest struct {
	ID uint64 `json:"-" validate:"required"`
}
