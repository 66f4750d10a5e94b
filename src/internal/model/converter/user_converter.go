package converter

import (
	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"
)

func UserToResponse(user *entity.User) model.UserResponse {
	return model.UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		Role:          user.Role,
		BankName:      user.BankName,
		AccountName:   user.AccountName,
		AccountNumber: user.AccountNumber,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func UserToLite(user *entity.User) *model.LiteProfile {
	return &model.LiteProfile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}
