package usecase

import (
	"context"
	"fmt"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/model/converter"
	"benerin-admin-service/src/internal/repository"
	httpError "benerin-admin-service/src/pkg/http-error"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const userPageSize = 20

type UserUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository *repository.UserRepository
}

func NewUserUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository *repository.UserRepository,
) *UserUseCase {
	return &UserUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
	}
}

func (c *UserUseCase) List(ctx context.Context, request *model.UserListRequest) utils.Result {
	var result utils.Result

	// Accept the legacy technician label before the oneof check sees it.
	request.Role = entity.NormalizeRole(request.Role)

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "List", utils.ConvertString(request))
		return result
	}

	page, size := utils.NormalizePage(request.Page, request.Size, userPageSize)
	users, count, err := c.UserRepository.List(ctx, request.Q, request.Role, size, utils.Offset(page, size))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to list users"
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("List failed: %v", err), "List", "")
		return result
	}

	items := make([]model.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, converter.UserToResponse(&users[i]))
	}

	result.Data = model.UserListResponse{
		Items:      items,
		Pagination: utils.NewPagination(page, size, count),
	}
	return result
}

func (c *UserUseCase) Get(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Get", utils.ConvertString(request))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Get", utils.ConvertString(err))
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) Create(ctx context.Context, request *model.CreateUserRequest) utils.Result {
	var result utils.Result

	request.Role = entity.NormalizeRole(request.Role)

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Create", utils.ConvertString(request))
		return result
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to hash password"
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("bcrypt failed: %v", err), "Create", "")
		return result
	}

	user := &entity.User{
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Role:     request.Role,
		Password: string(hashed),
	}

	if err := c.UserRepository.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			result.Error = httpError.NewUnprocessableEntity(map[string]string{
				"email": "email is already registered",
			})
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to create user"
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("Create failed: %v", err), "Create", "")
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) Update(ctx context.Context, request *model.UpdateUserRequest) utils.Result {
	var result utils.Result

	request.Role = entity.NormalizeRole(request.Role)

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Update", utils.ConvertString(request))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Update", utils.ConvertString(err))
		return result
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Phone != "" {
		user.Phone = request.Phone
	}
	if request.Role != "" {
		user.Role = request.Role
	}
	if request.Password != "" {
		hashed, errHash := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if errHash != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = "Failed to hash password"
			result.Error = errObj
			c.Log.Error("user-usecase", fmt.Sprintf("bcrypt failed: %v", errHash), "Update", "")
			return result
		}
		user.Password = string(hashed)
	}
	if request.BankName != nil {
		user.BankName = request.BankName
	}
	if request.AccountName != nil {
		user.AccountName = request.AccountName
	}
	if request.AccountNumber != nil {
		user.AccountNumber = request.AccountNumber
	}

	if err := c.UserRepository.Update(ctx, user); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to update user"
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("Update failed: %v", err), "Update", "")
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) Delete(ctx context.Context, request *model.DeleteUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "Delete", utils.ConvertString(request))
		return result
	}

	ok, err := c.UserRepository.Delete(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to delete user"
		result.Error = errObj
		c.Log.Error("user-usecase", fmt.Sprintf("Delete failed: %v", err), "Delete", "")
		return result
	}
	if !ok {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %d not found", request.ID)
		result.Error = errObj
		return result
	}

	result.Data = map[string]interface{}{"deleted": true}
	return result
}
