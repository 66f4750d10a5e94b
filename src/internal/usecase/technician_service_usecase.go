package usecase

import (
	"context"
	"fmt"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/repository"
	httpError "benerin-admin-service/src/pkg/http-error"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

const technicianServicePageSize = 50

type TechnicianServiceUseCase struct {
	Log                   log.Log
	Validate              *validator.Validate
	UserRepository        *repository.UserRepository
	CategoryRepository    *repository.CategoryRepository
	TechServiceRepository *repository.TechnicianServiceRepository
}

func NewTechnicianServiceUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository *repository.UserRepository,
	categoryRepository *repository.CategoryRepository,
	techServiceRepository *repository.TechnicianServiceRepository,
) *TechnicianServiceUseCase {
	return &TechnicianServiceUseCase{
		Log:                   logger,
		Validate:              validate,
		UserRepository:        userRepository,
		CategoryRepository:    categoryRepository,
		TechServiceRepository: techServiceRepository,
	}
}

func (c *TechnicianServiceUseCase) requireTechnician(ctx context.Context, technicianID uint64) *httpError.ErrorObj {
	technician, err := c.UserRepository.FindByID(ctx, technicianID)
	if err != nil || technician.Role != entity.RoleTeknisi {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("technician %d not found", technicianID)
		return errObj
	}
	return nil
}

func (c *TechnicianServiceUseCase) List(ctx context.Context, request *model.TechnicianServiceListRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("technician-service-usecase", errObj.Message, "List", utils.ConvertString(request))
		return result
	}

	if errObj := c.requireTechnician(ctx, request.TechnicianID); errObj != nil {
		result.Error = errObj
		return result
	}

	page, size := utils.NormalizePage(request.Page, request.Size, technicianServicePageSize)
	rows, count, err := c.TechServiceRepository.ListByTechnician(ctx, request.TechnicianID, size, utils.Offset(page, size))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to list technician services"
		result.Error = errObj
		c.Log.Error("technician-service-usecase", fmt.Sprintf("ListByTechnician failed: %v", err), "List", "")
		return result
	}
	if rows == nil {
		rows = []entity.TechnicianServiceRow{}
	}

	result.Data = model.TechnicianServiceListResponse{
		Items:      rows,
		Pagination: utils.NewPagination(page, size, count),
	}
	return result
}

func (c *TechnicianServiceUseCase) Set(ctx context.Context, request *model.TechnicianServiceRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("technician-service-usecase", errObj.Message, "Set", utils.ConvertString(request))
		return result
	}

	if errObj := c.requireTechnician(ctx, request.TechnicianID); errObj != nil {
		result.Error = errObj
		return result
	}
	if _, err := c.CategoryRepository.FindByID(ctx, request.CategoryID); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("category %d not found", request.CategoryID)
		result.Error = errObj
		return result
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}
	service := &entity.TechnicianService{
		TechnicianID: request.TechnicianID,
		CategoryID:   request.CategoryID,
		Active:       active,
	}

	if err := c.TechServiceRepository.Upsert(ctx, service); err != nil {
		if repository.IsDuplicateKey(err) {
			result.Error = httpError.NewUnprocessableEntity(map[string]string{
				"category_id": "technician already offers this category",
			})
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to save technician service"
		result.Error = errObj
		c.Log.Error("technician-service-usecase", fmt.Sprintf("Upsert failed: %v", err), "Set", "")
		return result
	}

	result.Data = service
	return result
}

// Toggle flips the active flag of an existing pair; a pair the technician
// never had is created active.
func (c *TechnicianServiceUseCase) Toggle(ctx context.Context, request *model.TechnicianServiceToggleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("technician-service-usecase", errObj.Message, "Toggle", utils.ConvertString(request))
		return result
	}

	if errObj := c.requireTechnician(ctx, request.TechnicianID); errObj != nil {
		result.Error = errObj
		return result
	}

	toggled, err := c.TechServiceRepository.Toggle(ctx, request.TechnicianID, request.CategoryID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to toggle technician service"
		result.Error = errObj
		c.Log.Error("technician-service-usecase", fmt.Sprintf("Toggle failed: %v", err), "Toggle", "")
		return result
	}

	if !toggled {
		if _, err := c.CategoryRepository.FindByID(ctx, request.CategoryID); err != nil {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("category %d not found", request.CategoryID)
			result.Error = errObj
			return result
		}
		service := &entity.TechnicianService{
			TechnicianID: request.TechnicianID,
			CategoryID:   request.CategoryID,
			Active:       true,
		}
		if err := c.TechServiceRepository.Upsert(ctx, service); err != nil {
			errObj := httpError.NewInternalServerError()
			errObj.Message = "Failed to create technician service"
			result.Error = errObj
			c.Log.Error("technician-service-usecase", fmt.Sprintf("Upsert failed: %v", err), "Toggle", "")
			return result
		}
	}

	result.Data = map[string]interface{}{"toggled": true}
	return result
}

func (c *TechnicianServiceUseCase) SetAll(ctx context.Context, request *model.TechnicianServiceBulkRequest, active bool) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("technician-service-usecase", errObj.Message, "SetAll", utils.ConvertString(request))
		return result
	}

	if errObj := c.requireTechnician(ctx, request.TechnicianID); errObj != nil {
		result.Error = errObj
		return result
	}

	if err := c.TechServiceRepository.SetAllActive(ctx, request.TechnicianID, active); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to update technician services"
		result.Error = errObj
		c.Log.Error("technician-service-usecase", fmt.Sprintf("SetAllActive failed: %v", err), "SetAll", "")
		return result
	}

	result.Data = map[string]interface{}{"active": active}
	return result
}
