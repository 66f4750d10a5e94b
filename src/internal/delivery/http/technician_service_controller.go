package http

import (
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/usecase"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TechnicianServiceController struct {
	Log     log.Log
	UseCase *usecase.TechnicianServiceUseCase
}

func NewTechnicianServiceController(useCase *usecase.TechnicianServiceUseCase, logger log.Log) *TechnicianServiceController {
	return &TechnicianServiceController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TechnicianServiceController) GetList(ctx *fiber.Ctx) error {
	technicianID, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	request := &model.TechnicianServiceListRequest{
		TechnicianID: technicianID,
		Page:         ctx.QueryInt("page", 1),
		Size:         ctx.QueryInt("size"),
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Technician Services", fiber.StatusOK, ctx)
}

func (c *TechnicianServiceController) PostSet(ctx *fiber.Ctx) error {
	technicianID, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.TechnicianServiceRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TechnicianServiceController.PostSet", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.TechnicianID = technicianID

	result := c.UseCase.Set(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Technician Service Saved", fiber.StatusOK, ctx)
}

func (c *TechnicianServiceController) PostToggle(ctx *fiber.Ctx) error {
	technicianID, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.TechnicianServiceToggleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TechnicianServiceController.PostToggle", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.TechnicianID = technicianID

	result := c.UseCase.Toggle(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Technician Service Toggled", fiber.StatusOK, ctx)
}

func (c *TechnicianServiceController) PostActivateAll(ctx *fiber.Ctx) error {
	return c.postBulk(ctx, true, "Technician Services Activated")
}

func (c *TechnicianServiceController) PostDeactivateAll(ctx *fiber.Ctx) error {
	return c.postBulk(ctx, false, "Technician Services Deactivated")
}

func (c *TechnicianServiceController) postBulk(ctx *fiber.Ctx, active bool, message string) error {
	technicianID, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	request := &model.TechnicianServiceBulkRequest{TechnicianID: technicianID}
	result := c.UseCase.SetAll(ctx.Context(), request, active)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, message, fiber.StatusOK, ctx)
}
