package http

import (
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/usecase"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type RequestController struct {
	Log     log.Log
	UseCase *usecase.RequestUseCase
}

func NewRequestController(useCase *usecase.RequestUseCase, logger log.Log) *RequestController {
	return &RequestController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *RequestController) GetList(ctx *fiber.Ctx) error {
	request := &model.RequestListRequest{
		Q:            ctx.Query("q"),
		Status:       ctx.Query("status"),
		CategoryID:   ctx.Query("category_id"),
		TechnicianID: ctx.Query("technician_id"),
		UserID:       ctx.Query("user_id"),
		DateFrom:     ctx.Query("date_from"),
		DateTo:       ctx.Query("date_to"),
		Page:         ctx.QueryInt("page", 1),
		Size:         ctx.QueryInt("size"),
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Service Request List", fiber.StatusOK, ctx)
}

func (c *RequestController) GetDetail(ctx *fiber.Ctx) error {
	id, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.Detail(ctx.Context(), &model.RequestDetailRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Service Request Detail", fiber.StatusOK, ctx)
}

func (c *RequestController) PostSchedule(ctx *fiber.Ctx) error {
	id, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.ScheduleRequestRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("RequestController.PostSchedule", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = id

	result := c.UseCase.Schedule(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Service Request Scheduled", fiber.StatusOK, ctx)
}
