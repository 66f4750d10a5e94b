package http

import (
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/usecase"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentController) GetList(ctx *fiber.Ctx) error {
	request := &model.PaymentListRequest{
		Q:            ctx.Query("q"),
		Status:       ctx.Query("status"),
		Provider:     ctx.Query("provider"),
		TechnicianID: ctx.Query("technician_id"),
		UserID:       ctx.Query("user_id"),
		RequestID:    ctx.Query("request_id"),
		DateFrom:     ctx.Query("date_from"),
		DateTo:       ctx.Query("date_to"),
		AmountMin:    ctx.Query("amount_min"),
		AmountMax:    ctx.Query("amount_max"),
		Page:         ctx.QueryInt("page", 1),
		Size:         ctx.QueryInt("size"),
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payment List", fiber.StatusOK, ctx)
}

func (c *PaymentController) GetDetail(ctx *fiber.Ctx) error {
	id, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.Detail(ctx.Context(), &model.PaymentDetailRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payment Detail", fiber.StatusOK, ctx)
}
