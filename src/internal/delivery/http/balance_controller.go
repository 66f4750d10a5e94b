package http

import (
	"strconv"

	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/usecase"
	httpError "benerin-admin-service/src/pkg/http-error"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type BalanceController struct {
	Log     log.Log
	UseCase *usecase.BalanceUseCase
}

func NewBalanceController(useCase *usecase.BalanceUseCase, logger log.Log) *BalanceController {
	return &BalanceController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *BalanceController) GetRollup(ctx *fiber.Ctx) error {
	request := &model.BalanceListRequest{
		Q:         ctx.Query("q"),
		OwnerRole: ctx.Query("owner_role"),
		Type:      ctx.Query("type"),
		DateFrom:  ctx.Query("date_from"),
		DateTo:    ctx.Query("date_to"),
		AmountMin: ctx.Query("amount_min"),
		AmountMax: ctx.Query("amount_max"),
		OwnerID:   ctx.Query("owner_id"),
		RefTable:  ctx.Query("ref_table"),
		RefID:     ctx.Query("ref_id"),
		Page:      ctx.QueryInt("page", 1),
		Size:      ctx.QueryInt("size"),
	}

	result := c.UseCase.Rollup(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Balance Rollup", fiber.StatusOK, ctx)
}

func (c *BalanceController) GetDetail(ctx *fiber.Ctx) error {
	ownerID, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "owner id must be numeric"
		return utils.ResponseError(errObj, ctx)
	}

	request := &model.BalanceDetailRequest{
		OwnerRole: ctx.Params("role"),
		OwnerID:   ownerID,
		Q:         ctx.Query("q"),
		Type:      ctx.Query("type"),
		DateFrom:  ctx.Query("date_from"),
		DateTo:    ctx.Query("date_to"),
		RefTable:  ctx.Query("ref_table"),
		RefID:     ctx.Query("ref_id"),
		Page:      ctx.QueryInt("page", 1),
		Size:      ctx.QueryInt("size"),
	}

	result := c.UseCase.Detail(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Balance Detail", fiber.StatusOK, ctx)
}
