package http

import (
	"strconv"

	"benerin-admin-service/src/internal/delivery/http/middleware"
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/usecase"
	httpError "benerin-admin-service/src/pkg/http-error"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PayoutController struct {
	Log     log.Log
	UseCase *usecase.PayoutUseCase
}

func NewPayoutController(useCase *usecase.PayoutUseCase, logger log.Log) *PayoutController {
	return &PayoutController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PayoutController) GetList(ctx *fiber.Ctx) error {
	request := &model.PayoutListRequest{
		Q:            ctx.Query("q"),
		Status:       ctx.Query("status"),
		TechnicianID: ctx.Query("technician_id"),
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

	return utils.Response(result.Data, "Payout List", fiber.StatusOK, ctx)
}

func (c *PayoutController) GetDetail(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Detail(ctx.Context(), &model.PayoutDetailRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payout Detail", fiber.StatusOK, ctx)
}

func (c *PayoutController) PostApprove(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	id, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.PayoutApproveRequest)
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(request); err != nil {
			c.Log.Error("PayoutController.PostApprove", "Failed to parse request body", "error", err.Error())
			return utils.ResponseError(err, ctx)
		}
	}
	request.ID = id
	request.AdminID = parseMetaID(auth.UserID)

	result := c.UseCase.Approve(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payout Approved", fiber.StatusOK, ctx)
}

func (c *PayoutController) PostReject(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	id, errObj := parseIDParam(ctx)
	if errObj != nil {
		return utils.ResponseError(errObj, ctx)
	}

	request := new(model.PayoutRejectRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PayoutController.PostReject", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = id
	request.AdminID = parseMetaID(auth.UserID)

	result := c.UseCase.Reject(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payout Rejected", fiber.StatusOK, ctx)
}

func (c *PayoutController) GetReconciliation(ctx *fiber.Ctx) error {
	result := c.UseCase.ReconciliationReport(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payout Reconciliation", fiber.StatusOK, ctx)
}

func parseIDParam(ctx *fiber.Ctx) (uint64, *httpError.ErrorObj) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil || id == 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "id must be numeric"
		return 0, errObj
	}
	return id, nil
}

func parseMetaID(raw string) uint64 {
	id, _ := strconv.ParseUint(raw, 10, 64)
	return id
}
