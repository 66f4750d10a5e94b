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
)

const paymentPageSize = 20

type PaymentUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	PaymentRepository *repository.PaymentRepository
	RequestRepository *repository.RequestRepository
}

func NewPaymentUseCase(
	logger log.Log,
	validate *validator.Validate,
	paymentRepository *repository.PaymentRepository,
	requestRepository *repository.RequestRepository,
) *PaymentUseCase {
	return &PaymentUseCase{
		Log:               logger,
		Validate:          validate,
		PaymentRepository: paymentRepository,
		RequestRepository: requestRepository,
	}
}

func (c *PaymentUseCase) List(ctx context.Context, request *model.PaymentListRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "List", utils.ConvertString(request))
		return result
	}

	parser := newFilterParser()
	filter := entity.PaymentFilter{
		Search:       request.Q,
		Status:       request.Status,
		Provider:     request.Provider,
		TechnicianID: parser.Uint("technician_id", request.TechnicianID),
		UserID:       parser.Uint("user_id", request.UserID),
		RequestID:    parser.Uint("request_id", request.RequestID),
		DateFrom:     parser.Date("date_from", request.DateFrom),
		DateTo:       parser.DateEnd("date_to", request.DateTo),
		AmountMin:    parser.Decimal("amount_min", request.AmountMin),
		AmountMax:    parser.Decimal("amount_max", request.AmountMax),
	}
	if fields := parser.Err(); fields != nil {
		result.Error = httpError.NewUnprocessableEntity(fields)
		c.Log.Error("payment-usecase", "invalid filter values", "List", utils.ConvertString(fields))
		return result
	}

	page, size := utils.NormalizePage(request.Page, request.Size, paymentPageSize)
	rows, count, err := c.PaymentRepository.List(ctx, filter, size, utils.Offset(page, size))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to list payments"
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("List query failed: %v", err), "List", "")
		return result
	}

	items := make([]model.PaymentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, converter.PaymentRowToResponse(&rows[i]))
	}

	result.Data = model.PaymentListResponse{
		Items:      items,
		Filters:    *request,
		Pagination: utils.NewPagination(page, size, count),
	}
	return result
}

func (c *PaymentUseCase) Detail(ctx context.Context, request *model.PaymentDetailRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Detail", utils.ConvertString(request))
		return result
	}

	row, err := c.PaymentRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("payment %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("payment-usecase", errObj.Message, "Detail", utils.ConvertString(err))
		return result
	}

	// A dangling request_id only degrades the detail view, it does not fail
	// it.
	var requestLite *model.RequestLite
	if serviceRequest, errReq := c.RequestRepository.FindLite(ctx, row.RequestID); errReq == nil {
		requestLite = converter.RequestToLite(serviceRequest)
	} else {
		c.Log.Error("payment-usecase", fmt.Sprintf("Linked request %d not resolvable: %v", row.RequestID, errReq), "Detail", "")
	}

	refunds, err := c.PaymentRepository.RefundsByPayment(ctx, row.ID)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to load refunds"
		result.Error = errObj
		c.Log.Error("payment-usecase", fmt.Sprintf("RefundsByPayment failed: %v", err), "Detail", "")
		return result
	}
	if refunds == nil {
		refunds = []entity.Refund{}
	}

	result.Data = model.PaymentDetailResponse{
		Payment:        converter.PaymentRowToResponse(row),
		WebhookPayload: converter.DecodeWebhookPayload(row.WebhookPayload),
		Request:        requestLite,
		Refunds:        refunds,
	}
	return result
}
