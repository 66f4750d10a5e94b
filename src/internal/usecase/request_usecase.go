package usecase

import (
	"context"
	"fmt"
	"time"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/model/converter"
	"benerin-admin-service/src/internal/repository"
	httpError "benerin-admin-service/src/pkg/http-error"
	"benerin-admin-service/src/pkg/log"
	"benerin-admin-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"googlemaps.github.io/maps"
)

const requestPageSize = 20

type RequestUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	RequestRepository *repository.RequestRepository
	Maps              *maps.Client
}

func NewRequestUseCase(
	logger log.Log,
	validate *validator.Validate,
	requestRepository *repository.RequestRepository,
	mapsClient *maps.Client,
) *RequestUseCase {
	return &RequestUseCase{
		Log:               logger,
		Validate:          validate,
		RequestRepository: requestRepository,
		Maps:              mapsClient,
	}
}

func (c *RequestUseCase) List(ctx context.Context, request *model.RequestListRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("request-usecase", errObj.Message, "List", utils.ConvertString(request))
		return result
	}

	parser := newFilterParser()
	filter := entity.ServiceRequestFilter{
		Search:       request.Q,
		Status:       request.Status,
		CategoryID:   parser.Uint("category_id", request.CategoryID),
		TechnicianID: parser.Uint("technician_id", request.TechnicianID),
		UserID:       parser.Uint("user_id", request.UserID),
		DateFrom:     parser.Date("date_from", request.DateFrom),
		DateTo:       parser.DateEnd("date_to", request.DateTo),
	}
	if fields := parser.Err(); fields != nil {
		result.Error = httpError.NewUnprocessableEntity(fields)
		c.Log.Error("request-usecase", "invalid filter values", "List", utils.ConvertString(fields))
		return result
	}

	page, size := utils.NormalizePage(request.Page, request.Size, requestPageSize)
	rows, count, err := c.RequestRepository.List(ctx, filter, size, utils.Offset(page, size))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to list service requests"
		result.Error = errObj
		c.Log.Error("request-usecase", fmt.Sprintf("List failed: %v", err), "List", "")
		return result
	}

	items := make([]model.ServiceRequestResponse, 0, len(rows))
	for i := range rows {
		items = append(items, converter.RequestRowToResponse(&rows[i]))
	}

	result.Data = model.RequestListResponse{
		Items:      items,
		Filters:    *request,
		Pagination: utils.NewPagination(page, size, count),
	}
	return result
}

func (c *RequestUseCase) Detail(ctx context.Context, request *model.RequestDetailRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("request-usecase", errObj.Message, "Detail", utils.ConvertString(request))
		return result
	}

	row, err := c.RequestRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("service request %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("request-usecase", errObj.Message, "Detail", utils.ConvertString(err))
		return result
	}

	result.Data = converter.RequestRowToResponse(row)
	return result
}

// Schedule sets the visit time of a diproses request and geocodes its
// address for dispatch. Geocoding is best effort: an unreachable maps API
// leaves the coordinates empty instead of failing the scheduling.
func (c *RequestUseCase) Schedule(ctx context.Context, request *model.ScheduleRequestRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("request-usecase", errObj.Message, "Schedule", utils.ConvertString(request))
		return result
	}

	scheduledFor, err := time.Parse(time.RFC3339, request.ScheduledFor)
	if err != nil {
		result.Error = httpError.NewUnprocessableEntity(map[string]string{
			"scheduled_for": "must be an RFC3339 timestamp",
		})
		return result
	}
	if scheduledFor.Before(time.Now()) {
		result.Error = httpError.NewUnprocessableEntity(map[string]string{
			"scheduled_for": "must be in the future",
		})
		return result
	}

	row, err := c.RequestRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("service request %d not found", request.ID)
		result.Error = errObj
		c.Log.Error("request-usecase", errObj.Message, "Schedule", utils.ConvertString(err))
		return result
	}

	if row.Status != entity.RequestStatusDiproses {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("service request %d is %s, only diproses requests can be scheduled", row.ID, row.Status)
		result.Error = errObj
		c.Log.Error("request-usecase", errObj.Message, "Schedule", "")
		return result
	}

	lat, lng := c.geocode(ctx, row.Address)

	ok, err := c.RequestRepository.Schedule(ctx, row.ID, scheduledFor, lat, lng)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "Failed to schedule service request"
		result.Error = errObj
		c.Log.Error("request-usecase", fmt.Sprintf("Schedule failed: %v", err), "Schedule", "")
		return result
	}
	if !ok {
		errObj := httpError.NewConflict()
		errObj.Message = "Service request changed state, please reload"
		result.Error = errObj
		c.Log.Error("request-usecase", errObj.Message, "Schedule", "concurrent-update")
		return result
	}

	row.Status = entity.RequestStatusDijadwalkan
	row.ScheduledFor = &scheduledFor
	row.Latitude = lat
	row.Longitude = lng

	result.Data = converter.RequestRowToResponse(row)
	return result
}

func (c *RequestUseCase) geocode(ctx context.Context, address string) (*float64, *float64) {
	if c.Maps == nil || address == "" {
		return nil, nil
	}

	results, err := c.Maps.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil || len(results) == 0 {
		c.Log.Error("request-usecase", fmt.Sprintf("Geocoding failed for %q: %v", address, err), "geocode", "")
		return nil, nil
	}

	lat := results[0].Geometry.Location.Lat
	lng := results[0].Geometry.Location.Lng
	return &lat, &lng
}
