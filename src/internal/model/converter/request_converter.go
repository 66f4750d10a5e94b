package converter

import (
	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"
)

func RequestToResponse(request *entity.ServiceRequest) model.ServiceRequestResponse {
	resp := model.ServiceRequestResponse{
		ID:           request.ID,
		Status:       request.Status,
		Description:  request.Description,
		CategoryID:   request.CategoryID,
		Address:      request.Address,
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		ScheduledFor: request.ScheduledFor,
		CreatedAt:    request.CreatedAt,
	}
	if request.AcceptedPrice != nil {
		price := request.AcceptedPrice.String()
		resp.AcceptedPrice = &price
	}
	return resp
}

func RequestRowToResponse(row *entity.ServiceRequestRow) model.ServiceRequestResponse {
	resp := RequestToResponse(&row.ServiceRequest)
	resp.CategoryName = row.CategoryName
	resp.User = &model.LiteProfile{
		ID:    row.UserID,
		Name:  row.UserName,
		Email: row.UserEmail,
	}
	if row.TechnicianID != nil && row.TechnicianName != nil {
		resp.Technician = &model.LiteProfile{
			ID:   *row.TechnicianID,
			Name: *row.TechnicianName,
		}
	}
	return resp
}
