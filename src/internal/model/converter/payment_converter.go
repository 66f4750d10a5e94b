package converter

import (
	"encoding/json"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"
)

func PaymentToResponse(payment *entity.Payment) model.PaymentResponse {
	return model.PaymentResponse{
		ID:          payment.ID,
		RequestID:   payment.RequestID,
		Amount:      payment.Amount.String(),
		Status:      payment.Status,
		Provider:    payment.Provider,
		ProviderRef: payment.ProviderRef,
		PaidAt:      payment.PaidAt,
		CreatedAt:   payment.CreatedAt,
	}
}

func PaymentRowToResponse(row *entity.PaymentRow) model.PaymentResponse {
	resp := PaymentToResponse(&row.Payment)
	resp.User = &model.LiteProfile{
		ID:    row.UserID,
		Name:  row.UserName,
		Email: row.UserEmail,
	}
	if row.TechnicianID != nil && row.TechnicianName != nil {
		technician := &model.LiteProfile{
			ID:   *row.TechnicianID,
			Name: *row.TechnicianName,
		}
		if row.TechnicianEmail != nil {
			technician.Email = *row.TechnicianEmail
		}
		resp.Technician = technician
	}
	return resp
}

// DecodeWebhookPayload parses the stored gateway payload. The payload comes
// from an external webhook and is not trusted to be well formed: malformed
// JSON or a non-object document resolves to nil, never to an error.
func DecodeWebhookPayload(raw *string) map[string]interface{} {
	if raw == nil || *raw == "" {
		return nil
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(*raw), &decoded); err != nil {
		return nil
	}
	return decoded
}

func RequestToLite(request *entity.ServiceRequest) *model.RequestLite {
	if request == nil {
		return nil
	}
	lite := &model.RequestLite{
		ID:           request.ID,
		Status:       request.Status,
		Description:  request.Description,
		ScheduledFor: request.ScheduledFor,
	}
	if request.AcceptedPrice != nil {
		price := request.AcceptedPrice.String()
		lite.AcceptedPrice = &price
	}
	return lite
}
