package converter

import (
	"time"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"

	"github.com/google/uuid"
)

func PayoutToResponse(payout *entity.Payout) model.PayoutResponse {
	return model.PayoutResponse{
		ID:            payout.ID,
		TechnicianID:  payout.TechnicianID,
		Amount:        payout.Amount.String(),
		Status:        payout.Status,
		BankName:      payout.BankName,
		AccountName:   payout.AccountName,
		AccountNumber: payout.AccountNumber,
		Note:          payout.Note,
		PaidAt:        payout.PaidAt,
		CreatedAt:     payout.CreatedAt,
	}
}

func PayoutRowToResponse(row *entity.PayoutRow) model.PayoutResponse {
	resp := PayoutToResponse(&row.Payout)
	resp.Technician = &model.LiteProfile{
		ID:    row.TechnicianID,
		Name:  row.TechnicianName,
		Email: row.TechnicianEmail,
		Phone: row.TechnicianPhone,
	}
	return resp
}

func PayoutToStatusEvent(payout *entity.Payout) *model.PayoutStatusEvent {
	return &model.PayoutStatusEvent{
		EventID:      uuid.NewString(),
		PayoutID:     payout.ID,
		TechnicianID: payout.TechnicianID,
		Amount:       payout.Amount.String(),
		Status:       payout.Status,
		OccurredAt:   time.Now(),
	}
}
