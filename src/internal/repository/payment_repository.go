package repository

import (
	"context"
	"strconv"
	"strings"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/databases/mysql"
)

type PaymentRepository struct {
	DB mysql.DBInterface
}

func NewPaymentRepository(db mysql.DBInterface) *PaymentRepository {
	return &PaymentRepository{
		DB: db,
	}
}

const paymentColumns = "p.id, p.request_id, p.user_id, p.technician_id, p.amount, p.status, p.provider, p.provider_ref, p.snap_token, p.snap_redirect_url, p.webhook_payload, p.paid_at, p.created_at, p.updated_at"

func paymentListConds(filter entity.PaymentFilter) ([]string, []interface{}) {
	where := []string{"1=1"}
	var args []interface{}

	if filter.Status != "" {
		where = append(where, "p.status = ?")
		args = append(args, filter.Status)
	}
	if filter.Provider != "" {
		where = append(where, "p.provider = ?")
		args = append(args, filter.Provider)
	}
	if filter.TechnicianID != nil {
		where = append(where, "p.technician_id = ?")
		args = append(args, *filter.TechnicianID)
	}
	if filter.UserID != nil {
		where = append(where, "p.user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.RequestID != nil {
		where = append(where, "p.request_id = ?")
		args = append(args, *filter.RequestID)
	}
	if filter.DateFrom != nil {
		where = append(where, "p.created_at >= ?")
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		where = append(where, "p.created_at <= ?")
		args = append(args, *filter.DateTo)
	}
	if filter.AmountMin != nil {
		where = append(where, "p.amount >= ?")
		args = append(args, *filter.AmountMin)
	}
	if filter.AmountMax != nil {
		where = append(where, "p.amount <= ?")
		args = append(args, *filter.AmountMax)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ReplaceAll(filter.Search, " ", "%") + "%"
		if id, err := strconv.ParseUint(filter.Search, 10, 64); err == nil {
			where = append(where, "(p.id = ? OR p.request_id = ? OR p.user_id = ? OR p.technician_id = ?)")
			args = append(args, id, id, id, id)
		} else {
			where = append(where, "(p.provider_ref LIKE ? OR cu.name LIKE ? OR cu.email LIKE ? OR tu.name LIKE ? OR tu.email LIKE ?)")
			args = append(args, pattern, pattern, pattern, pattern, pattern)
		}
	}

	return where, args
}

func (r *PaymentRepository) List(ctx context.Context, filter entity.PaymentFilter, limit, offset int) ([]entity.PaymentRow, int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, 0, err
	}

	where, args := paymentListConds(filter)
	body := `
		FROM payments p
		JOIN users cu ON cu.id = p.user_id
		LEFT JOIN users tu ON tu.id = p.technician_id
		WHERE ` + strings.Join(where, " AND ")

	var count int64
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*)"+body, args...); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + paymentColumns + `,
			cu.name AS user_name,
			cu.email AS user_email,
			tu.name AS technician_name,
			tu.email AS technician_email` +
		body + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var rows []entity.PaymentRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint64) (*entity.PaymentRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var row entity.PaymentRow
	query := `
		SELECT ` + paymentColumns + `,
			cu.name AS user_name,
			cu.email AS user_email,
			tu.name AS technician_name,
			tu.email AS technician_email
		FROM payments p
		JOIN users cu ON cu.id = p.user_id
		LEFT JOIN users tu ON tu.id = p.technician_id
		WHERE p.id = ?`
	if err := db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// RefundsByPayment lists the refunds tied to one payment, most recent first.
func (r *PaymentRepository) RefundsByPayment(ctx context.Context, paymentID uint64) ([]entity.Refund, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, payment_id, amount, status, reason, provider_ref, refunded_at, created_at
		FROM refunds
		WHERE payment_id = ?
		ORDER BY created_at DESC, id DESC`

	var refunds []entity.Refund
	if err := db.SelectContext(ctx, &refunds, query, paymentID); err != nil {
		return nil, err
	}
	return refunds, nil
}
