package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/databases/mysql"
)

type RequestRepository struct {
	DB mysql.DBInterface
}

func NewRequestRepository(db mysql.DBInterface) *RequestRepository {
	return &RequestRepository{
		DB: db,
	}
}

const requestColumns = "r.id, r.user_id, r.technician_id, r.category_id, r.description, r.status, r.accepted_price, r.address, r.latitude, r.longitude, r.scheduled_for, r.created_at, r.updated_at"

func (r *RequestRepository) List(ctx context.Context, filter entity.ServiceRequestFilter, limit, offset int) ([]entity.ServiceRequestRow, int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, 0, err
	}

	where := []string{"1=1"}
	var args []interface{}
	if filter.Status != "" {
		where = append(where, "r.status = ?")
		args = append(args, filter.Status)
	}
	if filter.CategoryID != nil {
		where = append(where, "r.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.TechnicianID != nil {
		where = append(where, "r.technician_id = ?")
		args = append(args, *filter.TechnicianID)
	}
	if filter.UserID != nil {
		where = append(where, "r.user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.DateFrom != nil {
		where = append(where, "r.created_at >= ?")
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		where = append(where, "r.created_at <= ?")
		args = append(args, *filter.DateTo)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ReplaceAll(filter.Search, " ", "%") + "%"
		if id, errParse := strconv.ParseUint(filter.Search, 10, 64); errParse == nil {
			where = append(where, "(r.id = ? OR r.user_id = ? OR r.technician_id = ?)")
			args = append(args, id, id, id)
		} else {
			where = append(where, "(r.description LIKE ? OR r.address LIKE ? OR cu.name LIKE ? OR cu.email LIKE ?)")
			args = append(args, pattern, pattern, pattern, pattern)
		}
	}

	body := `
		FROM service_requests r
		JOIN users cu ON cu.id = r.user_id
		LEFT JOIN users tu ON tu.id = r.technician_id
		JOIN categories c ON c.id = r.category_id
		WHERE ` + strings.Join(where, " AND ")

	var count int64
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*)"+body, args...); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + requestColumns + `,
			cu.name AS user_name,
			cu.email AS user_email,
			tu.name AS technician_name,
			c.name AS category_name` +
		body + `
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var rows []entity.ServiceRequestRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uint64) (*entity.ServiceRequestRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var row entity.ServiceRequestRow
	query := `
		SELECT ` + requestColumns + `,
			cu.name AS user_name,
			cu.email AS user_email,
			tu.name AS technician_name,
			c.name AS category_name
		FROM service_requests r
		JOIN users cu ON cu.id = r.user_id
		LEFT JOIN users tu ON tu.id = r.technician_id
		JOIN categories c ON c.id = r.category_id
		WHERE r.id = ?`
	if err := db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *RequestRepository) FindLite(ctx context.Context, id uint64) (*entity.ServiceRequest, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var request entity.ServiceRequest
	query := `
		SELECT id, user_id, technician_id, category_id, description, status, accepted_price, address, latitude, longitude, scheduled_for, created_at, updated_at
		FROM service_requests
		WHERE id = ?`
	if err := db.GetContext(ctx, &request, query, id); err != nil {
		return nil, err
	}
	return &request, nil
}

// Schedule moves a request to dijadwalkan with its visit time and the
// geocoded coordinates of the address. Only diproses requests can be
// scheduled.
func (r *RequestRepository) Schedule(ctx context.Context, id uint64, scheduledFor time.Time, lat, lng *float64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE service_requests
		SET status = ?, scheduled_for = ?, latitude = ?, longitude = ?, updated_at = NOW()
		WHERE id = ? AND status = ?`
	result, err := db.ExecContext(ctx, query, entity.RequestStatusDijadwalkan, scheduledFor, lat, lng, id, entity.RequestStatusDiproses)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
