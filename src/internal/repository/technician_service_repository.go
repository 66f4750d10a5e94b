package repository

import (
	"context"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/databases/mysql"
)

type TechnicianServiceRepository struct {
	DB mysql.DBInterface
}

func NewTechnicianServiceRepository(db mysql.DBInterface) *TechnicianServiceRepository {
	return &TechnicianServiceRepository{
		DB: db,
	}
}

func (r *TechnicianServiceRepository) ListByTechnician(ctx context.Context, technicianID uint64, limit, offset int) ([]entity.TechnicianServiceRow, int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, 0, err
	}

	var count int64
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM technician_services WHERE technician_id = ?", technicianID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ts.id, ts.technician_id, ts.category_id, ts.active, ts.created_at, ts.updated_at,
			c.name AS category_name,
			c.slug AS category_slug
		FROM technician_services ts
		JOIN categories c ON c.id = ts.category_id
		WHERE ts.technician_id = ?
		ORDER BY c.name ASC
		LIMIT ? OFFSET ?`

	var rows []entity.TechnicianServiceRow
	if err := db.SelectContext(ctx, &rows, query, technicianID, limit, offset); err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

// Upsert relies on the unique (technician_id, category_id) index: inserting
// an existing pair flips its active flag instead of duplicating the row.
func (r *TechnicianServiceRepository) Upsert(ctx context.Context, service *entity.TechnicianService) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO technician_services (technician_id, category_id, active, created_at)
		VALUES (?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE active = VALUES(active), updated_at = NOW()`
	_, err = db.ExecContext(ctx, query, service.TechnicianID, service.CategoryID, service.Active)
	return err
}

func (r *TechnicianServiceRepository) Toggle(ctx context.Context, technicianID, categoryID uint64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE technician_services
		SET active = NOT active, updated_at = NOW()
		WHERE technician_id = ? AND category_id = ?`
	result, err := db.ExecContext(ctx, query, technicianID, categoryID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetAllActive upserts one row per catalog category for the technician, all
// with the given flag. Used by the activate-all / deactivate-all bulk ops.
func (r *TechnicianServiceRepository) SetAllActive(ctx context.Context, technicianID uint64, active bool) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO technician_services (technician_id, category_id, active, created_at)
		SELECT ?, c.id, ?, NOW() FROM categories c
		ON DUPLICATE KEY UPDATE active = VALUES(active), updated_at = NOW()`
	_, err = db.ExecContext(ctx, query, technicianID, active)
	return err
}
