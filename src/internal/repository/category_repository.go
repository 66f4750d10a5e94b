package repository

import (
	"context"
	"strings"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/databases/mysql"

	driver "github.com/go-sql-driver/mysql"
)

type CategoryRepository struct {
	DB mysql.DBInterface
}

func NewCategoryRepository(db mysql.DBInterface) *CategoryRepository {
	return &CategoryRepository{
		DB: db,
	}
}

// IsDuplicateKey reports whether err is the MySQL duplicate-entry error
// (1062). The unique index is the source of truth for slug and
// technician-service uniqueness; the application maps this error to the same
// field-error shape a validation pre-check would produce.
func IsDuplicateKey(err error) bool {
	if mysqlErr, ok := err.(*driver.MySQLError); ok {
		return mysqlErr.Number == 1062
	}
	return false
}

func (r *CategoryRepository) List(ctx context.Context, search string) ([]entity.Category, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := "SELECT id, name, slug, icon, created_at, updated_at FROM categories"
	var args []interface{}
	if search != "" {
		pattern := "%" + strings.ReplaceAll(search, " ", "%") + "%"
		query += " WHERE name LIKE ? OR slug LIKE ?"
		args = append(args, pattern, pattern)
	}
	query += " ORDER BY name ASC"

	var categories []entity.Category
	if err := db.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint64) (*entity.Category, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var category entity.Category
	query := "SELECT id, name, slug, icon, created_at, updated_at FROM categories WHERE id = ?"
	if err := db.GetContext(ctx, &category, query, id); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) SlugExists(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	var count int64
	query := "SELECT COUNT(*) FROM categories WHERE slug = ? AND id != ?"
	if err := db.GetContext(ctx, &count, query, slug, excludeID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := "INSERT INTO categories (name, slug, icon, created_at) VALUES (?, ?, ?, NOW())"
	result, err := db.ExecContext(ctx, query, category.Name, category.Slug, category.Icon)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	category.ID = uint64(id)
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := "UPDATE categories SET name = ?, slug = ?, icon = ?, updated_at = NOW() WHERE id = ?"
	_, err = db.ExecContext(ctx, query, category.Name, category.Slug, category.Icon, category.ID)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	result, err := db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
