package repository

import (
	"context"
	"strconv"
	"strings"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/databases/mysql"
)

type UserRepository struct {
	DB mysql.DBInterface
}

func NewUserRepository(db mysql.DBInterface) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

const userColumns = "id, name, email, phone, role, password, bank_name, account_name, account_number, created_at, updated_at"

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	if err := db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByRoleAndID resolves a ledger account: the row must exist AND carry
// the expected role, otherwise it is treated as not found.
func (r *UserRepository) FindByRoleAndID(ctx context.Context, role string, id uint64) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := "SELECT " + userColumns + " FROM users WHERE id = ? AND role = ?"
	if err := db.GetContext(ctx, &user, query, id, entity.NormalizeRole(role)); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, search, role string, limit, offset int) ([]entity.User, int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, 0, err
	}

	where := []string{"1=1"}
	var args []interface{}
	if role != "" {
		where = append(where, "role = ?")
		args = append(args, entity.NormalizeRole(role))
	}
	if search != "" {
		if id, errParse := strconv.ParseUint(search, 10, 64); errParse == nil {
			where = append(where, "id = ?")
			args = append(args, id)
		} else {
			pattern := "%" + strings.ReplaceAll(search, " ", "%") + "%"
			where = append(where, "(name LIKE ? OR email LIKE ? OR phone LIKE ?)")
			args = append(args, pattern, pattern, pattern)
		}
	}
	whereClause := strings.Join(where, " AND ")

	var count int64
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM users WHERE "+whereClause, args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + userColumns + " FROM users WHERE " + whereClause + " ORDER BY id ASC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	var users []entity.User
	if err := db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (name, email, phone, role, password, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())`
	result, err := db.ExecContext(ctx, query, user.Name, user.Email, user.Phone, user.Role, user.Password)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = uint64(id)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET name = ?, phone = ?, role = ?, password = ?, bank_name = ?, account_name = ?, account_number = ?, updated_at = NOW()
		WHERE id = ?`
	_, err = db.ExecContext(ctx, query,
		user.Name, user.Phone, user.Role, user.Password,
		user.BankName, user.AccountName, user.AccountNumber, user.ID)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	result, err := db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
