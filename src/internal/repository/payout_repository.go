package repository

import (
	"context"
	"strconv"
	"strings"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type PayoutRepository struct {
	DB mysql.DBInterface
}

func NewPayoutRepository(db mysql.DBInterface) *PayoutRepository {
	return &PayoutRepository{
		DB: db,
	}
}

const payoutColumns = "p.id, p.technician_id, p.amount, p.status, p.bank_name, p.account_name, p.account_number, p.note, p.paid_at, p.created_at, p.updated_at"

func payoutListConds(filter entity.PayoutFilter) ([]string, []interface{}) {
	where := []string{"1=1"}
	var args []interface{}

	if filter.Status != "" {
		where = append(where, "p.status = ?")
		args = append(args, filter.Status)
	}
	if filter.TechnicianID != nil {
		where = append(where, "p.technician_id = ?")
		args = append(args, *filter.TechnicianID)
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
			where = append(where, "(p.id = ? OR p.technician_id = ?)")
			args = append(args, id, id)
		} else {
			where = append(where, "(p.bank_name LIKE ? OR p.account_name LIKE ? OR p.account_number LIKE ? OR u.name LIKE ? OR u.email LIKE ?)")
			args = append(args, pattern, pattern, pattern, pattern, pattern)
		}
	}

	return where, args
}

func (r *PayoutRepository) List(ctx context.Context, filter entity.PayoutFilter, limit, offset int) ([]entity.PayoutRow, int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, 0, err
	}

	where, args := payoutListConds(filter)
	body := `
		FROM payouts p
		JOIN users u ON u.id = p.technician_id
		WHERE ` + strings.Join(where, " AND ")

	var count int64
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*)"+body, args...); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + payoutColumns + `,
			u.name AS technician_name,
			u.email AS technician_email,
			u.phone AS technician_phone` +
		body + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var rows []entity.PayoutRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *PayoutRepository) FindByID(ctx context.Context, id uint64) (*entity.PayoutRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var row entity.PayoutRow
	query := `
		SELECT ` + payoutColumns + `,
			u.name AS technician_name,
			u.email AS technician_email,
			u.phone AS technician_phone
		FROM payouts p
		JOIN users u ON u.id = p.technician_id
		WHERE p.id = ?`
	if err := db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *PayoutRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}
	return db.BeginTxx(ctx, nil)
}

// LockPending loads a payout for update so a concurrent approval of the same
// row blocks until this transaction finishes. Returns sql.ErrNoRows when the
// payout does not exist at all.
func (r *PayoutRepository) LockPending(ctx context.Context, tx *sqlx.Tx, id uint64) (*entity.Payout, error) {
	var payout entity.Payout
	query := `
		SELECT id, technician_id, amount, status, bank_name, account_name, account_number, note, paid_at, created_at, updated_at
		FROM payouts
		WHERE id = ?
		FOR UPDATE`
	if err := tx.GetContext(ctx, &payout, query, id); err != nil {
		return nil, err
	}
	return &payout, nil
}

func (r *PayoutRepository) MarkPaid(ctx context.Context, tx *sqlx.Tx, id uint64, note string) (bool, error) {
	query := `
		UPDATE payouts
		SET status = ?, note = ?, paid_at = NOW(), updated_at = NOW()
		WHERE id = ? AND status = ?`
	result, err := tx.ExecContext(ctx, query, entity.PayoutStatusPaid, note, id, entity.PayoutStatusPending)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PayoutRepository) MarkRejected(ctx context.Context, id uint64, note string) (bool, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return false, err
	}

	query := `
		UPDATE payouts
		SET status = ?, note = ?, updated_at = NOW()
		WHERE id = ? AND status = ?`
	result, err := db.ExecContext(ctx, query, entity.PayoutStatusRejected, note, id, entity.PayoutStatusPending)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// FindPaidWithoutLedger lists paid payouts whose debit ledger row is missing.
// Used by the reconciliation sweep; an empty result means the books line up.
func (r *PayoutRepository) FindPaidWithoutLedger(ctx context.Context) ([]entity.PayoutMismatch, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	synonyms := entity.OwnerRoleSynonyms(entity.RoleTeknisi)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(synonyms)), ", ")

	query := `
		SELECT p.id, p.technician_id, p.amount, p.paid_at
		FROM payouts p
		WHERE p.status = ?
			AND NOT EXISTS (
				SELECT 1 FROM balances b
				WHERE b.owner_role IN (` + placeholders + `)
					AND b.owner_id = p.technician_id
					AND b.type = ?
					AND b.ref_table = ?
					AND b.ref_id = p.id
			)
		ORDER BY p.id ASC`

	args := []interface{}{entity.PayoutStatusPaid}
	for _, s := range synonyms {
		args = append(args, s)
	}
	args = append(args, entity.LedgerTypePayout, string(entity.RefKindPayout))

	var mismatches []entity.PayoutMismatch
	if err := db.SelectContext(ctx, &mismatches, query, args...); err != nil {
		return nil, err
	}
	return mismatches, nil
}
