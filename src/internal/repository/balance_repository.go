package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

type BalanceRepository struct {
	DB mysql.DBInterface
}

func NewBalanceRepository(db mysql.DBInterface) *BalanceRepository {
	return &BalanceRepository{
		DB: db,
	}
}

// entryJoinConds renders the entry-level filters as extra predicates of the
// LEFT JOIN condition. Putting them in the join instead of the WHERE keeps
// zero-entry accounts in the rollup.
func entryJoinConds(alias string, filter entity.LedgerEntryFilter) ([]string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.Type != "" {
		conds = append(conds, fmt.Sprintf("%s.type = ?", alias))
		args = append(args, filter.Type)
	}
	if filter.DateFrom != nil {
		conds = append(conds, fmt.Sprintf("%s.created_at >= ?", alias))
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		conds = append(conds, fmt.Sprintf("%s.created_at <= ?", alias))
		args = append(args, *filter.DateTo)
	}
	if filter.OwnerID != nil {
		conds = append(conds, fmt.Sprintf("%s.owner_id = ?", alias))
		args = append(args, *filter.OwnerID)
	}
	if filter.RefTable != "" {
		conds = append(conds, fmt.Sprintf("%s.ref_table = ?", alias))
		args = append(args, filter.RefTable)
	}
	if filter.RefID != nil {
		conds = append(conds, fmt.Sprintf("%s.ref_id = ?", alias))
		args = append(args, *filter.RefID)
	}

	return conds, args
}

// roleJoinCond matches each account against the owner_role literals its role
// may appear under in the balances table.
func roleJoinCond() (string, []interface{}) {
	synonyms := entity.OwnerRoleSynonyms(entity.RoleTeknisi)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(synonyms)), ", ")
	cond := fmt.Sprintf("((u.role = ? AND b.owner_role = ?) OR (u.role = ? AND b.owner_role IN (%s)))", placeholders)

	args := []interface{}{entity.RoleUser, entity.RoleUser, entity.RoleTeknisi}
	for _, s := range synonyms {
		args = append(args, s)
	}
	return cond, args
}

func (r *BalanceRepository) rollupQuery(filter entity.BalanceRollupFilter) (string, string, []interface{}, []interface{}) {
	roleCond, roleArgs := roleJoinCond()
	joinConds, joinArgs := entryJoinConds("b", filter.Entry)

	join := "LEFT JOIN balances b ON b.owner_id = u.id AND " + roleCond
	if len(joinConds) > 0 {
		join += " AND " + strings.Join(joinConds, " AND ")
	}

	where := []string{"u.role IN (?, ?)"}
	whereArgs := []interface{}{entity.RoleUser, entity.RoleTeknisi}
	if filter.OwnerRole != "" {
		where = append(where, "u.role = ?")
		whereArgs = append(whereArgs, entity.NormalizeRole(filter.OwnerRole))
	}
	if filter.Search != "" {
		if id, err := strconv.ParseUint(filter.Search, 10, 64); err == nil {
			where = append(where, "u.id = ?")
			whereArgs = append(whereArgs, id)
		} else {
			pattern := "%" + strings.ReplaceAll(filter.Search, " ", "%") + "%"
			where = append(where, "(u.name LIKE ? OR u.email LIKE ? OR u.phone LIKE ?)")
			whereArgs = append(whereArgs, pattern, pattern, pattern)
		}
	}

	var having []string
	var havingArgs []interface{}
	if filter.Having.AmountMin != nil {
		having = append(having, "balance >= ?")
		havingArgs = append(havingArgs, *filter.Having.AmountMin)
	}
	if filter.Having.AmountMax != nil {
		having = append(having, "balance <= ?")
		havingArgs = append(havingArgs, *filter.Having.AmountMax)
	}

	body := fmt.Sprintf(`
		FROM users u
		%s
		WHERE %s
		GROUP BY u.id, u.role, u.name, u.email, u.phone`,
		join, strings.Join(where, " AND "))

	havingClause := ""
	if len(having) > 0 {
		havingClause = " HAVING " + strings.Join(having, " AND ")
	}

	selectQuery := `
		SELECT
			u.id,
			u.role,
			u.name,
			u.email,
			u.phone,
			COALESCE(SUM(b.amount), 0) AS balance,
			COALESCE(SUM(CASE WHEN b.amount >= 0 THEN b.amount ELSE 0 END), 0) AS total_credit,
			COALESCE(SUM(CASE WHEN b.amount < 0 THEN b.amount ELSE 0 END), 0) AS total_debit,
			COUNT(b.id) AS entries_count` +
		body + havingClause + `
		ORDER BY balance DESC, u.id ASC`

	countQuery := `
		SELECT COUNT(*) FROM (
			SELECT u.id, COALESCE(SUM(b.amount), 0) AS balance` +
		body + havingClause + `
		) AS rollup`

	args := append(append([]interface{}{}, roleArgs...), joinArgs...)
	args = append(args, whereArgs...)
	args = append(args, havingArgs...)

	return selectQuery, countQuery, args, args
}

func (r *BalanceRepository) Rollup(ctx context.Context, filter entity.BalanceRollupFilter, limit, offset int) ([]entity.BalanceRollup, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query, _, args, _ := r.rollupQuery(filter)
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	var rows []entity.BalanceRollup
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BalanceRepository) RollupCount(ctx context.Context, filter entity.BalanceRollupFilter) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	_, query, _, args := r.rollupQuery(filter)

	var count int64
	if err := db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BalanceRepository) entriesQuery(role string, ownerID uint64, filter entity.LedgerDetailFilter) (string, []interface{}) {
	synonyms := entity.OwnerRoleSynonyms(role)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(synonyms)), ", ")

	where := []string{
		"b.owner_id = ?",
		fmt.Sprintf("b.owner_role IN (%s)", placeholders),
	}
	args := []interface{}{ownerID}
	for _, s := range synonyms {
		args = append(args, s)
	}

	conds, condArgs := entryJoinConds("b", filter.Entry)
	where = append(where, conds...)
	args = append(args, condArgs...)

	if filter.Search != "" {
		pattern := "%" + strings.ReplaceAll(filter.Search, " ", "%") + "%"
		if id, err := strconv.ParseUint(filter.Search, 10, 64); err == nil {
			where = append(where, "(b.id = ? OR b.ref_id = ? OR b.ref_table LIKE ? OR b.note LIKE ?)")
			args = append(args, id, id, pattern, pattern)
		} else {
			where = append(where, "(b.ref_table LIKE ? OR b.note LIKE ? OR u.name LIKE ? OR u.email LIKE ?)")
			args = append(args, pattern, pattern, pattern, pattern)
		}
	}

	body := `
		FROM balances b
		JOIN users u ON u.id = b.owner_id
		WHERE ` + strings.Join(where, " AND ")

	return body, args
}

// EntriesByOwner returns the account's ledger rows oldest first.
func (r *BalanceRepository) EntriesByOwner(ctx context.Context, role string, ownerID uint64, filter entity.LedgerDetailFilter, limit, offset int) ([]entity.LedgerEntry, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	body, args := r.entriesQuery(role, ownerID, filter)
	query := `
		SELECT b.id, b.owner_role, b.owner_id, b.amount, b.currency, b.type, b.ref_table, b.ref_id, b.note, b.created_at` +
		body + `
		ORDER BY b.created_at ASC, b.id ASC
		LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var entries []entity.LedgerEntry
	if err := db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *BalanceRepository) EntriesByOwnerCount(ctx context.Context, role string, ownerID uint64, filter entity.LedgerDetailFilter) (int64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	body, args := r.entriesQuery(role, ownerID, filter)
	query := "SELECT COUNT(b.id)" + body

	var count int64
	if err := db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// LedgerTrail fetches the entries that represent a specific referenced
// record, e.g. the debit rows written for one payout. Reads tolerate both
// owner_role synonyms so older rows are not silently missed.
func (r *BalanceRepository) LedgerTrail(ctx context.Context, ownerRole string, ownerID uint64, entryType string, ref entity.LedgerRef) ([]entity.LedgerEntry, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	synonyms := entity.OwnerRoleSynonyms(ownerRole)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(synonyms)), ", ")

	query := fmt.Sprintf(`
		SELECT id, owner_role, owner_id, amount, currency, type, ref_table, ref_id, note, created_at
		FROM balances
		WHERE owner_role IN (%s)
			AND owner_id = ?
			AND type = ?
			AND ref_table = ?
			AND ref_id = ?
		ORDER BY id ASC`, placeholders)

	var args []interface{}
	for _, s := range synonyms {
		args = append(args, s)
	}
	args = append(args, ownerID, entryType, ref.RefTable(), ref.ID)

	var entries []entity.LedgerEntry
	if err := db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, err
	}
	return entries, nil
}

// InsertEntry appends a ledger row inside the caller's transaction. Writes
// always use the canonical owner_role value.
func (r *BalanceRepository) InsertEntry(ctx context.Context, tx *sqlx.Tx, entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO balances (owner_role, owner_id, amount, currency, type, ref_table, ref_id, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	result, err := tx.ExecContext(ctx, query,
		entity.NormalizeRole(entry.OwnerRole),
		entry.OwnerID,
		entry.Amount,
		entry.Currency,
		entry.Type,
		entry.RefTable,
		entry.RefID,
		entry.Note,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = uint64(id)
	return nil
}
