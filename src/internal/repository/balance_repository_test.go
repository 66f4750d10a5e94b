package repository

import (
	"context"
	"testing"
	"time"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/pkg/databases/mysql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepoDB(t *testing.T) (mysql.DBInterface, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mysql.NewFromDB(sqlx.NewDb(db, "sqlmock")), mock
}

func rollupColumns() []string {
	return []string{"id", "role", "name", "email", "phone", "balance", "total_credit", "total_debit", "entries_count"}
}

func TestBalanceRepository_Rollup(t *testing.T) {
	ctx := context.Background()

	t.Run("NoFilters", func(t *testing.T) {
		db, mock := newMockRepoDB(t)
		repo := NewBalanceRepository(db)

		rows := sqlmock.NewRows(rollupColumns()).
			AddRow(7, "teknisi", "Budi", "budi@benerin.id", "0811", "150000.00", "200000.00", "-50000.00", 4).
			AddRow(9, "user", "Sari", "sari@benerin.id", "0812", "0", "0", "0", 0)

		mock.ExpectQuery("SELECT\\s+u.id,\\s+u.role,").
			WithArgs(
				"user", "user", "teknisi", "teknisi", "technician",
				"user", "teknisi",
				20, 0,
			).
			WillReturnRows(rows)

		got, err := repo.Rollup(ctx, entity.BalanceRollupFilter{}, 20, 0)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, uint64(7), got[0].OwnerID)
		assert.True(t, got[0].Balance.Equal(decimal.RequireFromString("150000")))

		// a zero-entry account is still a row
		assert.Equal(t, uint64(9), got[1].OwnerID)
		assert.True(t, got[1].Balance.IsZero())
		assert.Equal(t, int64(0), got[1].EntriesCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EntryFiltersLandInJoinArgs", func(t *testing.T) {
		db, mock := newMockRepoDB(t)
		repo := NewBalanceRepository(db)

		dateFrom := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
		filter := entity.BalanceRollupFilter{
			Entry: entity.LedgerEntryFilter{
				Type:     entity.LedgerTypePayout,
				DateFrom: &dateFrom,
			},
		}

		mock.ExpectQuery("LEFT JOIN balances b ON b.owner_id = u.id").
			WithArgs(
				"user", "user", "teknisi", "teknisi", "technician",
				entity.LedgerTypePayout, dateFrom,
				"user", "teknisi",
				20, 0,
			).
			WillReturnRows(sqlmock.NewRows(rollupColumns()))

		_, err := repo.Rollup(ctx, filter, 20, 0)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AmountBoundsBecomeHavingArgs", func(t *testing.T) {
		db, mock := newMockRepoDB(t)
		repo := NewBalanceRepository(db)

		amountMin := decimal.RequireFromString("10000")
		amountMax := decimal.RequireFromString("500000")
		filter := entity.BalanceRollupFilter{
			Having: entity.BalanceHavingFilter{
				AmountMin: &amountMin,
				AmountMax: &amountMax,
			},
		}

		mock.ExpectQuery("HAVING balance >= \\? AND balance <= \\?").
			WithArgs(
				"user", "user", "teknisi", "teknisi", "technician",
				"user", "teknisi",
				amountMin, amountMax,
				20, 0,
			).
			WillReturnRows(sqlmock.NewRows(rollupColumns()))

		_, err := repo.Rollup(ctx, filter, 20, 0)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NumericSearchMatchesID", func(t *testing.T) {
		db, mock := newMockRepoDB(t)
		repo := NewBalanceRepository(db)

		mock.ExpectQuery("u.id = \\?").
			WithArgs(
				"user", "user", "teknisi", "teknisi", "technician",
				"user", "teknisi", uint64(42),
				20, 0,
			).
			WillReturnRows(sqlmock.NewRows(rollupColumns()))

		_, err := repo.Rollup(ctx, entity.BalanceRollupFilter{Search: "42"}, 20, 0)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBalanceRepository_RollupCount(t *testing.T) {
	db, mock := newMockRepoDB(t)
	repo := NewBalanceRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM \\(").
		WithArgs(
			"user", "user", "teknisi", "teknisi", "technician",
			"user", "teknisi",
		).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(57))

	count, err := repo.RollupCount(context.Background(), entity.BalanceRollupFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(57), count)
}

func TestBalanceRepository_LedgerTrail(t *testing.T) {
	db, mock := newMockRepoDB(t)
	repo := NewBalanceRepository(db)

	entryColumns := []string{"id", "owner_role", "owner_id", "amount", "currency", "type", "ref_table", "ref_id", "note", "created_at"}
	rows := sqlmock.NewRows(entryColumns).
		AddRow(3, "technician", 7, "-120000.00", "IDR", "payout", "payouts", 5, nil, time.Now()).
		AddRow(8, "teknisi", 7, "-30000.00", "IDR", "payout", "payouts", 5, nil, time.Now())

	// both owner_role synonyms are queried
	mock.ExpectQuery("WHERE owner_role IN \\(\\?, \\?\\)").
		WithArgs("teknisi", "technician", uint64(7), "payout", "payouts", uint64(5)).
		WillReturnRows(rows)

	ref := entity.LedgerRef{Kind: entity.RefKindPayout, ID: 5}
	entries, err := repo.LedgerTrail(context.Background(), entity.RoleTeknisi, 7, entity.LedgerTypePayout, ref)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "technician", entries[0].OwnerRole)
	assert.True(t, entries[0].Amount.Equal(decimal.RequireFromString("-120000")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBalanceRepository_InsertEntry(t *testing.T) {
	db, mock := newMockRepoDB(t)
	repo := NewBalanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO balances").
		WithArgs("teknisi", uint64(7), sqlmock.AnyArg(), "IDR", "payout", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(99, 1))

	handle, err := db.GetDB()
	require.NoError(t, err)
	tx, err := handle.BeginTxx(context.Background(), nil)
	require.NoError(t, err)

	refTable := "payouts"
	refID := uint64(5)
	entry := &entity.LedgerEntry{
		// the legacy label is normalized on write
		OwnerRole: entity.RoleTechnicianLegacy,
		OwnerID:   7,
		Amount:    decimal.RequireFromString("-120000"),
		Currency:  "IDR",
		Type:      entity.LedgerTypePayout,
		RefTable:  &refTable,
		RefID:     &refID,
	}
	require.NoError(t, repo.InsertEntry(context.Background(), tx, entry))
	assert.Equal(t, uint64(99), entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
