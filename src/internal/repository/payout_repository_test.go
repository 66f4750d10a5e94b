package repository

import (
	"context"
	"testing"
	"time"

	"benerin-admin-service/src/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayoutRepository_MarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("PendingRowUpdated", func(t *testing.T) {
		db, mock := newMockRepoDB(t)
		repo := NewPayoutRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE payouts").
			WithArgs(entity.PayoutStatusPaid, "ok", uint64(5), entity.PayoutStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		ok, err := repo.MarkPaid(ctx, tx, 5, "ok")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyPaidRowUntouched", func(t *testing.T) {
		db, mock := newMockRepoDB(t)
		repo := NewPayoutRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE payouts").
			WillReturnResult(sqlmock.NewResult(0, 0))

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		ok, err := repo.MarkPaid(ctx, tx, 5, "ok")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPayoutRepository_MarkRejected(t *testing.T) {
	db, mock := newMockRepoDB(t)
	repo := NewPayoutRepository(db)

	mock.ExpectExec("UPDATE payouts").
		WithArgs(entity.PayoutStatusRejected, "wrong account", uint64(5), entity.PayoutStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.MarkRejected(context.Background(), 5, "wrong account")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutRepository_FindPaidWithoutLedger(t *testing.T) {
	db, mock := newMockRepoDB(t)
	repo := NewPayoutRepository(db)

	paidAt := time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "technician_id", "amount", "paid_at"}).
		AddRow(5, 7, "120000.00", paidAt)

	mock.ExpectQuery("NOT EXISTS").
		WithArgs(entity.PayoutStatusPaid, "teknisi", "technician", entity.LedgerTypePayout, "payouts").
		WillReturnRows(rows)

	mismatches, err := repo.FindPaidWithoutLedger(context.Background())
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	assert.Equal(t, uint64(5), mismatches[0].PayoutID)
	assert.Equal(t, uint64(7), mismatches[0].TechnicianID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
