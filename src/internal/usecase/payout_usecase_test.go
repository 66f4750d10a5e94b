package usecase

import (
	"context"
	"testing"
	"time"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/repository"
	httpError "benerin-admin-service/src/pkg/http-error"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var payoutRowColumns = []string{
	"id", "technician_id", "amount", "status", "bank_name", "account_name",
	"account_number", "note", "paid_at", "created_at", "updated_at",
}

func pendingPayoutRow(id, technicianID uint64, amount string) *sqlmock.Rows {
	return sqlmock.NewRows(payoutRowColumns).
		AddRow(id, technicianID, amount, entity.PayoutStatusPending, "BCA", "Budi", "123456", nil, nil, time.Now(), nil)
}

func newPayoutUseCase(t *testing.T) (*PayoutUseCase, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	uc := NewPayoutUseCase(
		testLogger(),
		validator.New(),
		repository.NewPayoutRepository(db),
		repository.NewBalanceRepository(db),
		nil,
		nil,
		nil,
	)
	return uc, mock
}

func TestPayoutUseCase_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("MarksPaidAndWritesLedgerInOneTransaction", func(t *testing.T) {
		uc, mock := newPayoutUseCase(t)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(uint64(5)).
			WillReturnRows(pendingPayoutRow(5, 7, "120000.00"))
		mock.ExpectExec("UPDATE payouts").
			WithArgs(entity.PayoutStatusPaid, "looks good", uint64(5), entity.PayoutStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO balances").
			WithArgs(entity.RoleTeknisi, uint64(7), sqlmock.AnyArg(), "IDR", entity.LedgerTypePayout, "payouts", uint64(5), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(31, 1))
		mock.ExpectCommit()

		result := uc.Approve(ctx, &model.PayoutApproveRequest{ID: 5, AdminID: 1, Note: "looks good"})
		require.NoError(t, result.Error)

		resp, ok := result.Data.(model.PayoutResponse)
		require.True(t, ok)
		assert.Equal(t, entity.PayoutStatusPaid, resp.Status)
		assert.True(t, decimal.RequireFromString(resp.Amount).Equal(decimal.RequireFromString("120000")))
		require.NotNil(t, resp.PaidAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnknownPayoutIsNotFound", func(t *testing.T) {
		uc, mock := newPayoutUseCase(t)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(uint64(404)).
			WillReturnRows(sqlmock.NewRows(payoutRowColumns))
		mock.ExpectRollback()

		result := uc.Approve(ctx, &model.PayoutApproveRequest{ID: 404, AdminID: 1})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 404, errObj.Code)
	})

	t.Run("PaidPayoutIsConflict", func(t *testing.T) {
		uc, mock := newPayoutUseCase(t)

		paidAt := time.Now()
		rows := sqlmock.NewRows(payoutRowColumns).
			AddRow(5, 7, "120000.00", entity.PayoutStatusPaid, "BCA", "Budi", "123456", nil, paidAt, time.Now(), nil)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(uint64(5)).
			WillReturnRows(rows)
		mock.ExpectRollback()

		result := uc.Approve(ctx, &model.PayoutApproveRequest{ID: 5, AdminID: 1})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 409, errObj.Code)
	})
}

func TestPayoutUseCase_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("PendingPayoutRejected", func(t *testing.T) {
		uc, mock := newPayoutUseCase(t)

		findRows := sqlmock.NewRows(append(payoutRowColumns, "technician_name", "technician_email", "technician_phone")).
			AddRow(5, 7, "120000.00", entity.PayoutStatusPending, "BCA", "Budi", "123456", nil, nil, time.Now(), nil, "Budi", "budi@benerin.id", "0811")

		mock.ExpectQuery("FROM payouts p").
			WithArgs(uint64(5)).
			WillReturnRows(findRows)
		mock.ExpectExec("UPDATE payouts").
			WithArgs(entity.PayoutStatusRejected, "wrong account", uint64(5), entity.PayoutStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		result := uc.Reject(ctx, &model.PayoutRejectRequest{ID: 5, AdminID: 1, Note: "wrong account"})
		require.NoError(t, result.Error)

		resp, ok := result.Data.(model.PayoutResponse)
		require.True(t, ok)
		assert.Equal(t, entity.PayoutStatusRejected, resp.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RejectWithoutNoteFailsValidation", func(t *testing.T) {
		uc, _ := newPayoutUseCase(t)

		result := uc.Reject(ctx, &model.PayoutRejectRequest{ID: 5, AdminID: 1})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 400, errObj.Code)
	})
}

func TestPayoutUseCase_Detail(t *testing.T) {
	uc, mock := newPayoutUseCase(t)

	findRows := sqlmock.NewRows(append(payoutRowColumns, "technician_name", "technician_email", "technician_phone")).
		AddRow(5, 7, "120000.00", entity.PayoutStatusPaid, "BCA", "Budi", "123456", nil, time.Now(), time.Now(), nil, "Budi", "budi@benerin.id", "0811")

	mock.ExpectQuery("FROM payouts p").
		WithArgs(uint64(5)).
		WillReturnRows(findRows)
	entryColumns := []string{"id", "owner_role", "owner_id", "amount", "currency", "type", "ref_table", "ref_id", "note", "created_at"}
	mock.ExpectQuery("FROM balances").
		WithArgs("teknisi", "technician", uint64(7), entity.LedgerTypePayout, "payouts", uint64(5)).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	result := uc.Detail(context.Background(), &model.PayoutDetailRequest{ID: 5})
	require.NoError(t, result.Error)

	resp, ok := result.Data.(model.PayoutDetailResponse)
	require.True(t, ok)
	// a paid payout without ledger rows still answers with an empty trail
	assert.NotNil(t, resp.Ledger)
	assert.Len(t, resp.Ledger, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutUseCase_ReconciliationReport(t *testing.T) {
	uc, _ := newPayoutUseCase(t)

	// no redis configured still answers with an empty report
	result := uc.ReconciliationReport(context.Background())
	require.NoError(t, result.Error)

	report, ok := result.Data.(model.PayoutReconcileReport)
	require.True(t, ok)
	assert.Empty(t, report.Mismatches)
	assert.NotNil(t, report.Mismatches)
}
