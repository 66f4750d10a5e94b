package usecase

import (
	"context"
	"testing"
	"time"

	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/repository"
	httpError "benerin-admin-service/src/pkg/http-error"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBalanceUseCase(t *testing.T) (*BalanceUseCase, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	uc := NewBalanceUseCase(
		testLogger(),
		validator.New(),
		repository.NewUserRepository(db),
		repository.NewBalanceRepository(db),
	)
	return uc, mock
}

func TestBalanceUseCase_Rollup(t *testing.T) {
	ctx := context.Background()

	t.Run("EchoesFiltersAndSumsPage", func(t *testing.T) {
		uc, mock := newBalanceUseCase(t)

		columns := []string{"id", "role", "name", "email", "phone", "balance", "total_credit", "total_debit", "entries_count"}
		mock.ExpectQuery("FROM users u").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(7, "teknisi", "Budi", "budi@benerin.id", "0811", "70000", "100000", "-30000", 3).
				AddRow(9, "user", "Sari", "sari@benerin.id", "0812", "0", "0", "0", 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM \\(").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		request := &model.BalanceListRequest{Q: "b", Type: "payout"}
		result := uc.Rollup(ctx, request)
		require.NoError(t, result.Error)

		resp, ok := result.Data.(model.BalanceListResponse)
		require.True(t, ok)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, int64(0), resp.Items[1].EntriesCount)
		assert.Equal(t, 2, resp.Totals.Accounts)
		assert.Equal(t, "70000", resp.Totals.Balance)
		assert.Equal(t, *request, resp.Filters)
		assert.Equal(t, 1, resp.Pagination.Page)
		assert.Equal(t, 20, resp.Pagination.Size)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InvalidAmountFilterIsFieldError", func(t *testing.T) {
		uc, _ := newBalanceUseCase(t)

		result := uc.Rollup(ctx, &model.BalanceListRequest{AmountMin: "abc"})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 422, errObj.Code)
		assert.Contains(t, errObj.Fields, "amount_min")
	})

	t.Run("InvalidOwnerRoleIsBadRequest", func(t *testing.T) {
		uc, _ := newBalanceUseCase(t)

		result := uc.Rollup(ctx, &model.BalanceListRequest{OwnerRole: "admin"})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 400, errObj.Code)
	})
}

func TestBalanceUseCase_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownRoleSegmentIsNotFound", func(t *testing.T) {
		uc, _ := newBalanceUseCase(t)

		result := uc.Detail(ctx, &model.BalanceDetailRequest{OwnerRole: "vendor", OwnerID: 7})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 404, errObj.Code)
	})

	t.Run("MissingAccountIsNotFound", func(t *testing.T) {
		uc, mock := newBalanceUseCase(t)

		mock.ExpectQuery("FROM users").
			WithArgs(uint64(7), "teknisi").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		result := uc.Detail(ctx, &model.BalanceDetailRequest{OwnerRole: "teknisi", OwnerID: 7})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 404, errObj.Code)
	})

	t.Run("AccountWithoutEntriesAnswersEmptyList", func(t *testing.T) {
		uc, mock := newBalanceUseCase(t)

		userColumns := []string{"id", "name", "email", "phone", "role", "password", "bank_name", "account_name", "account_number", "created_at", "updated_at"}
		mock.ExpectQuery("FROM users").
			WithArgs(uint64(7), "teknisi").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(7, "Budi", "budi@benerin.id", "0811", "teknisi", "hash", "BCA", "Budi", "123456", time.Now(), nil))

		entryColumns := []string{"id", "owner_role", "owner_id", "amount", "currency", "type", "ref_table", "ref_id", "note", "created_at"}
		mock.ExpectQuery("FROM balances b").
			WillReturnRows(sqlmock.NewRows(entryColumns))
		mock.ExpectQuery("SELECT COUNT\\(b.id\\)").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		result := uc.Detail(ctx, &model.BalanceDetailRequest{OwnerRole: "teknisi", OwnerID: 7})
		require.NoError(t, result.Error)

		resp, ok := result.Data.(model.BalanceDetailResponse)
		require.True(t, ok)
		assert.Equal(t, uint64(7), resp.Owner.ID)
		assert.NotNil(t, resp.Entries)
		assert.Len(t, resp.Entries, 0)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
