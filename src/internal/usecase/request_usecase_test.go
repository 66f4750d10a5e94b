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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requestRowColumns = []string{
	"id", "user_id", "technician_id", "category_id", "description", "status",
	"accepted_price", "address", "latitude", "longitude", "scheduled_for",
	"created_at", "updated_at", "user_name", "user_email", "technician_name",
	"category_name",
}

func serviceRequestRow(id uint64, status string) *sqlmock.Rows {
	return sqlmock.NewRows(requestRowColumns).
		AddRow(id, 3, 7, 2, "AC mati total", status, "250000.00",
			"Jl. Sudirman 10, Jakarta", nil, nil, nil, time.Now(), nil,
			"Sari", "sari@benerin.id", "Budi", "Servis AC")
}

func newRequestUseCase(t *testing.T) (*RequestUseCase, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewRequestUseCase(testLogger(), validator.New(), repository.NewRequestRepository(db), nil), mock
}

func TestRequestUseCase_Schedule(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(48 * time.Hour).Format(time.RFC3339)

	t.Run("DiprosesRequestGetsScheduled", func(t *testing.T) {
		uc, mock := newRequestUseCase(t)

		mock.ExpectQuery("FROM service_requests r").
			WithArgs(uint64(9)).
			WillReturnRows(serviceRequestRow(9, entity.RequestStatusDiproses))
		mock.ExpectExec("UPDATE service_requests").
			WithArgs(entity.RequestStatusDijadwalkan, sqlmock.AnyArg(), nil, nil, uint64(9), entity.RequestStatusDiproses).
			WillReturnResult(sqlmock.NewResult(0, 1))

		result := uc.Schedule(ctx, &model.ScheduleRequestRequest{ID: 9, ScheduledFor: future})
		require.NoError(t, result.Error)

		resp, ok := result.Data.(model.ServiceRequestResponse)
		require.True(t, ok)
		assert.Equal(t, entity.RequestStatusDijadwalkan, resp.Status)
		require.NotNil(t, resp.ScheduledFor)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MalformedTimestampIsFieldError", func(t *testing.T) {
		uc, _ := newRequestUseCase(t)

		result := uc.Schedule(ctx, &model.ScheduleRequestRequest{ID: 9, ScheduledFor: "besok pagi"})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 422, errObj.Code)
		assert.Contains(t, errObj.Fields, "scheduled_for")
	})

	t.Run("PastTimestampIsFieldError", func(t *testing.T) {
		uc, _ := newRequestUseCase(t)

		past := time.Now().Add(-time.Hour).Format(time.RFC3339)
		result := uc.Schedule(ctx, &model.ScheduleRequestRequest{ID: 9, ScheduledFor: past})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 422, errObj.Code)
	})

	t.Run("MenungguRequestIsConflict", func(t *testing.T) {
		uc, mock := newRequestUseCase(t)

		mock.ExpectQuery("FROM service_requests r").
			WithArgs(uint64(9)).
			WillReturnRows(serviceRequestRow(9, entity.RequestStatusMenunggu))

		result := uc.Schedule(ctx, &model.ScheduleRequestRequest{ID: 9, ScheduledFor: future})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 409, errObj.Code)
	})

	t.Run("ConcurrentTransitionIsConflict", func(t *testing.T) {
		uc, mock := newRequestUseCase(t)

		mock.ExpectQuery("FROM service_requests r").
			WithArgs(uint64(9)).
			WillReturnRows(serviceRequestRow(9, entity.RequestStatusDiproses))
		mock.ExpectExec("UPDATE service_requests").
			WillReturnResult(sqlmock.NewResult(0, 0))

		result := uc.Schedule(ctx, &model.ScheduleRequestRequest{ID: 9, ScheduledFor: future})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 409, errObj.Code)
	})
}
