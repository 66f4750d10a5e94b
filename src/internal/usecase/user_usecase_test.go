package usecase

import (
	"context"
	sqldriver "database/sql/driver"
	"testing"

	"benerin-admin-service/src/internal/entity"
	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/repository"
	httpError "benerin-admin-service/src/pkg/http-error"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserUseCase(t *testing.T) (*UserUseCase, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewUserUseCase(testLogger(), validator.New(), repository.NewUserRepository(db)), mock
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("HashesPasswordAndNormalizesRole", func(t *testing.T) {
		uc, mock := newUserUseCase(t)

		var storedPassword string
		mock.ExpectExec("INSERT INTO users").
			WithArgs("Budi", "budi@benerin.id", "0811", entity.RoleTeknisi, passwordCapture{&storedPassword}).
			WillReturnResult(sqlmock.NewResult(7, 1))

		result := uc.Create(ctx, &model.CreateUserRequest{
			Name:     "Budi",
			Email:    "budi@benerin.id",
			Phone:    "0811",
			Role:     entity.RoleTechnicianLegacy,
			Password: "rahasia-banget",
		})
		require.NoError(t, result.Error)

		resp, ok := result.Data.(model.UserResponse)
		require.True(t, ok)
		assert.Equal(t, uint64(7), resp.ID)
		assert.Equal(t, entity.RoleTeknisi, resp.Role)

		assert.NotEqual(t, "rahasia-banget", storedPassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte("rahasia-banget")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateEmailIsFieldError", func(t *testing.T) {
		uc, mock := newUserUseCase(t)

		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry"})

		result := uc.Create(ctx, &model.CreateUserRequest{
			Name:     "Budi",
			Email:    "budi@benerin.id",
			Phone:    "0811",
			Role:     entity.RoleUser,
			Password: "rahasia-banget",
		})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 422, errObj.Code)
		assert.Contains(t, errObj.Fields, "email")
	})

	t.Run("UnknownRoleFailsValidation", func(t *testing.T) {
		uc, _ := newUserUseCase(t)

		result := uc.Create(ctx, &model.CreateUserRequest{
			Name:     "Budi",
			Email:    "budi@benerin.id",
			Phone:    "0811",
			Role:     "vendor",
			Password: "rahasia-banget",
		})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 400, errObj.Code)
	})
}

// passwordCapture matches any string argument and stores it so the test can
// inspect the hash written to the database.
type passwordCapture struct {
	dst *string
}

func (p passwordCapture) Match(v sqldriver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	*p.dst = s
	return true
}
