package usecase

import (
	"context"
	"testing"

	"benerin-admin-service/src/internal/model"
	"benerin-admin-service/src/internal/repository"
	"benerin-admin-service/src/pkg/databases/mysql"
	httpError "benerin-admin-service/src/pkg/http-error"
	"benerin-admin-service/src/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	driver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() log.Log {
	v := viper.New()
	v.Set("log.level", "ERROR")
	log.InitLogger(v)
	return log.GetLogger()
}

func newMockDB(t *testing.T) (mysql.DBInterface, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mysql.NewFromDB(sqlx.NewDb(db, "sqlmock")), mock
}

func TestMakeSlug(t *testing.T) {
	cases := map[string]string{
		"Servis AC":          "servis-ac",
		"  A B  ":            "a-b",
		"Kulkas & Freezer":   "kulkas-freezer",
		"sudah-slug":         "sudah-slug",
		"UPPER lower 123":    "upper-lower-123",
		"---":                "",
		"!!!":                "",
		"Instalasi  Listrik": "instalasi-listrik",
	}
	for input, want := range cases {
		assert.Equal(t, want, MakeSlug(input), "input %q", input)
	}
}

func TestMakeSlugIdempotent(t *testing.T) {
	inputs := []string{"Servis AC", "Kulkas & Freezer", "  A B  ", "UPPER lower 123"}
	for _, input := range inputs {
		once := MakeSlug(input)
		assert.Equal(t, once, MakeSlug(once), "input %q", input)
	}
}

func TestCategoryUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("SlugDerivedFromName", func(t *testing.T) {
		db, mock := newMockDB(t)
		uc := NewCategoryUseCase(testLogger(), validator.New(), repository.NewCategoryRepository(db))

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories WHERE slug = \\? AND id != \\?").
			WithArgs("servis-ac", uint64(0)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO categories").
			WithArgs("Servis AC", "servis-ac", nil).
			WillReturnResult(sqlmock.NewResult(11, 1))

		result := uc.Create(ctx, &model.CategoryRequest{Name: "Servis AC"})
		assert.NoError(t, result.Error)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SlugTakenPreCheck", func(t *testing.T) {
		db, mock := newMockDB(t)
		uc := NewCategoryUseCase(testLogger(), validator.New(), repository.NewCategoryRepository(db))

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
			WithArgs("servis-ac", uint64(0)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		result := uc.Create(ctx, &model.CategoryRequest{Name: "Servis AC"})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 422, errObj.Code)
		assert.Contains(t, errObj.Fields, "slug")
	})

	t.Run("DuplicateKeyFromIndex", func(t *testing.T) {
		db, mock := newMockDB(t)
		uc := NewCategoryUseCase(testLogger(), validator.New(), repository.NewCategoryRepository(db))

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM categories").
			WithArgs("servis-ac", uint64(0)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO categories").
			WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry"})

		result := uc.Create(ctx, &model.CategoryRequest{Name: "Servis AC"})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 422, errObj.Code)
		assert.Contains(t, errObj.Fields, "slug")
	})

	t.Run("EmptySlugAfterNormalization", func(t *testing.T) {
		db, _ := newMockDB(t)
		uc := NewCategoryUseCase(testLogger(), validator.New(), repository.NewCategoryRepository(db))

		result := uc.Create(ctx, &model.CategoryRequest{Name: "!!!"})
		errObj, ok := result.Error.(*httpError.ErrorObj)
		require.True(t, ok)
		assert.Equal(t, 422, errObj.Code)
	})
}
