package company_test

import (
	"context"
	"testing"

	"github.com/AYA-EBRAHIM18/Job-Search-App/internal/company"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRepository_FindByHR(t *testing.T) {
	t.Run("returns nil company when the HR owns none", func(t *testing.T) {
		gormDB, mock := newGormWithSQLMock(t)
		repo := company.NewRepository(gormDB)

		hrID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "companies" WHERE company_hr =`).
			WithArgs(hrID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "company_name", "company_hr"}))

		comp, err := repo.FindByHR(context.Background(), hrID)

		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, comp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns the company owned by the HR", func(t *testing.T) {
		gormDB, mock := newGormWithSQLMock(t)
		repo := company.NewRepository(gormDB)

		hrID := uuid.New()
		companyID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "companies" WHERE company_hr =`).
			WithArgs(hrID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "company_name", "company_hr"}).
				AddRow(companyID, "Globex", hrID))

		comp, err := repo.FindByHR(context.Background(), hrID)

		require.NoError(t, err)
		require.NotNil(t, comp)
		assert.Equal(t, companyID, comp.ID)
		assert.Equal(t, hrID, comp.CompanyHR)
	})
}
