package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bloghub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCategoryTestRepository creates a category repository with a mock database
func setupCategoryTestRepository(t *testing.T) (*categoryRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCategoryRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewCategoryRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewCategoryRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestCategoryRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		category      *models.Category
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
		expectedID    int
	}{
		{
			name:     "success",
			category: &models.Category{Name: "Go", Description: "Go articles"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO categories`).
					WithArgs("Go", "Go articles").
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			expectedID: 7,
		},
		{
			name:     "database error",
			category: &models.Category{Name: "Go", Description: "Go articles"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO categories`).
					WithArgs("Go", "Go articles").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to create category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCategoryTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.category)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.category.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCategoryRepository_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		errorContains string
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "description"}).
					AddRow(1, "Go", "Go articles")
				mock.ExpectQuery(`SELECT id, name, description FROM categories WHERE id = \?`).
					WithArgs(1).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description FROM categories WHERE id = \?`).
					WithArgs(99).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: ErrNotFound,
		},
		{
			name: "database error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description FROM categories WHERE id = \?`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			errorContains: "failed to get category by id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCategoryTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), tt.id)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			case tt.errorContains != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, result)
			default:
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, "Go", result.Name)
				assert.Equal(t, "Go articles", result.Description)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCategoryRepository_GetAll(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success with rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "description"}).
					AddRow(1, "Go", "Go articles").
					AddRow(2, "SQL", "SQL articles")
				mock.ExpectQuery(`SELECT id, name, description FROM categories ORDER BY id`).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "success empty",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "description"})
				mock.ExpectQuery(`SELECT id, name, description FROM categories ORDER BY id`).
					WillReturnRows(rows)
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description FROM categories ORDER BY id`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCategoryTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetAll(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCategoryRepository_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupCategoryTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE categories SET name = \?, description = \? WHERE id = \?`).
			WithArgs("Go", "updated", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), &models.Category{ID: 1, Name: "Go", Description: "updated"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows affected is not an error", func(t *testing.T) {
		// MySQL reports zero affected rows when the new values equal the
		// old ones, so Update must not treat that as missing.
		repo, mock, cleanup := setupCategoryTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE categories SET name = \?, description = \? WHERE id = \?`).
			WithArgs("Go", "same", 1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), &models.Category{ID: 1, Name: "Go", Description: "same"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupCategoryTestRepository(t)
		defer cleanup()

		mock.ExpectExec(`UPDATE categories SET name = \?, description = \? WHERE id = \?`).
			WithArgs("Go", "updated", 1).
			WillReturnError(errors.New("database error"))

		err := repo.Update(context.Background(), &models.Category{ID: 1, Name: "Go", Description: "updated"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update category")
	})
}

func TestCategoryRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		errorContains string
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM categories WHERE id = \?`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM categories WHERE id = \?`).
					WithArgs(99).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: ErrNotFound,
		},
		{
			name: "database error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM categories WHERE id = \?`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			errorContains: "failed to delete category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCategoryTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Delete(context.Background(), tt.id)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.errorContains != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
