package postgres

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAdminRepo_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAdminRepo(db)

	userID := int64(498613988)

	mock.ExpectExec("INSERT INTO admins").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Add(userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepo_Add_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAdminRepo(db)

	userID := int64(498613988)

	mock.ExpectExec("INSERT INTO admins").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Add(userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepo_IsAdmin(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedAdmin bool
		expectedError bool
	}{
		{
			name:          "admin user",
			userID:        498613988,
			mockRows:      sqlmock.NewRows([]string{"id"}).AddRow(498613988),
			expectedAdmin: true,
		},
		{
			name:          "regular user",
			userID:        123,
			mockError:     sql.ErrNoRows,
			expectedAdmin: false,
		},
		{
			name:          "database error",
			userID:        123,
			mockError:     sql.ErrConnDone,
			expectedAdmin: false,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewAdminRepo(db)

			query := "SELECT id FROM admins WHERE id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			admin, err := repo.IsAdmin(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedAdmin, admin)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
