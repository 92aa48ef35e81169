package postgres

import (
	"database/sql"
)

// AdminRepo implements repository.AdminRepository
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// Add inserts an admin identity if absent
func (r *AdminRepo) Add(userID int64) error {
	query := `
		INSERT INTO admins (id)
		VALUES ($1)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// IsAdmin checks if the identity belongs to an admin
func (r *AdminRepo) IsAdmin(userID int64) (bool, error) {
	var id int64
	query := `SELECT id FROM admins WHERE id = $1`
	err := r.db.QueryRow(query, userID).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
