package postgres

import (
	"database/sql"

	"faqbot/internal/domain"
)

// CategoryRepo implements repository.CategoryRepository
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Add inserts a category if absent. Inserting an existing name is a no-op.
func (r *CategoryRepo) Add(name string) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`
	_, err := r.db.Exec(query, name)
	return err
}

// List returns all categories in insertion order
func (r *CategoryRepo) List() ([]domain.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetByName returns the category with the given name, or nil when absent.
// Names are matched by exact string equality.
func (r *CategoryRepo) GetByName(name string) (*domain.Category, error) {
	var c domain.Category
	query := `SELECT id, name FROM categories WHERE name = $1`
	err := r.db.QueryRow(query, name).Scan(&c.ID, &c.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}
