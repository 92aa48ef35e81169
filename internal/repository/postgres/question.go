package postgres

import (
	"database/sql"

	"faqbot/internal/domain"
)

// QuestionRepo implements repository.QuestionRepository
type QuestionRepo struct {
	db *sql.DB
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *sql.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Add inserts a question with no answer yet. Duplicate texts within a
// category are allowed and get independent rows.
func (r *QuestionRepo) Add(categoryID int, text string) error {
	query := `
		INSERT INTO questions (category_id, question)
		VALUES ($1, $2)
	`
	_, err := r.db.Exec(query, categoryID, text)
	return err
}

// SetAnswer updates the answer for every question in the category whose
// text matches. Last write wins.
func (r *QuestionRepo) SetAnswer(categoryID int, text, answer string) error {
	query := `
		UPDATE questions
		SET answer = $1
		WHERE category_id = $2 AND question = $3
	`
	_, err := r.db.Exec(query, answer, categoryID, text)
	return err
}

// ListByCategory returns the category's questions in insertion order,
// which is also the ordinal order shown to users
func (r *QuestionRepo) ListByCategory(categoryID int) ([]domain.Question, error) {
	query := `
		SELECT id, category_id, question, answer
		FROM questions
		WHERE category_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		var answer sql.NullString
		if err := rows.Scan(&q.ID, &q.CategoryID, &q.Text, &answer); err != nil {
			return nil, err
		}
		if answer.Valid {
			q.Answer = &answer.String
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}
