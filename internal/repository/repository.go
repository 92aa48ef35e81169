package repository

import (
	"faqbot/internal/domain"
)

// CategoryRepository defines category data operations
type CategoryRepository interface {
	Add(name string) error
	List() ([]domain.Category, error)
	GetByName(name string) (*domain.Category, error)
}

// QuestionRepository defines question data operations
type QuestionRepository interface {
	Add(categoryID int, text string) error
	SetAnswer(categoryID int, text, answer string) error
	ListByCategory(categoryID int) ([]domain.Question, error)
}

// AdminRepository defines admin identity operations
type AdminRepository interface {
	Add(userID int64) error
	IsAdmin(userID int64) (bool, error)
}
