package service

import (
	"fmt"
	"strings"

	"faqbot/internal/domain"
	"faqbot/internal/repository"
)

// CatalogService handles category and question business logic.
// Unlike the raw store, it resolves category names explicitly so that a
// missing category surfaces as domain.ErrNotFound instead of a silent drop.
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	questionRepo repository.QuestionRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

// AddCategory inserts a category. Re-adding an existing name is a no-op.
func (s *CatalogService) AddCategory(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrEmptyInput
	}
	if err := s.categoryRepo.Add(name); err != nil {
		return fmt.Errorf("add category: %w", err)
	}
	return nil
}

// Categories returns all category names in stable listing order
func (s *CatalogService) Categories() ([]string, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names, nil
}

// CategoryExists checks a category name by exact string equality
func (s *CatalogService) CategoryExists(name string) (bool, error) {
	category, err := s.categoryRepo.GetByName(name)
	if err != nil {
		return false, fmt.Errorf("get category: %w", err)
	}
	return category != nil, nil
}

// AddQuestion adds a question without an answer to the named category.
// Returns domain.ErrNotFound if the category does not exist.
func (s *CatalogService) AddQuestion(categoryName, text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.ErrEmptyInput
	}

	category, err := s.resolveCategory(categoryName)
	if err != nil {
		return err
	}

	if err := s.questionRepo.Add(category.ID, text); err != nil {
		return fmt.Errorf("add question: %w", err)
	}
	return nil
}

// SetAnswer stores the answer for the question with the given text.
// When several questions in the category share the text, all of them are
// updated. Returns domain.ErrNotFound if the category does not exist.
func (s *CatalogService) SetAnswer(categoryName, text, answer string) error {
	if strings.TrimSpace(answer) == "" {
		return domain.ErrEmptyInput
	}

	category, err := s.resolveCategory(categoryName)
	if err != nil {
		return err
	}

	if err := s.questionRepo.SetAnswer(category.ID, text, answer); err != nil {
		return fmt.Errorf("set answer: %w", err)
	}
	return nil
}

// QuestionsByCategory returns the category's questions in ordinal order.
// An existing category with no questions yields an empty slice; a missing
// category yields domain.ErrNotFound, so the two cases are distinguishable.
func (s *CatalogService) QuestionsByCategory(categoryName string) ([]domain.Question, error) {
	category, err := s.resolveCategory(categoryName)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByCategory(category.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// QuestionByOrdinal resolves a 1-indexed position in the category's
// question list. Ordinals outside 1..N yield domain.ErrInvalidOrdinal.
func (s *CatalogService) QuestionByOrdinal(categoryName string, ordinal int) (*domain.Question, error) {
	questions, err := s.QuestionsByCategory(categoryName)
	if err != nil {
		return nil, err
	}

	if ordinal < 1 || ordinal > len(questions) {
		return nil, domain.ErrInvalidOrdinal
	}

	return &questions[ordinal-1], nil
}

func (s *CatalogService) resolveCategory(name string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %q: %w", name, domain.ErrNotFound)
	}
	return category, nil
}
