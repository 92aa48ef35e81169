package testutil

import (
	"faqbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock for CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Add(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockCategoryRepository) List() ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(name string) (*domain.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// MockQuestionRepository is a mock for QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Add(categoryID int, text string) error {
	args := m.Called(categoryID, text)
	return args.Error(0)
}

func (m *MockQuestionRepository) SetAnswer(categoryID int, text, answer string) error {
	args := m.Called(categoryID, text, answer)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListByCategory(categoryID int) ([]domain.Question, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

// MockAdminRepository is a mock for AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Add(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockAdminRepository) IsAdmin(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}
