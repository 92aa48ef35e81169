package testutil

import (
	"faqbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestQuestion creates a test question with an answer
func NewTestQuestion(id, categoryID int, text, answer string) domain.Question {
	return domain.Question{
		ID:         id,
		CategoryID: categoryID,
		Text:       text,
		Answer:     &answer,
	}
}

// NewTestQuestionNoAnswer creates a test question without an answer
func NewTestQuestionNoAnswer(id, categoryID int, text string) domain.Question {
	return domain.Question{
		ID:         id,
		CategoryID: categoryID,
		Text:       text,
	}
}
