package dialog

import (
	"testing"

	"faqbot/internal/domain"
	"faqbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestIsDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "single digit", input: "1", expected: true},
		{name: "multiple digits", input: "42", expected: true},
		{name: "empty string", input: "", expected: false},
		{name: "negative number", input: "-1", expected: false},
		{name: "letters", input: "abc", expected: false},
		{name: "mixed", input: "1a", expected: false},
		{name: "spaces", input: "1 2", expected: false},
		{name: "unicode digits", input: "١٢", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isDigits(tt.input))
		})
	}
}

func TestQuestionListText(t *testing.T) {
	questions := []domain.Question{
		testutil.NewTestQuestion(1, 1, "Q1?", "A1"),
		testutil.NewTestQuestionNoAnswer(2, 1, "Q2?"),
	}

	text := questionListText("Test", questions)

	assert.Contains(t, text, "В категории 'Test'")
	assert.Contains(t, text, "1. Q1?")
	assert.Contains(t, text, "2. Q2?")
	assert.Contains(t, text, "'Назад'")
}

func TestOrdinalChoices(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", BackKeyword}, ordinalChoices(3))
	assert.Equal(t, []string{BackKeyword}, ordinalChoices(0))
}
