package dialog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"faqbot/internal/domain"

	"go.uber.org/zap"
)

// backToCategories resets navigation and shows the category list
func (e *Engine) backToCategories(userID int64) Response {
	e.sessions.Reset(userID)

	e.logger.Info("User returned to category list", zap.Int64("user_id", userID))

	return Response{
		Text:    "Вы вернулись к списку категорий.",
		Choices: e.categoryChoices(),
	}
}

// selectCategory treats the text as a category name lookup. On a miss the
// prior session state is left untouched, so a typo does not lose the
// user's place.
func (e *Engine) selectCategory(userID int64, sess domain.Session, text string) Response {
	exists, err := e.catalog.CategoryExists(text)
	if err != nil {
		e.logger.Error("Failed to check category",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("category", text),
		)
		return e.errorResponse()
	}

	if !exists {
		e.logger.Warn("Unknown category requested",
			zap.Int64("user_id", userID),
			zap.String("category", text),
		)
		return Response{
			Text:    "Такой категории не существует. Попробуйте снова.",
			Choices: e.categoryChoices(),
		}
	}

	questions, err := e.catalog.QuestionsByCategory(text)
	if err != nil {
		e.logger.Error("Failed to list questions",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("category", text),
		)
		return e.errorResponse()
	}

	e.sessions.Set(userID, domain.Session{
		State:           domain.StateCategorySelected,
		CurrentCategory: text,
	})

	e.logger.Info("User selected category",
		zap.Int64("user_id", userID),
		zap.String("category", text),
	)

	if len(questions) == 0 {
		return Response{
			Text:    "В данной категории нет вопросов.",
			Choices: []string{BackKeyword},
		}
	}

	return Response{
		Text:    questionListText(text, questions),
		Choices: ordinalChoices(len(questions)),
	}
}

// selectOrdinal resolves a 1-indexed question number within the selected
// category and shows the stored answer
func (e *Engine) selectOrdinal(userID int64, sess domain.Session, text string) Response {
	ordinal, convErr := strconv.Atoi(text)
	if convErr != nil {
		// Digit runs too long for an int are as invalid as any bad ordinal
		ordinal = 0
	}

	question, err := e.catalog.QuestionByOrdinal(sess.CurrentCategory, ordinal)

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidOrdinal):
		e.logger.Warn("Invalid question number",
			zap.Int64("user_id", userID),
			zap.String("category", sess.CurrentCategory),
			zap.Int("ordinal", ordinal),
		)
		return Response{
			Text:    "Неверный номер вопроса. Попробуйте снова.",
			Choices: e.categoryChoices(),
		}
	case errors.Is(err, domain.ErrNotFound):
		// The remembered category no longer resolves; fall back to the list
		e.sessions.Reset(userID)
		return Response{
			Text:    "Такой категории не существует. Попробуйте снова.",
			Choices: e.categoryChoices(),
		}
	default:
		e.logger.Error("Failed to resolve question",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("category", sess.CurrentCategory),
		)
		return e.errorResponse()
	}

	e.logger.Info("User selected question",
		zap.Int64("user_id", userID),
		zap.String("category", sess.CurrentCategory),
		zap.String("question", question.Text),
	)

	questions, err := e.catalog.QuestionsByCategory(sess.CurrentCategory)
	if err != nil {
		e.logger.Error("Failed to list questions",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("category", sess.CurrentCategory),
		)
		return e.errorResponse()
	}

	body := fmt.Sprintf("Вопрос: %s\nОтвет: %s\n\n%s",
		question.Text,
		question.AnswerOrFallback(AnswerFallback),
		questionListText(sess.CurrentCategory, questions),
	)

	return Response{
		Text:    body,
		Choices: ordinalChoices(len(questions)),
	}
}

// questionListText renders the 1-indexed question list for a category
func questionListText(category string, questions []domain.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "В категории '%s' есть следующие вопросы:\n", category)
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Text)
	}
	b.WriteString("Выберите номер вопроса или нажмите 'Назад' для возврата.")
	return b.String()
}

// ordinalChoices builds the keyboard of question numbers plus the back option
func ordinalChoices(n int) []string {
	choices := make([]string, 0, n+1)
	for i := 1; i <= n; i++ {
		choices = append(choices, strconv.Itoa(i))
	}
	return append(choices, BackKeyword)
}
