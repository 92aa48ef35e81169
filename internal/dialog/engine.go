package dialog

import (
	"strings"

	"faqbot/internal/domain"
	"faqbot/internal/service"
	"faqbot/internal/session"

	"go.uber.org/zap"
)

// BackKeyword returns the user from any navigation state to the category list
const BackKeyword = "Назад"

// CancelCommand leaves the admin flow from any of its states
const CancelCommand = "/cancel"

// AnswerFallback is shown in place of an answer that was never filled in
const AnswerFallback = "Ответ отсутствует."

// Response is what the transport layer delivers to the user: a message
// and the set of valid next inputs, rendered as a keyboard.
type Response struct {
	Text    string
	Choices []string
}

// Engine drives the conversation: it classifies each inbound text and
// routes it to the navigation or admin-edit state machine.
type Engine struct {
	catalog  *service.CatalogService
	admins   *service.AdminService
	sessions *session.Store
	logger   *zap.Logger
}

// NewEngine creates a new dialog engine
func NewEngine(
	catalog *service.CatalogService,
	admins *service.AdminService,
	sessions *session.Store,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		catalog:  catalog,
		admins:   admins,
		sessions: sessions,
		logger:   logger,
	}
}

// Start greets the user and shows the category list
func (e *Engine) Start(userID int64) Response {
	e.sessions.Reset(userID)

	e.logger.Info("User started bot", zap.Int64("user_id", userID))

	return Response{
		Text:    "Добро пожаловать в справочник госслужащего! Выберите категорию:",
		Choices: e.categoryChoices(),
	}
}

// Handle processes a plain text message according to the user's state
func (e *Engine) Handle(userID int64, text string) Response {
	text = strings.TrimSpace(text)
	sess := e.sessions.Get(userID)

	if sess.State.InAdminFlow() {
		return e.handleAdminStep(userID, sess, text)
	}

	if text == BackKeyword {
		return e.backToCategories(userID)
	}

	if isDigits(text) && sess.State == domain.StateCategorySelected {
		return e.selectOrdinal(userID, sess, text)
	}

	return e.selectCategory(userID, sess, text)
}

// categoryChoices builds the category keyboard: one choice per category
// plus the back option
func (e *Engine) categoryChoices() []string {
	names, err := e.catalog.Categories()
	if err != nil {
		e.logger.Error("Failed to list categories", zap.Error(err))
		names = nil
	}
	return append(names, BackKeyword)
}

// errorResponse returns the generic retry message with the category list,
// a known-good state for any user
func (e *Engine) errorResponse() Response {
	return Response{
		Text:    "Произошла ошибка. Попробуйте снова.",
		Choices: e.categoryChoices(),
	}
}

// isDigits reports whether s is a non-empty run of ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
