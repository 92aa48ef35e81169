package dialog

import (
	"errors"
	"fmt"

	"faqbot/internal/domain"

	"go.uber.org/zap"
)

var adminChoices = []string{CancelCommand}

// Admin handles the admin-panel entry command. Non-admins are refused
// without any session or store change.
func (e *Engine) Admin(userID int64) Response {
	admin, err := e.admins.IsAdmin(userID)
	if err != nil {
		e.logger.Error("Failed to check admin rights",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return e.errorResponse()
	}

	if !admin {
		e.logger.Warn("Admin panel access denied", zap.Int64("user_id", userID))
		return Response{
			Text:    "У вас нет прав доступа к админ-панели.",
			Choices: e.categoryChoices(),
		}
	}

	e.sessions.Set(userID, domain.Session{State: domain.StateAwaitingCategory})

	e.logger.Info("Admin panel entered", zap.Int64("user_id", userID))

	return Response{
		Text:    "Добро пожаловать в админ-панель!\nВведите название новой категории или нажмите /cancel для выхода.",
		Choices: adminChoices,
	}
}

// Cancel terminates the admin flow (or any dialog) and returns the user
// to the category list
func (e *Engine) Cancel(userID int64) Response {
	e.sessions.Reset(userID)

	e.logger.Info("Operation cancelled", zap.Int64("user_id", userID))

	return Response{
		Text:    "Операция отменена. Вернитесь в главное меню.",
		Choices: e.categoryChoices(),
	}
}

// handleAdminStep advances the admin edit state machine by one step.
// Each transition performs exactly one store write.
func (e *Engine) handleAdminStep(userID int64, sess domain.Session, text string) Response {
	if text == CancelCommand {
		return e.Cancel(userID)
	}

	switch sess.State {
	case domain.StateAwaitingCategory:
		return e.adminAddCategory(userID, text)
	case domain.StateAwaitingQuestion:
		return e.adminAddQuestion(userID, sess, text)
	case domain.StateAwaitingAnswer:
		return e.adminAddAnswer(userID, sess, text)
	default:
		return e.abortAdminFlow(userID)
	}
}

func (e *Engine) adminAddCategory(userID int64, text string) Response {
	if err := e.catalog.AddCategory(text); err != nil {
		if errors.Is(err, domain.ErrEmptyInput) {
			return Response{
				Text:    "Название категории не может быть пустым. Введите название или нажмите /cancel.",
				Choices: adminChoices,
			}
		}
		e.logger.Error("Failed to add category",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("category", text),
		)
		return e.adminRetryResponse("Не удалось сохранить категорию. Попробуйте ещё раз или нажмите /cancel.")
	}

	e.sessions.Set(userID, domain.Session{
		State:           domain.StateAwaitingQuestion,
		CurrentCategory: text,
	})

	e.logger.Info("Admin created category",
		zap.Int64("user_id", userID),
		zap.String("category", text),
	)

	return Response{
		Text:    fmt.Sprintf("Категория '%s' успешно создана.\nВведите вопрос или нажмите /cancel для выхода.", text),
		Choices: adminChoices,
	}
}

func (e *Engine) adminAddQuestion(userID int64, sess domain.Session, text string) Response {
	// Unreachable through normal transitions, but guard anyway
	if sess.CurrentCategory == "" {
		return e.abortAdminFlow(userID)
	}

	if err := e.catalog.AddQuestion(sess.CurrentCategory, text); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyInput):
			return Response{
				Text:    "Вопрос не может быть пустым. Введите вопрос или нажмите /cancel.",
				Choices: adminChoices,
			}
		case errors.Is(err, domain.ErrNotFound):
			// The remembered category vanished; a partial edit would be
			// worse than starting over
			e.logger.Error("Admin flow category missing",
				zap.Int64("user_id", userID),
				zap.String("category", sess.CurrentCategory),
			)
			return e.abortAdminFlow(userID)
		default:
			e.logger.Error("Failed to add question",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.String("category", sess.CurrentCategory),
			)
			return e.adminRetryResponse("Не удалось сохранить вопрос. Попробуйте ещё раз или нажмите /cancel.")
		}
	}

	e.sessions.Set(userID, domain.Session{
		State:           domain.StateAwaitingAnswer,
		CurrentCategory: sess.CurrentCategory,
		CurrentQuestion: text,
	})

	e.logger.Info("Admin added question",
		zap.Int64("user_id", userID),
		zap.String("category", sess.CurrentCategory),
		zap.String("question", text),
	)

	return Response{
		Text:    fmt.Sprintf("Вопрос '%s' добавлен.\nВведите ответ или нажмите /cancel для выхода.", text),
		Choices: adminChoices,
	}
}

func (e *Engine) adminAddAnswer(userID int64, sess domain.Session, text string) Response {
	if sess.CurrentCategory == "" || sess.CurrentQuestion == "" {
		return e.abortAdminFlow(userID)
	}

	if err := e.catalog.SetAnswer(sess.CurrentCategory, sess.CurrentQuestion, text); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyInput):
			return Response{
				Text:    "Ответ не может быть пустым. Введите ответ или нажмите /cancel.",
				Choices: adminChoices,
			}
		case errors.Is(err, domain.ErrNotFound):
			e.logger.Error("Admin flow category missing",
				zap.Int64("user_id", userID),
				zap.String("category", sess.CurrentCategory),
			)
			return e.abortAdminFlow(userID)
		default:
			e.logger.Error("Failed to set answer",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.String("category", sess.CurrentCategory),
				zap.String("question", sess.CurrentQuestion),
			)
			return e.adminRetryResponse("Не удалось сохранить ответ. Попробуйте ещё раз или нажмите /cancel.")
		}
	}

	// Loop back: keep the category, wait for the next question
	e.sessions.Set(userID, domain.Session{
		State:           domain.StateAwaitingQuestion,
		CurrentCategory: sess.CurrentCategory,
	})

	e.logger.Info("Admin added answer",
		zap.Int64("user_id", userID),
		zap.String("category", sess.CurrentCategory),
		zap.String("question", sess.CurrentQuestion),
	)

	return Response{
		Text:    fmt.Sprintf("Ответ '%s' успешно добавлен.\nКатегория и вопрос сохранены. Вы можете продолжить добавление.", text),
		Choices: adminChoices,
	}
}

// abortAdminFlow terminates the flow with a generic error when a
// precondition is gone
func (e *Engine) abortAdminFlow(userID int64) Response {
	e.sessions.Reset(userID)
	return Response{
		Text:    "Произошла ошибка. Попробуйте начать заново.",
		Choices: e.categoryChoices(),
	}
}

// adminRetryResponse keeps the current step alive after a storage failure
func (e *Engine) adminRetryResponse(text string) Response {
	return Response{
		Text:    text,
		Choices: adminChoices,
	}
}
