package domain

// DialogState represents user's current position in the conversation
type DialogState string

const (
	// Navigation states
	StateIdle             DialogState = "idle"
	StateCategorySelected DialogState = "category_selected"

	// Admin edit flow states
	StateAwaitingCategory DialogState = "awaiting_category"
	StateAwaitingQuestion DialogState = "awaiting_question"
	StateAwaitingAnswer   DialogState = "awaiting_answer"
)

// InAdminFlow reports whether the state belongs to the admin edit flow
func (s DialogState) InAdminFlow() bool {
	return s == StateAwaitingCategory || s == StateAwaitingQuestion || s == StateAwaitingAnswer
}

// Session holds per-user transient dialog context. It is never persisted:
// navigation state is re-derivable from the next input.
type Session struct {
	State           DialogState
	CurrentCategory string
	CurrentQuestion string
}
