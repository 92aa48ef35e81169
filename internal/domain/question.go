package domain

// Question is a (text, nullable answer) pair scoped to one category.
// Answer is nil until an admin submits one.
type Question struct {
	ID         int
	CategoryID int
	Text       string
	Answer     *string
}

// AnswerOrFallback returns the answer text, or fallback when no answer is set
func (q Question) AnswerOrFallback(fallback string) string {
	if q.Answer == nil {
		return fallback
	}
	return *q.Answer
}
