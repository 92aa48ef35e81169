package testutil

import (
	"sync"

	"faqbot/internal/domain"
)

// FakeCategoryRepo is an in-memory CategoryRepository for flow tests
type FakeCategoryRepo struct {
	mu         sync.Mutex
	categories []domain.Category
	nextID     int
}

// NewFakeCategoryRepo creates an empty in-memory category repository
func NewFakeCategoryRepo() *FakeCategoryRepo {
	return &FakeCategoryRepo{nextID: 1}
}

func (r *FakeCategoryRepo) Add(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == name {
			return nil
		}
	}
	r.categories = append(r.categories, domain.Category{ID: r.nextID, Name: name})
	r.nextID++
	return nil
}

func (r *FakeCategoryRepo) List() ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *FakeCategoryRepo) GetByName(name string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == name {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

// FakeQuestionRepo is an in-memory QuestionRepository for flow tests
type FakeQuestionRepo struct {
	mu        sync.Mutex
	questions []domain.Question
	nextID    int
}

// NewFakeQuestionRepo creates an empty in-memory question repository
func NewFakeQuestionRepo() *FakeQuestionRepo {
	return &FakeQuestionRepo{nextID: 1}
}

func (r *FakeQuestionRepo) Add(categoryID int, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions = append(r.questions, domain.Question{
		ID:         r.nextID,
		CategoryID: categoryID,
		Text:       text,
	})
	r.nextID++
	return nil
}

func (r *FakeQuestionRepo) SetAnswer(categoryID int, text, answer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.questions {
		if r.questions[i].CategoryID == categoryID && r.questions[i].Text == text {
			a := answer
			r.questions[i].Answer = &a
		}
	}
	return nil
}

func (r *FakeQuestionRepo) ListByCategory(categoryID int) ([]domain.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Question
	for _, q := range r.questions {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

// FakeAdminRepo is an in-memory AdminRepository for flow tests
type FakeAdminRepo struct {
	mu  sync.Mutex
	ids map[int64]bool
}

// NewFakeAdminRepo creates an in-memory admin repository seeded with the
// given identities
func NewFakeAdminRepo(ids ...int64) *FakeAdminRepo {
	r := &FakeAdminRepo{ids: make(map[int64]bool)}
	for _, id := range ids {
		r.ids[id] = true
	}
	return r
}

func (r *FakeAdminRepo) Add(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids[userID] = true
	return nil
}

func (r *FakeAdminRepo) IsAdmin(userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ids[userID], nil
}
