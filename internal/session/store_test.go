package session

import (
	"sync"
	"testing"

	"faqbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetDefaultsToIdle(t *testing.T) {
	store := NewStore()

	sess := store.Get(123)

	assert.Equal(t, domain.StateIdle, sess.State)
	assert.Empty(t, sess.CurrentCategory)
	assert.Empty(t, sess.CurrentQuestion)
}

func TestStore_SetAndGet(t *testing.T) {
	store := NewStore()

	store.Set(123, domain.Session{
		State:           domain.StateCategorySelected,
		CurrentCategory: "Категория 1",
	})

	sess := store.Get(123)

	assert.Equal(t, domain.StateCategorySelected, sess.State)
	assert.Equal(t, "Категория 1", sess.CurrentCategory)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	store := NewStore()

	store.Set(1, domain.Session{State: domain.StateCategorySelected, CurrentCategory: "A"})
	store.Set(2, domain.Session{State: domain.StateAwaitingQuestion, CurrentCategory: "B"})

	assert.Equal(t, "A", store.Get(1).CurrentCategory)
	assert.Equal(t, "B", store.Get(2).CurrentCategory)
	assert.Equal(t, domain.StateIdle, store.Get(3).State)
}

func TestStore_Reset(t *testing.T) {
	store := NewStore()

	store.Set(123, domain.Session{
		State:           domain.StateAwaitingAnswer,
		CurrentCategory: "Категория 1",
		CurrentQuestion: "Вопрос?",
	})
	store.Reset(123)

	sess := store.Get(123)

	assert.Equal(t, domain.StateIdle, sess.State)
	assert.Empty(t, sess.CurrentCategory)
	assert.Empty(t, sess.CurrentQuestion)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()

	store.Set(123, domain.Session{State: domain.StateCategorySelected, CurrentCategory: "A"})

	sess := store.Get(123)
	sess.CurrentCategory = "mutated"

	assert.Equal(t, "A", store.Get(123).CurrentCategory)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			store.Set(id, domain.Session{State: domain.StateCategorySelected})
			store.Get(id)
			store.Reset(id)
		}(int64(i))
	}
	wg.Wait()
}
