package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/NishantSinghhhhh/Odoo/models"
	"github.com/NishantSinghhhhh/Odoo/store"
)

// FakeStore is an in-memory store.Store for tests that need to inject
// failures or latency, which a real database cannot do. Filtering, sorting,
// and pagination mirror the SQL implementation.
type FakeStore struct {
	mu        sync.Mutex
	users     map[string]models.User
	questions map[string]models.Question
	answers   map[string]models.Answer

	// FailAnswers makes AnswersByQuestion fail for the given question IDs.
	FailAnswers map[string]error
	// AnswerDelay makes AnswersByQuestion block before responding, so tests
	// can exercise fetch timeouts and completion-order independence.
	AnswerDelay map[string]time.Duration
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		users:       make(map[string]models.User),
		questions:   make(map[string]models.Question),
		answers:     make(map[string]models.Answer),
		FailAnswers: make(map[string]error),
		AnswerDelay: make(map[string]time.Duration),
	}
}

// AddUser registers a user fixture.
func (f *FakeStore) AddUser(u models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
}

// AddQuestion registers a question fixture.
func (f *FakeStore) AddQuestion(q models.Question) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions[q.ID] = q
}

// AddAnswer registers an answer fixture.
func (f *FakeStore) AddAnswer(a models.Answer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers[a.ID] = a
}

func (f *FakeStore) UserByID(_ context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *FakeStore) CreateQuestion(_ context.Context, q *models.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions[q.ID] = *q
	return nil
}

func (f *FakeStore) QuestionByID(_ context.Context, id string) (models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.questions[id]
	if !ok || !q.IsActive {
		return models.Question{}, store.ErrNotFound
	}
	return q, nil
}

func (f *FakeStore) ViewQuestion(_ context.Context, id string) (models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.questions[id]
	if !ok || !q.IsActive {
		return models.Question{}, store.ErrNotFound
	}
	q.Views++
	f.questions[id] = q
	return q, nil
}

func (f *FakeStore) ListQuestions(_ context.Context, filter store.QuestionFilter) ([]models.Question, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []models.Question{}
	for _, q := range f.questions {
		if !q.IsActive {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(q.Title), s) &&
				!strings.Contains(strings.ToLower(q.Description), s) {
				continue
			}
		}
		if len(filter.Tags) > 0 && !hasAnyTag(q.Tags, filter.Tags) {
			continue
		}
		if filter.AuthorID != "" && q.Author.ID != filter.AuthorID {
			continue
		}
		matched = append(matched, q)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch filter.Sort {
		case models.SortOldest:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		case models.SortVotes:
			if a.Votes != b.Votes {
				return a.Votes > b.Votes
			}
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		case models.SortViews:
			if a.Views != b.Views {
				return a.Views > b.Views
			}
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	})

	total := len(matched)
	start := (filter.Page - 1) * filter.PageSize
	if start > total {
		start = total
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func (f *FakeStore) CreateAnswer(_ context.Context, a *models.Answer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers[a.ID] = *a
	return nil
}

func (f *FakeStore) AnswerByID(_ context.Context, id string) (models.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.answers[id]
	if !ok || !a.IsActive {
		return models.Answer{}, store.ErrNotFound
	}
	return a, nil
}

func (f *FakeStore) AnswersByQuestion(ctx context.Context, questionID string) ([]models.Answer, error) {
	f.mu.Lock()
	delay := f.AnswerDelay[questionID]
	failure := f.FailAnswers[questionID]
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if failure != nil {
		return nil, failure
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	answers := []models.Answer{}
	for _, a := range f.answers {
		if a.QuestionID == questionID && a.IsActive {
			answers = append(answers, a)
		}
	}
	return answers, nil
}

func (f *FakeStore) ListAnswers(_ context.Context, filter store.AnswerFilter) ([]models.Answer, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []models.Answer{}
	for _, a := range f.answers {
		if !a.IsActive {
			continue
		}
		if filter.QuestionID != "" && a.QuestionID != filter.QuestionID {
			continue
		}
		if filter.AuthorID != "" && a.Author.ID != filter.AuthorID {
			continue
		}
		matched = append(matched, a)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch filter.Sort {
		case models.SortNewest:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		case models.SortOldest:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		default:
			if a.IsAccepted != b.IsAccepted {
				return a.IsAccepted
			}
			if a.Votes != b.Votes {
				return a.Votes > b.Votes
			}
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	})

	total := len(matched)
	start := (filter.Page - 1) * filter.PageSize
	if start > total {
		start = total
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *FakeStore) AddQuestionVotes(_ context.Context, id string, delta int) (models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.questions[id]
	if !ok || !q.IsActive {
		return models.Question{}, store.ErrNotFound
	}
	q.Votes += delta
	q.UpdatedAt = time.Now()
	f.questions[id] = q
	return q, nil
}

func (f *FakeStore) AddAnswerVotes(_ context.Context, id string, delta int) (models.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.answers[id]
	if !ok || !a.IsActive {
		return models.Answer{}, store.ErrNotFound
	}
	a.Votes += delta
	a.UpdatedAt = time.Now()
	f.answers[id] = a
	return a, nil
}

func (f *FakeStore) AcceptAnswer(_ context.Context, questionID, answerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	target, ok := f.answers[answerID]
	if !ok || !target.IsActive {
		return store.ErrNotFound
	}
	if target.QuestionID != questionID {
		return store.ErrAnswerMismatch
	}
	q, ok := f.questions[questionID]
	if !ok || !q.IsActive {
		return store.ErrNotFound
	}

	for id, a := range f.answers {
		if a.QuestionID == questionID && a.IsAccepted {
			a.IsAccepted = false
			f.answers[id] = a
		}
	}
	target.IsAccepted = true
	f.answers[answerID] = target

	q.AcceptedAnswerID = &answerID
	q.UpdatedAt = time.Now()
	f.questions[questionID] = q
	return nil
}
