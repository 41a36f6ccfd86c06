package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NishantSinghhhhh/Odoo/models"
	"github.com/NishantSinghhhhh/Odoo/store"
	"github.com/NishantSinghhhhh/Odoo/testutil"
)

func newStore(t *testing.T) (*store.SQL, func(username string) string, func(authorID, title string, votes int, age time.Duration) string) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	st := store.NewSQL(conn)

	addUser := func(username string) string {
		return testutil.CreateTestUser(t, conn, username)
	}
	addQuestion := func(authorID, title string, votes int, age time.Duration) string {
		return testutil.CreateTestQuestion(t, conn, authorID, title, votes, time.Now().Add(-age))
	}
	return st, addUser, addQuestion
}

func TestListQuestions_Pagination(t *testing.T) {
	st, addUser, addQuestion := newStore(t)
	ctx := context.Background()

	author := addUser("paginator")
	ids := make(map[string]bool)
	for i := 0; i < 7; i++ {
		id := addQuestion(author, "A question about pagination details", 0, time.Duration(i)*time.Minute)
		ids[id] = true
	}

	filter := store.QuestionFilter{Sort: models.SortNewest, Page: 1, PageSize: 3}

	seen := make(map[string]bool)
	for page := 1; ; page++ {
		filter.Page = page
		items, total, err := st.ListQuestions(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, 7, total)
		if len(items) == 0 {
			break
		}
		for _, q := range items {
			assert.False(t, seen[q.ID], "question %s appeared on two pages", q.ID)
			seen[q.ID] = true
		}
	}
	// Every question appears exactly once across pages
	assert.Equal(t, ids, seen)
}

func TestListQuestions_TagFilter(t *testing.T) {
	st, addUser, _ := newStore(t)
	ctx := context.Background()

	author := addUser("tagger")
	now := time.Now()

	mkQuestion := func(tags string) string {
		q := &models.Question{
			ID:          tags + "-id",
			Title:       "Question tagged " + tags,
			Description: "A body long enough to satisfy validation rules.",
			Tags:        nil,
			Author:      models.Author{ID: author},
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if tags != "" {
			q.Tags = []string{tags}
		}
		require.NoError(t, st.CreateQuestion(ctx, q))
		return q.ID
	}

	goID := mkQuestion("go")
	rustID := mkQuestion("rust")
	mkQuestion("python")

	items, total, err := st.ListQuestions(ctx, store.QuestionFilter{
		Tags: []string{"go", "rust"}, Sort: models.SortNewest, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	var got []string
	for _, q := range items {
		got = append(got, q.ID)
	}
	assert.ElementsMatch(t, []string{goID, rustID}, got)
}

func TestListQuestions_TagNoSubstringMatch(t *testing.T) {
	st, addUser, _ := newStore(t)
	ctx := context.Background()

	author := addUser("substr")
	now := time.Now()
	q := &models.Question{
		ID: "q1", Title: "Question about javascript frameworks",
		Description: "A body long enough to satisfy validation rules.",
		Tags:        []string{"javascript"},
		Author:      models.Author{ID: author},
		IsActive:    true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, st.CreateQuestion(ctx, q))

	// "java" must not match the "javascript" tag
	_, total, err := st.ListQuestions(ctx, store.QuestionFilter{
		Tags: []string{"java"}, Sort: models.SortNewest, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestListQuestions_LikeMetacharactersAreLiteral(t *testing.T) {
	st, addUser, _ := newStore(t)
	ctx := context.Background()

	author := addUser("literal")
	now := time.Now()
	mkQuestion := func(id string, tags []string) {
		q := &models.Question{
			ID: id, Title: "Question carrying tag " + id,
			Description: "A body long enough to satisfy validation rules.",
			Tags:        tags,
			Author:      models.Author{ID: author},
			IsActive:    true, CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, st.CreateQuestion(ctx, q))
	}
	mkQuestion("plain", []string{"golang"})
	mkQuestion("underscored", []string{"c_sharp"})

	list := func(f store.QuestionFilter) int {
		f.Sort = models.SortNewest
		f.Page, f.PageSize = 1, 10
		_, total, err := st.ListQuestions(ctx, f)
		require.NoError(t, err)
		return total
	}

	// "_" is a literal underscore, not a single-character wildcard
	assert.Equal(t, 0, list(store.QuestionFilter{Tags: []string{"go_ang"}}))
	assert.Equal(t, 1, list(store.QuestionFilter{Tags: []string{"c_sharp"}}))
	assert.Equal(t, 0, list(store.QuestionFilter{Tags: []string{"cxsharp"}}))

	// "%" matches nothing rather than everything
	assert.Equal(t, 0, list(store.QuestionFilter{Tags: []string{"%"}}))
	assert.Equal(t, 0, list(store.QuestionFilter{Search: "%"}))
	assert.Equal(t, 0, list(store.QuestionFilter{Search: "c_rrying"}))
}

func TestListQuestions_Search(t *testing.T) {
	st, addUser, addQuestion := newStore(t)
	ctx := context.Background()

	author := addUser("searcher")
	target := addQuestion(author, "How to configure PostgreSQL replication", 0, 0)
	addQuestion(author, "Unrelated question about frontend state", 0, time.Minute)

	items, total, err := st.ListQuestions(ctx, store.QuestionFilter{
		Search: "postgresql", Sort: models.SortNewest, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, target, items[0].ID)
}

func TestListQuestions_SortVotes(t *testing.T) {
	st, addUser, addQuestion := newStore(t)
	ctx := context.Background()

	author := addUser("voter")
	low := addQuestion(author, "A question with a low vote score", 1, 0)
	high := addQuestion(author, "A question with a high vote score", 9, time.Hour)
	mid := addQuestion(author, "A question with a mid vote score", 5, 2*time.Hour)

	items, _, err := st.ListQuestions(ctx, store.QuestionFilter{
		Sort: models.SortVotes, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{high, mid, low}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestViewQuestion_IncrementsAtomically(t *testing.T) {
	st, addUser, addQuestion := newStore(t)
	ctx := context.Background()

	author := addUser("viewer")
	id := addQuestion(author, "A question that keeps getting viewed", 0, 0)

	const viewers = 20
	var wg sync.WaitGroup
	for i := 0; i < viewers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.ViewQuestion(ctx, id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	q, err := st.QuestionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, viewers, q.Views)
}

func TestViewQuestion_NotFound(t *testing.T) {
	st, _, _ := newStore(t)

	_, err := st.ViewQuestion(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddQuestionVotes_ExactIntermediateValues(t *testing.T) {
	st, addUser, addQuestion := newStore(t)
	ctx := context.Background()

	author := addUser("ledger")
	id := addQuestion(author, "A question voted down then back up", 0, 0)

	q, err := st.AddQuestionVotes(ctx, id, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, q.Votes)

	q, err = st.AddQuestionVotes(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, q.Votes)
}

func TestAddAnswerVotes_ConcurrentDeltasAllLand(t *testing.T) {
	st, addUser, addQuestion := newStore(t)
	ctx := context.Background()

	author := addUser("concurrent")
	qID := addQuestion(author, "A question with a contested answer", 0, 0)

	now := time.Now()
	a := &models.Answer{
		ID: "a1", Content: "An answer everyone votes on.",
		Author: models.Author{ID: author}, QuestionID: qID,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, st.CreateAnswer(ctx, a))

	const ups, downs = 30, 10
	var wg sync.WaitGroup
	vote := func(delta int) {
		defer wg.Done()
		_, err := st.AddAnswerVotes(ctx, "a1", delta)
		assert.NoError(t, err)
	}
	for i := 0; i < ups; i++ {
		wg.Add(1)
		go vote(1)
	}
	for i := 0; i < downs; i++ {
		wg.Add(1)
		go vote(-1)
	}
	wg.Wait()

	got, err := st.AnswerByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, ups-downs, got.Votes)
}

func TestListAnswers_AcceptedOutranksVotes(t *testing.T) {
	st, addUser, addQuestion := newStore(t)
	ctx := context.Background()

	author := addUser("accepter")
	qID := addQuestion(author, "A question with an accepted answer", 0, 0)

	now := time.Now()
	mkAnswer := func(id string, votes int, accepted bool) {
		a := &models.Answer{
			ID: id, Content: "An answer with some votes on it.",
			Author: models.Author{ID: author}, QuestionID: qID,
			Votes: votes, IsAccepted: accepted, IsActive: true,
			CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, st.CreateAnswer(ctx, a))
	}
	mkAnswer("popular", 12, false)
	mkAnswer("accepted", 3, true)
	mkAnswer("quiet", 1, false)

	items, total, err := st.ListAnswers(ctx, store.AnswerFilter{
		QuestionID: qID, Sort: models.SortVotes, Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, "accepted", items[0].ID)
	assert.Equal(t, "popular", items[1].ID)
	assert.Equal(t, "quiet", items[2].ID)
}

func TestAcceptAnswer(t *testing.T) {
	st, addUser, addQuestion := newStore(t)
	ctx := context.Background()

	author := addUser("owner")
	qID := addQuestion(author, "A question whose answer gets accepted", 0, 0)
	otherQ := addQuestion(author, "A different unrelated question here", 0, time.Minute)

	now := time.Now()
	mkAnswer := func(id, questionID string, accepted bool) {
		a := &models.Answer{
			ID: id, Content: "An answer long enough to store.",
			Author: models.Author{ID: author}, QuestionID: questionID,
			IsAccepted: accepted, IsActive: true, CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, st.CreateAnswer(ctx, a))
	}
	mkAnswer("first", qID, true)
	mkAnswer("second", qID, false)
	mkAnswer("foreign", otherQ, false)

	// Accepting a different answer moves the flag
	require.NoError(t, st.AcceptAnswer(ctx, qID, "second"))

	first, err := st.AnswerByID(ctx, "first")
	require.NoError(t, err)
	assert.False(t, first.IsAccepted)

	second, err := st.AnswerByID(ctx, "second")
	require.NoError(t, err)
	assert.True(t, second.IsAccepted)

	q, err := st.QuestionByID(ctx, qID)
	require.NoError(t, err)
	require.NotNil(t, q.AcceptedAnswerID)
	assert.Equal(t, "second", *q.AcceptedAnswerID)

	// An answer from another question is rejected
	assert.ErrorIs(t, st.AcceptAnswer(ctx, qID, "foreign"), store.ErrAnswerMismatch)

	// A missing answer is not found
	assert.ErrorIs(t, st.AcceptAnswer(ctx, qID, "missing"), store.ErrNotFound)
}
