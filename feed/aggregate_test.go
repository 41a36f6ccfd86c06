package feed_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NishantSinghhhhh/Odoo/feed"
	"github.com/NishantSinghhhhh/Odoo/models"
	"github.com/NishantSinghhhhh/Odoo/testutil"
)

func fixtureUser(id string) models.User {
	return models.User{
		ID:       id,
		Username: id,
		Email:    id + "@test.dev",
		IsActive: true,
	}
}

func fixtureQuestion(id, authorID string, age time.Duration) models.Question {
	now := time.Now()
	return models.Question{
		ID:          id,
		Title:       "A question titled " + id,
		Description: "A description long enough to be valid.",
		Tags:        []string{"go"},
		Author:      models.Author{ID: authorID, Username: authorID},
		IsActive:    true,
		CreatedAt:   now.Add(-age),
		UpdatedAt:   now.Add(-age),
	}
}

func fixtureAnswer(id, questionID, authorID string, votes int, accepted bool, age time.Duration) models.Answer {
	now := time.Now()
	return models.Answer{
		ID:         id,
		Content:    "An answer with id " + id,
		Author:     models.Author{ID: authorID, Username: authorID},
		QuestionID: questionID,
		Votes:      votes,
		IsAccepted: accepted,
		IsActive:   true,
		CreatedAt:  now.Add(-age),
		UpdatedAt:  now.Add(-age),
	}
}

func TestGetFeed_AnswerOrdering(t *testing.T) {
	st := testutil.NewFakeStore()
	st.AddUser(fixtureUser("alice"))
	st.AddQuestion(fixtureQuestion("q1", "alice", 0))

	// Accepted answer has fewer votes than its siblings but must come first.
	st.AddAnswer(fixtureAnswer("popular", "q1", "alice", 10, false, time.Hour))
	st.AddAnswer(fixtureAnswer("accepted", "q1", "alice", 2, true, 2*time.Hour))
	st.AddAnswer(fixtureAnswer("newer", "q1", "alice", 10, false, time.Minute))

	svc := feed.NewService(st, feed.Options{})
	page, err := svc.GetFeed(context.Background(), feed.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	answers := page.Data[0].Answers
	require.Len(t, answers, 3)
	assert.Equal(t, "accepted", answers[0].ID)
	// Equal votes fall back to recency
	assert.Equal(t, "newer", answers[1].ID)
	assert.Equal(t, "popular", answers[2].ID)
}

func TestGetFeed_OrderIndependentOfCompletion(t *testing.T) {
	st := testutil.NewFakeStore()
	st.AddUser(fixtureUser("alice"))
	st.AddQuestion(fixtureQuestion("slow", "alice", 0))
	st.AddQuestion(fixtureQuestion("fast", "alice", time.Hour))
	st.AddAnswer(fixtureAnswer("a-slow", "slow", "alice", 1, false, 0))
	st.AddAnswer(fixtureAnswer("a-fast", "fast", "alice", 1, false, 0))

	// The newest question's fetch finishes last
	st.AnswerDelay["slow"] = 50 * time.Millisecond

	svc := feed.NewService(st, feed.Options{FetchTimeout: time.Second, FetchConcurrency: 4})
	page, err := svc.GetFeed(context.Background(), feed.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)

	// Feed order follows the question sort, not fetch completion
	assert.Equal(t, "slow", page.Data[0].ID)
	assert.Equal(t, "fast", page.Data[1].ID)
	assert.Len(t, page.Data[0].Answers, 1)
	assert.Len(t, page.Data[1].Answers, 1)
}

func TestGetFeed_PartialFailureIsolated(t *testing.T) {
	st := testutil.NewFakeStore()
	st.AddUser(fixtureUser("alice"))
	st.AddQuestion(fixtureQuestion("healthy", "alice", 0))
	st.AddQuestion(fixtureQuestion("broken", "alice", time.Hour))
	st.AddAnswer(fixtureAnswer("a1", "healthy", "alice", 3, false, 0))
	st.AddAnswer(fixtureAnswer("a2", "broken", "alice", 3, false, 0))

	st.FailAnswers["broken"] = errors.New("backend unavailable")

	svc := feed.NewService(st, feed.Options{})
	page, err := svc.GetFeed(context.Background(), feed.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)

	byID := map[string]models.Question{}
	for _, q := range page.Data {
		byID[q.ID] = q
	}
	assert.Len(t, byID["healthy"].Answers, 1)
	// The failed question degrades to an empty, non-nil answer list
	require.NotNil(t, byID["broken"].Answers)
	assert.Empty(t, byID["broken"].Answers)
}

func TestGetFeed_SlowFetchTimesOut(t *testing.T) {
	st := testutil.NewFakeStore()
	st.AddUser(fixtureUser("alice"))
	st.AddQuestion(fixtureQuestion("stuck", "alice", 0))
	st.AddAnswer(fixtureAnswer("a1", "stuck", "alice", 1, false, 0))

	st.AnswerDelay["stuck"] = time.Second

	svc := feed.NewService(st, feed.Options{FetchTimeout: 20 * time.Millisecond})

	start := time.Now()
	page, err := svc.GetFeed(context.Background(), feed.ListParams{})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 500*time.Millisecond, "feed should not wait out the full delay")
	require.Len(t, page.Data, 1)
	require.NotNil(t, page.Data[0].Answers)
	assert.Empty(t, page.Data[0].Answers)
}

func TestGetFeed_ManyQuestionsBoundedConcurrency(t *testing.T) {
	st := testutil.NewFakeStore()
	st.AddUser(fixtureUser("alice"))
	for i := 0; i < 30; i++ {
		id := fmt.Sprintf("q%02d", i)
		st.AddQuestion(fixtureQuestion(id, "alice", time.Duration(i)*time.Minute))
		st.AddAnswer(fixtureAnswer(id+"-ans", id, "alice", i, false, 0))
	}

	svc := feed.NewService(st, feed.Options{FetchConcurrency: 2, FetchTimeout: time.Second})
	page, err := svc.GetFeed(context.Background(), feed.ListParams{PageSize: 100})
	require.NoError(t, err)
	require.Len(t, page.Data, 30)
	for _, q := range page.Data {
		assert.Len(t, q.Answers, 1, "question %s missing its answer", q.ID)
	}
}
