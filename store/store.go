package store

import (
	"context"
	"errors"

	"github.com/NishantSinghhhhh/Odoo/models"
)

var (
	// ErrNotFound means the id did not resolve to an active entity.
	ErrNotFound = errors.New("not found")
	// ErrAnswerMismatch means the answer exists but belongs to a different
	// question than the one named by the caller.
	ErrAnswerMismatch = errors.New("answer does not belong to question")
)

// QuestionFilter is the typed query the feed layer hands to the store.
// Sort must be one of the models.Sort* keys; the feed layer validates it
// before it gets here.
type QuestionFilter struct {
	Search   string   // case-insensitive match against title or description
	Tags     []string // matches when the question's tag set intersects (OR)
	AuthorID string   // equality on author
	Sort     string
	Page     int // 1-based
	PageSize int
}

// AnswerFilter scopes an answer listing to a question or an author.
type AnswerFilter struct {
	QuestionID string
	AuthorID   string
	Sort       string // newest, oldest, or votes
	Page       int
	PageSize   int
}

// Store is the content-store boundary. Everything above it (query engine,
// vote ledger, aggregator) talks only through this interface; the SQL
// implementation and the in-memory test double both satisfy it.
//
// Ordering contract: AnswersByQuestion returns active answers in no
// particular order. Vote and view increments are atomic at the store, never
// read-modify-write in the caller.
type Store interface {
	UserByID(ctx context.Context, id string) (models.User, error)

	CreateQuestion(ctx context.Context, q *models.Question) error
	QuestionByID(ctx context.Context, id string) (models.Question, error)
	// ViewQuestion returns the question after atomically adding one view.
	ViewQuestion(ctx context.Context, id string) (models.Question, error)
	ListQuestions(ctx context.Context, f QuestionFilter) ([]models.Question, int, error)

	CreateAnswer(ctx context.Context, a *models.Answer) error
	AnswerByID(ctx context.Context, id string) (models.Answer, error)
	AnswersByQuestion(ctx context.Context, questionID string) ([]models.Answer, error)
	ListAnswers(ctx context.Context, f AnswerFilter) ([]models.Answer, int, error)

	// AddQuestionVotes and AddAnswerVotes apply a vote delta atomically and
	// return the entity carrying the counter value this exact increment
	// produced, even when other votes race on the same target.
	AddQuestionVotes(ctx context.Context, id string, delta int) (models.Question, error)
	AddAnswerVotes(ctx context.Context, id string, delta int) (models.Answer, error)

	// AcceptAnswer marks answerID as the accepted answer of questionID,
	// clearing the flag on any sibling, in one transaction.
	AcceptAnswer(ctx context.Context, questionID, answerID string) error
}
