package feed

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/NishantSinghhhhh/Odoo/models"
	"github.com/NishantSinghhhhh/Odoo/store"
)

const (
	defaultQuestionPageSize = 10
	defaultAnswerPageSize   = 20
	maxPageSize             = 100
	// maxPage keeps page*pageSize far from integer overflow; any page this
	// deep is past the data and returns an empty page either way.
	maxPage = 1_000_000

	minTitleLen       = 10
	maxTitleLen       = 200
	minDescriptionLen = 20
	minContentLen     = 10
	maxTags           = 5
)

// Options tune the answer fan-out. Zero values fall back to defaults.
type Options struct {
	FetchTimeout     time.Duration
	FetchConcurrency int
}

// Service is the application core: it validates input, talks to the store,
// and assembles question feeds. Handlers hold a *Service and nothing else.
type Service struct {
	store store.Store
	opts  Options
}

func NewService(st store.Store, opts Options) *Service {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 2 * time.Second
	}
	if opts.FetchConcurrency <= 0 {
		opts.FetchConcurrency = 8
	}
	return &Service{store: st, opts: opts}
}

// ListParams carries query options for question and answer listings.
// QuestionID only applies to answer listings.
type ListParams struct {
	Search     string
	Tags       []string
	AuthorID   string
	QuestionID string
	Sort       string
	Page       int
	PageSize   int
}

func validSort(s string) bool {
	switch s {
	case models.SortNewest, models.SortOldest, models.SortVotes, models.SortViews:
		return true
	}
	return false
}

// normalizeTags lowercases, trims, and dedupes while preserving order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func clampPage(page, size, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func totalPages(total, size int) int {
	if total == 0 {
		return 0
	}
	return (total + size - 1) / size
}

// ListQuestions returns one page of active questions matching the filters.
// Items carry no answers; GetFeed is the answer-hydrating variant.
func (s *Service) ListQuestions(ctx context.Context, p ListParams) (models.PaginatedQuestions, error) {
	f, err := s.questionFilter(p)
	if err != nil {
		return models.PaginatedQuestions{}, err
	}

	items, total, err := s.store.ListQuestions(ctx, f)
	if err != nil {
		return models.PaginatedQuestions{}, err
	}
	return models.PaginatedQuestions{
		Data:       items,
		Total:      total,
		Page:       f.Page,
		Limit:      f.PageSize,
		TotalPages: totalPages(total, f.PageSize),
	}, nil
}

// GetFeed returns a page of questions with their answers attached, fetched
// concurrently per question. A failed or slow fetch degrades that question
// to an empty answer list instead of failing the feed.
func (s *Service) GetFeed(ctx context.Context, p ListParams) (models.PaginatedQuestions, error) {
	page, err := s.ListQuestions(ctx, p)
	if err != nil {
		return models.PaginatedQuestions{}, err
	}
	s.attachAnswers(ctx, page.Data)
	return page, nil
}

func (s *Service) questionFilter(p ListParams) (store.QuestionFilter, error) {
	sort := p.Sort
	if sort == "" {
		sort = models.SortNewest
	} else if !validSort(sort) {
		return store.QuestionFilter{}, invalidf("unknown sort %q", p.Sort)
	}
	page, size := clampPage(p.Page, p.PageSize, defaultQuestionPageSize)
	return store.QuestionFilter{
		Search:   strings.TrimSpace(p.Search),
		Tags:     normalizeTags(p.Tags),
		AuthorID: p.AuthorID,
		Sort:     sort,
		Page:     page,
		PageSize: size,
	}, nil
}

// GetQuestion returns one question with its view counter bumped and its
// answers attached in feed order.
func (s *Service) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	q, err := s.store.ViewQuestion(ctx, id)
	if err != nil {
		return models.Question{}, err
	}
	answers, err := s.store.AnswersByQuestion(ctx, id)
	if err != nil {
		return models.Question{}, err
	}
	sortAnswers(answers)
	q.Answers = answers
	return q, nil
}

// CreateQuestion validates and stores a new question for the given author.
func (s *Service) CreateQuestion(ctx context.Context, authorID string, req models.CreateQuestionRequest) (models.Question, error) {
	// Bounds are characters, not bytes; multi-byte input counts per rune.
	title := strings.TrimSpace(req.Title)
	if utf8.RuneCountInString(title) < minTitleLen {
		return models.Question{}, invalidf("title must be at least %d characters", minTitleLen)
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return models.Question{}, invalidf("title must be at most %d characters", maxTitleLen)
	}
	description := strings.TrimSpace(req.Description)
	if utf8.RuneCountInString(description) < minDescriptionLen {
		return models.Question{}, invalidf("description must be at least %d characters", minDescriptionLen)
	}
	tags := normalizeTags(req.Tags)
	if len(tags) == 0 {
		return models.Question{}, invalidf("at least one tag is required")
	}
	if len(tags) > maxTags {
		return models.Question{}, invalidf("at most %d tags are allowed", maxTags)
	}

	author, err := s.store.UserByID(ctx, authorID)
	if err != nil {
		return models.Question{}, err
	}

	now := time.Now()
	q := models.Question{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Tags:        tags,
		Author:      author.Author(),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateQuestion(ctx, &q); err != nil {
		return models.Question{}, err
	}
	return q, nil
}

// CreateAnswer validates and stores a new answer. The target question must
// exist and be active.
func (s *Service) CreateAnswer(ctx context.Context, authorID string, req models.CreateAnswerRequest) (models.Answer, error) {
	content := strings.TrimSpace(req.Content)
	if utf8.RuneCountInString(content) < minContentLen {
		return models.Answer{}, invalidf("content must be at least %d characters", minContentLen)
	}
	if req.QuestionID == "" {
		return models.Answer{}, invalidf("question id is required")
	}

	if _, err := s.store.QuestionByID(ctx, req.QuestionID); err != nil {
		return models.Answer{}, err
	}
	author, err := s.store.UserByID(ctx, authorID)
	if err != nil {
		return models.Answer{}, err
	}

	now := time.Now()
	a := models.Answer{
		ID:         uuid.NewString(),
		Content:    content,
		Author:     author.Author(),
		QuestionID: req.QuestionID,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.CreateAnswer(ctx, &a); err != nil {
		return models.Answer{}, err
	}
	return a, nil
}

// ListAnswers returns one page of answers, defaulting to feed order
// (accepted first, then votes).
func (s *Service) ListAnswers(ctx context.Context, p ListParams) (models.PaginatedAnswers, error) {
	sort := p.Sort
	if sort == "" {
		sort = models.SortVotes
	} else if !validSort(sort) {
		return models.PaginatedAnswers{}, invalidf("unknown sort %q", p.Sort)
	}
	page, size := clampPage(p.Page, p.PageSize, defaultAnswerPageSize)

	items, total, err := s.store.ListAnswers(ctx, store.AnswerFilter{
		QuestionID: p.QuestionID,
		AuthorID:   p.AuthorID,
		Sort:       sort,
		Page:       page,
		PageSize:   size,
	})
	if err != nil {
		return models.PaginatedAnswers{}, err
	}
	return models.PaginatedAnswers{
		Data:       items,
		Total:      total,
		Page:       page,
		Limit:      size,
		TotalPages: totalPages(total, size),
	}, nil
}

// VoteQuestion applies a single up or down vote and returns the question
// with the counter value this vote produced.
func (s *Service) VoteQuestion(ctx context.Context, id string, direction int) (models.Question, error) {
	if direction != models.VoteUp && direction != models.VoteDown {
		return models.Question{}, invalidf("vote must be 1 or -1")
	}
	return s.store.AddQuestionVotes(ctx, id, direction)
}

// VoteAnswer applies a single up or down vote and returns the answer with
// the counter value this vote produced.
func (s *Service) VoteAnswer(ctx context.Context, id string, direction int) (models.Answer, error) {
	if direction != models.VoteUp && direction != models.VoteDown {
		return models.Answer{}, invalidf("vote must be 1 or -1")
	}
	return s.store.AddAnswerVotes(ctx, id, direction)
}

// AcceptAnswer marks an answer as the accepted one for its question. Only
// the question's author may accept, and the answer must belong to the
// question.
func (s *Service) AcceptAnswer(ctx context.Context, questionID, answerID, actorID string) (models.Question, error) {
	q, err := s.store.QuestionByID(ctx, questionID)
	if err != nil {
		return models.Question{}, err
	}
	if q.Author.ID != actorID {
		return models.Question{}, ErrNotAuthor
	}
	if err := s.store.AcceptAnswer(ctx, questionID, answerID); err != nil {
		if errors.Is(err, store.ErrAnswerMismatch) {
			return models.Question{}, invalidf("answer does not belong to this question")
		}
		return models.Question{}, err
	}
	return s.store.QuestionByID(ctx, questionID)
}
