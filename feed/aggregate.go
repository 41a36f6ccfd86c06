package feed

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/NishantSinghhhhh/Odoo/models"
)

// attachAnswers fetches answers for every question in the slice and writes
// them in place. Fetches run concurrently, bounded by FetchConcurrency, and
// each one gets its own FetchTimeout. A question whose fetch fails or times
// out keeps an empty (non-nil) answer list; the rest of the feed is
// unaffected.
func (s *Service) attachAnswers(ctx context.Context, questions []models.Question) {
	if len(questions) == 0 {
		return
	}

	sem := make(chan struct{}, s.opts.FetchConcurrency)
	var wg sync.WaitGroup

	for i := range questions {
		wg.Add(1)
		go func(q *models.Question) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fetchCtx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
			defer cancel()

			answers, err := s.store.AnswersByQuestion(fetchCtx, q.ID)
			if err != nil {
				slog.Warn("failed to fetch answers for feed",
					"question_id", q.ID,
					"error", err,
				)
				q.Answers = []models.Answer{}
				return
			}
			sortAnswers(answers)
			q.Answers = answers
		}(&questions[i])
	}

	wg.Wait()
}

// sortAnswers orders answers for display: the accepted answer first, then by
// votes, then recency. The id tie-break keeps the order deterministic for
// identical timestamps.
func sortAnswers(answers []models.Answer) {
	sort.Slice(answers, func(i, j int) bool {
		a, b := answers[i], answers[j]
		if a.IsAccepted != b.IsAccepted {
			return a.IsAccepted
		}
		if a.Votes != b.Votes {
			return a.Votes > b.Votes
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
