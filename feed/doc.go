/*
Package feed is the application core for the Q&A platform: question and
answer listings, vote counting, answer acceptance, and the aggregated
question feed.

# Service

Service wraps a store.Store with validation and assembly logic:

	svc := feed.NewService(store.NewSQL(conn), feed.Options{
		FetchTimeout:     cfg.FeedTimeout,
		FetchConcurrency: cfg.FeedConcurrency,
	})

All handlers go through Service; nothing reaches the store directly.

# Feed Aggregation

GetFeed pages through questions and fetches each question's answers
concurrently. The fan-out is bounded by FetchConcurrency and each fetch has
its own FetchTimeout. A failed or slow fetch degrades that one question to
an empty answer list; the rest of the feed is served normally.

Answers are ordered for display: the accepted answer first, then by vote
count, then by recency.

# Votes

VoteQuestion and VoteAnswer apply a single +1 or -1 delta. The increment
happens in the store, so concurrent votes never lose updates, and the
returned entity carries the exact counter value that vote produced.

# Errors

Invalid input yields a *ValidationError. Acceptance by anyone other than
the question's author yields ErrNotAuthor. Store sentinels
(store.ErrNotFound) pass through unchanged.
*/
package feed
