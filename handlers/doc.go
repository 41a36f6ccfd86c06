/*
Package handlers contains HTTP request handlers for the StackIt API.

# Handler Types

Each handler is a struct holding the feed service and config:

  - QuestionHandler: Listing, creation, voting, acceptance, and the feed
  - AnswerHandler: Answer creation, voting, and answer listings

Handlers are created via constructor functions:

	questionHandler := handlers.NewQuestionHandler(svc, cfg)

# Authorship

Write operations that create content or accept answers identify the caller
with the X-Author-Id and X-Author-Key headers; the key is validated against
the configured salt. Votes are anonymous and need no headers.

# Error Mapping

Service errors map to statuses in one place (respondError):

	*feed.ValidationError  → 400
	invalid author key     → 401
	feed.ErrNotAuthor      → 403
	store.ErrNotFound      → 404
	anything else          → 500 (logged, not leaked)
*/
package handlers
