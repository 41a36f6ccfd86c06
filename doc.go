/*
Package main provides the entry point for the StackIt API server.

StackIt is a Q&A platform backend: questions with tags and votes, answers
with acceptance, and an aggregated feed that fetches each question's
answers concurrently.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	AUTHOR_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 5000 -t sqlite -d stackit.db -author-salt secret -seed

# Configuration

Required settings:

  - AUTHOR_KEY_SALT (-author-salt): Secret for author key HMAC
  - DATABASE_URL (-d): Required for postgres; sqlite defaults to stackit.db

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - FEED_TIMEOUT_MS (-feed-timeout): Per-question answer fetch timeout
  - FEED_CONCURRENCY (-feed-concurrency): Max concurrent answer fetches
  - -seed: Load demo data on startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (questions, answers)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - feed: Application core (validation, votes, feed aggregation)
  - store: SQL persistence behind the Store interface
  - auth: Author key generation and validation
  - db: Connections, schema creation, seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
