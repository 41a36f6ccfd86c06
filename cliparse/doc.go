/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded (via godotenv) before the
environment is consulted.

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Connection string or SQLite file path
  - DatabaseType: "sqlite" (default) or "postgres"
  - AuthorKeySalt: Secret for author key HMAC (required)
  - FeedTimeout: Per-question answer fetch timeout (default: 2s)
  - FeedConcurrency: Max concurrent answer fetches (default: 8)
  - Seed: Load demo data on startup

# CLI Flags

	-p                Server port
	-d                Database URL or SQLite file path
	-t                Database type
	-author-salt      Author key salt
	-feed-timeout     Answer fetch timeout in ms
	-feed-concurrency Max concurrent answer fetches
	-seed             Seed demo data

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	AUTHOR_KEY_SALT  → -author-salt
	FEED_TIMEOUT_MS  → -feed-timeout
	FEED_CONCURRENCY → -feed-concurrency

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - AUTHOR_KEY_SALT must be provided
  - DATABASE_URL must be provided when the type is postgres
    (sqlite defaults to stackit.db)
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
