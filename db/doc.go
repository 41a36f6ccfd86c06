/*
Package db handles database connections, schema creation, and demo seeding.

# Opening a Connection

Open picks the driver from the configured database type:

	conn, err := db.Open("sqlite", "stackit.db")

Supported types are "postgres" (lib/pq) and "sqlite" (modernc.org/sqlite).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - app_user: Accounts with reputation and role
  - question: Question body, tags, counters, accepted answer pointer
  - answer: Answers linked to a question and author

# Relationships

	app_user 1──* question
	app_user 1──* answer
	question 1──* answer

Answers cascade on question deletion.

# Portability

The same schema string loads on both backends: timestamps are stored as
BIGINT unix milliseconds and boolean flags as INTEGER 0/1.
*/
package db
