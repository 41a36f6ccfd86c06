/*
Package store persists questions, answers, and users behind the Store
interface.

# Store Interface

Store is what the feed service programs against. The SQL implementation
runs on database/sql and stays inside the dialect subset shared by
PostgreSQL and SQLite, so one set of queries serves both backends:

	st := store.NewSQL(conn)

# Counters

View and vote counters are incremented inside the database, never
read-modify-written in Go. Vote updates use RETURNING so each call
observes the exact counter value its own delta produced, even under
concurrent writes.

# Errors

Missing or inactive rows yield ErrNotFound. AcceptAnswer yields
ErrAnswerMismatch when the answer belongs to a different question.
*/
package store
