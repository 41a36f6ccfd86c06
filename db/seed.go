package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Seed loads a small demo dataset for local development. It is idempotent:
// if any user already exists the database is assumed seeded and nothing is
// written.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM app_user").Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing users: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	now := time.Now().UnixMilli()

	users := []struct {
		id, username, email, role string
		reputation                int
	}{
		{uuid.NewString(), "demo_user", "demo@stackit.dev", "user", 125},
		{uuid.NewString(), "demo_admin", "admin@stackit.dev", "admin", 980},
		{uuid.NewString(), "developer1", "dev1@stackit.dev", "user", 42},
		{uuid.NewString(), "developer2", "dev2@stackit.dev", "user", 311},
		{uuid.NewString(), "developer3", "dev3@stackit.dev", "user", 7},
	}
	for _, u := range users {
		_, err := db.Exec(`
			INSERT INTO app_user (id, username, email, reputation, role, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, 1, $6, $6)
		`, u.id, u.username, u.email, u.reputation, u.role, now)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}

	questionID := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO question (id, title, description, tags, author_id, vote_count,
		                      view_count, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $8)
	`, questionID,
		"How to use React hooks with TypeScript?",
		"I am building a React application with TypeScript and I keep running into type errors when typing useState and useEffect. What is the recommended way to annotate hook state and effect dependencies?",
		"react,typescript,hooks",
		users[0].id, 5, 42, now-3*86_400_000)
	if err != nil {
		return fmt.Errorf("failed to seed question: %w", err)
	}

	// The accepted answer deliberately has fewer votes than its sibling so
	// feed ordering is visible in the demo data.
	answers := []struct {
		authorID string
		content  string
		votes    int
		accepted bool
		age      int64
	}{
		{users[3].id, "Type the state explicitly when the initial value does not pin it down: useState<User | null>(null). For useEffect, list every captured variable in the dependency array and let the exhaustive-deps lint rule keep you honest.", 3, true, 2 * 86_400_000},
		{users[1].id, "Generics on useState are usually unnecessary. Prefer letting inference work from the initial value and only annotate when the state starts as null or an empty union.", 8, false, 86_400_000},
		{users[4].id, "Also consider useReducer for complex state, the action union type gives you exhaustive switch checking for free.", 1, false, 43_200_000},
	}
	var acceptedID string
	for _, a := range answers {
		id := uuid.NewString()
		if a.accepted {
			acceptedID = id
		}
		_, err := db.Exec(`
			INSERT INTO answer (id, content, author_id, question_id, vote_count,
			                    is_accepted, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $7)
		`, id, a.content, a.authorID, questionID, a.votes, boolFlag(a.accepted), now-a.age)
		if err != nil {
			return fmt.Errorf("failed to seed answer: %w", err)
		}
	}
	_, err = db.Exec(`UPDATE question SET accepted_answer_id = $1 WHERE id = $2`, acceptedID, questionID)
	if err != nil {
		return fmt.Errorf("failed to link accepted answer: %w", err)
	}

	moreQuestions := []struct {
		title, description, tags string
		authorID                 string
		votes, views             int
		age                      int64
	}{
		{
			"Best practices for Go error handling in HTTP handlers?",
			"My handlers are full of repetitive error branches writing JSON responses. Is there an idiomatic pattern for mapping domain errors to status codes without a framework?",
			"go,http,errors", users[1].id, 12, 230, 5 * 86_400_000,
		},
		{
			"PostgreSQL vs SQLite for a small internal tool",
			"The tool will have at most a dozen concurrent users. Is it worth running a PostgreSQL instance or should I just ship a SQLite file next to the binary?",
			"postgresql,sqlite,database", users[2].id, 4, 88, 86_400_000,
		},
		{
			"How do I paginate a filtered query without losing the total count?",
			"I need both the current page of rows and the total number of matches for the pager UI. Running the filter twice feels wasteful, what do people actually do here?",
			"sql,pagination", users[4].id, 7, 51, 7_200_000,
		},
	}
	for _, q := range moreQuestions {
		_, err := db.Exec(`
			INSERT INTO question (id, title, description, tags, author_id, vote_count,
			                      view_count, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $8)
		`, uuid.NewString(), q.title, q.description, q.tags, q.authorID, q.votes, q.views, now-q.age)
		if err != nil {
			return fmt.Errorf("failed to seed question: %w", err)
		}
	}

	slog.Info("database seeded", "users", len(users), "questions", 1+len(moreQuestions), "answers", len(answers))
	return nil
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
