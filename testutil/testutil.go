package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/NishantSinghhhhh/Odoo/cliparse"
	"github.com/NishantSinghhhhh/Odoo/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The connection is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            5000,
		DatabaseURL:     ":memory:",
		DatabaseType:    "sqlite",
		AuthorKeySalt:   "test-author-salt",
		FeedTimeout:     2 * time.Second,
		FeedConcurrency: 8,
	}
}

// CreateTestUser inserts a user and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, username string) string {
	t.Helper()

	id := uuid.NewString()
	now := time.Now().UnixMilli()
	_, err := conn.Exec(`
		INSERT INTO app_user (id, username, email, reputation, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, 0, 'user', 1, $4, $4)
	`, id, username, username+"@test.dev", now)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestQuestion inserts an active question and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, authorID, title string, votes int, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO question (id, title, description, tags, author_id, vote_count,
		                      view_count, is_active, created_at, updated_at)
		VALUES ($1, $2, 'A test question body long enough to pass validation.', 'go,testing',
		        $3, $4, 0, 1, $5, $5)
	`, id, title, authorID, votes, createdAt.UnixMilli())
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return id
}

// CreateTestAnswer inserts an active answer and returns its ID
func CreateTestAnswer(t *testing.T, conn *sql.DB, authorID, questionID string, votes int, accepted bool, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	acceptedFlag := 0
	if accepted {
		acceptedFlag = 1
	}
	_, err := conn.Exec(`
		INSERT INTO answer (id, content, author_id, question_id, vote_count,
		                    is_accepted, is_active, created_at, updated_at)
		VALUES ($1, 'A test answer body long enough.', $2, $3, $4, $5, 1, $6, $6)
	`, id, authorID, questionID, votes, acceptedFlag, createdAt.UnixMilli())
	if err != nil {
		t.Fatalf("Failed to create test answer: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
