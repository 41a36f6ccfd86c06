package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NishantSinghhhhh/Odoo/models"
)

// SQL implements Store on database/sql. Queries stay inside the subset both
// backends accept (PostgreSQL via lib/pq, SQLite via modernc.org/sqlite):
// $n placeholders, || concatenation, RETURNING, integer flags, and
// millisecond timestamps.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

const questionColumns = `
	q.id, q.title, q.description, q.tags, q.vote_count, q.view_count,
	q.accepted_answer_id, q.is_active, q.created_at, q.updated_at,
	u.id, u.username, u.email, u.reputation, u.avatar`

const answerColumns = `
	a.id, a.content, a.question_id, a.vote_count, a.is_accepted,
	a.is_active, a.created_at, a.updated_at,
	u.id, u.username, u.email, u.reputation, u.avatar`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(s rowScanner) (models.Question, error) {
	var (
		q                models.Question
		tags             string
		accepted, avatar sql.NullString
		active           int
		created, updated int64
	)
	err := s.Scan(
		&q.ID, &q.Title, &q.Description, &tags, &q.Votes, &q.Views,
		&accepted, &active, &created, &updated,
		&q.Author.ID, &q.Author.Username, &q.Author.Email, &q.Author.Reputation, &avatar,
	)
	if err != nil {
		return models.Question{}, err
	}
	q.Tags = splitTags(tags)
	q.IsActive = active == 1
	q.CreatedAt = time.UnixMilli(created)
	q.UpdatedAt = time.UnixMilli(updated)
	if accepted.Valid {
		v := accepted.String
		q.AcceptedAnswerID = &v
	}
	if avatar.Valid {
		v := avatar.String
		q.Author.Avatar = &v
	}
	return q, nil
}

func scanAnswer(s rowScanner) (models.Answer, error) {
	var (
		a                models.Answer
		avatar           sql.NullString
		acceptedFlag     int
		active           int
		created, updated int64
	)
	err := s.Scan(
		&a.ID, &a.Content, &a.QuestionID, &a.Votes, &acceptedFlag,
		&active, &created, &updated,
		&a.Author.ID, &a.Author.Username, &a.Author.Email, &a.Author.Reputation, &avatar,
	)
	if err != nil {
		return models.Answer{}, err
	}
	a.IsAccepted = acceptedFlag == 1
	a.IsActive = active == 1
	a.CreatedAt = time.UnixMilli(created)
	a.UpdatedAt = time.UnixMilli(updated)
	if avatar.Valid {
		v := avatar.String
		a.Author.Avatar = &v
	}
	return a, nil
}

// Tags are stored denormalized as a single comma-joined column. They are
// lowercased and trimmed before they reach the store, so plain string
// matching is exact.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// escapeLike neutralizes LIKE metacharacters in user input so filters do
// exact matching, not pattern matching. Paired with ESCAPE '\' on the
// predicate; both backends accept that clause.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func (s *SQL) UserByID(ctx context.Context, id string) (models.User, error) {
	var (
		u                models.User
		avatar           sql.NullString
		active           int
		created, updated int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, reputation, avatar, role, is_active, created_at, updated_at
		FROM app_user
		WHERE id = $1 AND is_active = 1
	`, id).Scan(&u.ID, &u.Username, &u.Email, &u.Reputation, &avatar, &u.Role, &active, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	if avatar.Valid {
		v := avatar.String
		u.Avatar = &v
	}
	u.IsActive = active == 1
	u.CreatedAt = time.UnixMilli(created)
	u.UpdatedAt = time.UnixMilli(updated)
	return u, nil
}

func (s *SQL) CreateQuestion(ctx context.Context, q *models.Question) error {
	var accepted any
	if q.AcceptedAnswerID != nil {
		accepted = *q.AcceptedAnswerID
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO question (id, title, description, tags, author_id, vote_count,
		                      view_count, accepted_answer_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, q.ID, q.Title, q.Description, joinTags(q.Tags), q.Author.ID, q.Votes,
		q.Views, accepted, flag(q.IsActive), q.CreatedAt.UnixMilli(), q.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

func (s *SQL) QuestionByID(ctx context.Context, id string) (models.Question, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+questionColumns+`
		FROM question q
		JOIN app_user u ON u.id = q.author_id
		WHERE q.id = $1 AND q.is_active = 1
	`, id)
	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}
	return q, nil
}

// ViewQuestion bumps the view counter in the store, not in application code,
// so racing readers cannot lose increments.
func (s *SQL) ViewQuestion(ctx context.Context, id string) (models.Question, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE question SET view_count = view_count + 1 WHERE id = $1 AND is_active = 1
	`, id)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to increment views: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to increment views: %w", err)
	}
	if n == 0 {
		return models.Question{}, ErrNotFound
	}
	return s.QuestionByID(ctx, id)
}

func (s *SQL) ListQuestions(ctx context.Context, f QuestionFilter) ([]models.Question, int, error) {
	where := []string{"q.is_active = 1"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		p := arg("%" + escapeLike(strings.ToLower(f.Search)) + "%")
		where = append(where, fmt.Sprintf(`(LOWER(q.title) LIKE %s ESCAPE '\' OR LOWER(q.description) LIKE %s ESCAPE '\')`, p, p))
	}
	if len(f.Tags) > 0 {
		ors := make([]string, 0, len(f.Tags))
		for _, t := range f.Tags {
			p := arg("%," + escapeLike(t) + ",%")
			ors = append(ors, fmt.Sprintf(`(',' || q.tags || ',') LIKE %s ESCAPE '\'`, p))
		}
		where = append(where, "("+strings.Join(ors, " OR ")+")")
	}
	if f.AuthorID != "" {
		where = append(where, "q.author_id = "+arg(f.AuthorID))
	}
	whereSQL := strings.Join(where, " AND ")

	// Total reflects the filtered set before pagination.
	var total int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM question q WHERE "+whereSQL, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	order := questionOrder(f.Sort)
	query := fmt.Sprintf(`
		SELECT %s
		FROM question q
		JOIN app_user u ON u.id = q.author_id
		WHERE %s
		ORDER BY %s
		LIMIT %s OFFSET %s
	`, questionColumns, whereSQL, order, arg(f.PageSize), arg((f.Page-1)*f.PageSize))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read questions: %w", err)
	}
	return questions, total, nil
}

// questionOrder maps a sort key to an ORDER BY clause. Every ordering ends
// on the id column so pages are stable across identical timestamps.
func questionOrder(sort string) string {
	switch sort {
	case models.SortOldest:
		return "q.created_at ASC, q.id ASC"
	case models.SortVotes:
		return "q.vote_count DESC, q.created_at DESC, q.id ASC"
	case models.SortViews:
		return "q.view_count DESC, q.created_at DESC, q.id ASC"
	default:
		return "q.created_at DESC, q.id ASC"
	}
}

func (s *SQL) CreateAnswer(ctx context.Context, a *models.Answer) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO answer (id, content, author_id, question_id, vote_count,
		                    is_accepted, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, a.ID, a.Content, a.Author.ID, a.QuestionID, a.Votes,
		flag(a.IsAccepted), flag(a.IsActive), a.CreatedAt.UnixMilli(), a.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert answer: %w", err)
	}
	return nil
}

func (s *SQL) AnswerByID(ctx context.Context, id string) (models.Answer, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+answerColumns+`
		FROM answer a
		JOIN app_user u ON u.id = a.author_id
		WHERE a.id = $1 AND a.is_active = 1
	`, id)
	a, err := scanAnswer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Answer{}, ErrNotFound
	}
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to query answer: %w", err)
	}
	return a, nil
}

// AnswersByQuestion returns the active answers for one question. No ORDER BY:
// the aggregator owns the merge ordering and must not rely on the store.
func (s *SQL) AnswersByQuestion(ctx context.Context, questionID string) ([]models.Answer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+answerColumns+`
		FROM answer a
		JOIN app_user u ON u.id = a.author_id
		WHERE a.question_id = $1 AND a.is_active = 1
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}
	return answers, nil
}

func (s *SQL) ListAnswers(ctx context.Context, f AnswerFilter) ([]models.Answer, int, error) {
	where := []string{"a.is_active = 1"}
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.QuestionID != "" {
		where = append(where, "a.question_id = "+arg(f.QuestionID))
	}
	if f.AuthorID != "" {
		where = append(where, "a.author_id = "+arg(f.AuthorID))
	}
	whereSQL := strings.Join(where, " AND ")

	var total int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM answer a WHERE "+whereSQL, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count answers: %w", err)
	}

	var order string
	switch f.Sort {
	case models.SortNewest:
		order = "a.created_at DESC, a.id ASC"
	case models.SortOldest:
		order = "a.created_at ASC, a.id ASC"
	default:
		// votes: the accepted answer outranks raw score.
		order = "a.is_accepted DESC, a.vote_count DESC, a.created_at DESC, a.id ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM answer a
		JOIN app_user u ON u.id = a.author_id
		WHERE %s
		ORDER BY %s
		LIMIT %s OFFSET %s
	`, answerColumns, whereSQL, order, arg(f.PageSize), arg((f.Page-1)*f.PageSize))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read answers: %w", err)
	}
	return answers, total, nil
}

// AddQuestionVotes applies the delta with a single UPDATE so concurrent votes
// on the same question serialize at the store. RETURNING captures the counter
// value this increment produced; the follow-up read only fills in the author.
func (s *SQL) AddQuestionVotes(ctx context.Context, id string, delta int) (models.Question, error) {
	var votes int
	err := s.db.QueryRowContext(ctx, `
		UPDATE question
		SET vote_count = vote_count + $1, updated_at = $2
		WHERE id = $3 AND is_active = 1
		RETURNING vote_count
	`, delta, time.Now().UnixMilli(), id).Scan(&votes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to apply question vote: %w", err)
	}
	q, err := s.QuestionByID(ctx, id)
	if err != nil {
		return models.Question{}, err
	}
	q.Votes = votes
	return q, nil
}

func (s *SQL) AddAnswerVotes(ctx context.Context, id string, delta int) (models.Answer, error) {
	var votes int
	err := s.db.QueryRowContext(ctx, `
		UPDATE answer
		SET vote_count = vote_count + $1, updated_at = $2
		WHERE id = $3 AND is_active = 1
		RETURNING vote_count
	`, delta, time.Now().UnixMilli(), id).Scan(&votes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Answer{}, ErrNotFound
	}
	if err != nil {
		return models.Answer{}, fmt.Errorf("failed to apply answer vote: %w", err)
	}
	a, err := s.AnswerByID(ctx, id)
	if err != nil {
		return models.Answer{}, err
	}
	a.Votes = votes
	return a, nil
}

// AcceptAnswer keeps the cross-entity invariant inside one transaction: at
// most one accepted answer per question, and the question's pointer always
// names an answer that belongs to it.
func (s *SQL) AcceptAnswer(ctx context.Context, questionID, answerID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var ownerID string
	var active int
	err = tx.QueryRowContext(ctx, `
		SELECT question_id, is_active FROM answer WHERE id = $1
	`, answerID).Scan(&ownerID, &active)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query answer: %w", err)
	}
	if active != 1 {
		return ErrNotFound
	}
	if ownerID != questionID {
		return ErrAnswerMismatch
	}

	now := time.Now().UnixMilli()
	_, err = tx.ExecContext(ctx, `
		UPDATE answer SET is_accepted = 0, updated_at = $1
		WHERE question_id = $2 AND is_accepted = 1
	`, now, questionID)
	if err != nil {
		return fmt.Errorf("failed to clear accepted answer: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE answer SET is_accepted = 1, updated_at = $1 WHERE id = $2
	`, now, answerID)
	if err != nil {
		return fmt.Errorf("failed to mark accepted answer: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE question SET accepted_answer_id = $1, updated_at = $2
		WHERE id = $3 AND is_active = 1
	`, answerID, now, questionID)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit accept: %w", err)
	}
	return nil
}
