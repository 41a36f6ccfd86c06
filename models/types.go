package models

import "time"

// Question sort keys
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortVotes  = "votes"
	SortViews  = "views"
)

// Vote directions
const (
	VoteUp   = 1
	VoteDown = -1
)

// User roles (the user lifecycle itself belongs to the auth service;
// roles are mirrored here for display only)
const (
	RoleGuest = "guest"
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Request types

type CreateQuestionRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type CreateAnswerRequest struct {
	Content    string `json:"content"`
	QuestionID string `json:"question_id"`
}

type VoteRequest struct {
	Vote int `json:"vote"`
}

type AcceptAnswerRequest struct {
	AnswerID string `json:"answer_id"`
}

// Response types

// SuccessResponse is the envelope every 2xx body uses.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// PaginatedQuestions carries one page of questions plus the totals the
// client needs to render pagination controls.
type PaginatedQuestions struct {
	Data       []Question `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

type PaginatedAnswers struct {
	Data       []Answer `json:"data"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"totalPages"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// Author is the public slice of a user attached to questions and answers.
// It is a weak reference: the row lives in app_user but account management
// (registration, credentials, sessions) happens in the auth service.
type Author struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Reputation int     `json:"reputation"`
	Avatar     *string `json:"avatar,omitempty"`
}

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Reputation int       `json:"reputation"`
	Avatar     *string   `json:"avatar,omitempty"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Author returns the public view of the user.
func (u User) Author() Author {
	return Author{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Reputation: u.Reputation,
		Avatar:     u.Avatar,
	}
}

type Question struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Author      Author   `json:"author"`
	Votes       int      `json:"votes"`
	Views       int      `json:"views"`
	// Answers is filled by the feed aggregator. A question whose answers
	// could not be fetched carries an empty list, never null; plain list
	// endpoints that skip aggregation leave it null.
	Answers          []Answer  `json:"answers"`
	AcceptedAnswerID *string   `json:"accepted_answer,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Answer struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Author     Author    `json:"author"`
	QuestionID string    `json:"question_id"`
	Votes      int       `json:"votes"`
	IsAccepted bool      `json:"is_accepted"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Vote describes the intended one-vote-per-(user, target) model. It is not
// persisted yet: the ledger applies anonymous deltas, so nothing stops a
// caller from voting twice. Kept so the wire shape is settled before the
// dedup table lands.
type Vote struct {
	UserID     string    `json:"user_id"`
	TargetID   string    `json:"target_id"`
	TargetKind string    `json:"target_kind"` // "question" or "answer"
	Direction  int       `json:"direction"`   // VoteUp or VoteDown
	CreatedAt  time.Time `json:"created_at"`
}
