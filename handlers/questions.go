package handlers

import (
	"net/http"

	"github.com/NishantSinghhhhh/Odoo/cliparse"
	"github.com/NishantSinghhhhh/Odoo/feed"
	"github.com/NishantSinghhhhh/Odoo/middleware"
	"github.com/NishantSinghhhhh/Odoo/models"
)

type QuestionHandler struct {
	svc *feed.Service
	cfg cliparse.Config
}

func NewQuestionHandler(svc *feed.Service, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{svc: svc, cfg: cfg}
}

// List handles GET /questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListQuestions(r.Context(), listParams(r))
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, page)
}

// Feed handles GET /feed
func (h *QuestionHandler) Feed(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.GetFeed(r.Context(), listParams(r))
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, page)
}

// Get handles GET /questions/{id}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	q, err := h.svc.GetQuestion(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Data:    q,
	})
}

// Create handles POST /questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := requireAuthor(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	q, err := h.svc.CreateQuestion(r.Context(), authorID, req)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SuccessResponse{
		Success: true,
		Message: "Question created successfully",
		Data:    q,
	})
}

// Vote handles POST /questions/{id}/vote
func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	q, err := h.svc.VoteQuestion(r.Context(), id, req.Vote)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Vote recorded",
		Data:    q,
	})
}

// Accept handles POST /questions/{id}/accept
func (h *QuestionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	actorID, ok := requireAuthor(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.AcceptAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.AnswerID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answer_id is required")
		return
	}

	q, err := h.svc.AcceptAnswer(r.Context(), id, req.AnswerID, actorID)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Answer accepted",
		Data:    q,
	})
}
