package handlers

import (
	"net/http"

	"github.com/NishantSinghhhhh/Odoo/cliparse"
	"github.com/NishantSinghhhhh/Odoo/feed"
	"github.com/NishantSinghhhhh/Odoo/middleware"
	"github.com/NishantSinghhhhh/Odoo/models"
)

type AnswerHandler struct {
	svc *feed.Service
	cfg cliparse.Config
}

func NewAnswerHandler(svc *feed.Service, cfg cliparse.Config) *AnswerHandler {
	return &AnswerHandler{svc: svc, cfg: cfg}
}

// Create handles POST /answers
func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := requireAuthor(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.CreateAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	a, err := h.svc.CreateAnswer(r.Context(), authorID, req)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SuccessResponse{
		Success: true,
		Message: "Answer created successfully",
		Data:    a,
	})
}

// Vote handles POST /answers/{id}/vote
func (h *AnswerHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answer id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	a, err := h.svc.VoteAnswer(r.Context(), id, req.Vote)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Vote recorded",
		Data:    a,
	})
}

// ListByQuestion handles GET /questions/{id}/answers
func (h *AnswerHandler) ListByQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	p := listParams(r)
	p.QuestionID = questionID

	page, err := h.svc.ListAnswers(r.Context(), p)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, page)
}

// List handles GET /answers
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListAnswers(r.Context(), listParams(r))
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, page)
}
