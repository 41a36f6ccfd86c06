package router

import (
	"net/http"

	"github.com/NishantSinghhhhh/Odoo/cliparse"
	"github.com/NishantSinghhhhh/Odoo/feed"
	"github.com/NishantSinghhhhh/Odoo/handlers"
	"github.com/NishantSinghhhhh/Odoo/middleware"
)

func NewRouter(svc *feed.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(svc, cfg)
	answerHandler := handlers.NewAnswerHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Questions
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.List))
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.Create))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.Get))
	mux.HandleFunc("POST /questions/{id}/vote", middleware.WithLogging(questionHandler.Vote))
	mux.HandleFunc("POST /questions/{id}/accept", middleware.WithLogging(questionHandler.Accept))
	mux.HandleFunc("GET /questions/{id}/answers", middleware.WithLogging(answerHandler.ListByQuestion))

	// Answers
	mux.HandleFunc("GET /answers", middleware.WithLogging(answerHandler.List))
	mux.HandleFunc("POST /answers", middleware.WithLogging(answerHandler.Create))
	mux.HandleFunc("POST /answers/{id}/vote", middleware.WithLogging(answerHandler.Vote))

	// Aggregated feed (questions with answers attached)
	mux.HandleFunc("GET /feed", middleware.WithLogging(questionHandler.Feed))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("stackit API v1"))
	})

	return mux
}
