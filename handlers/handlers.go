package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/NishantSinghhhhh/Odoo/auth"
	"github.com/NishantSinghhhhh/Odoo/cliparse"
	"github.com/NishantSinghhhhh/Odoo/feed"
	"github.com/NishantSinghhhhh/Odoo/middleware"
	"github.com/NishantSinghhhhh/Odoo/store"
)

// respondError maps service errors onto HTTP statuses. Anything unmapped is
// logged and reported as a 500 without leaking internals.
func respondError(w http.ResponseWriter, err error) {
	var verr *feed.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, feed.ErrNotAuthor):
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the question author can accept an answer")
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// requireAuthor checks the X-Author-Id and X-Author-Key headers. On failure
// it writes a 401 and returns ok=false.
func requireAuthor(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (string, bool) {
	authorID := r.Header.Get("X-Author-Id")
	if authorID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Author-Id header is required")
		return "", false
	}
	key := r.Header.Get("X-Author-Key")
	if err := auth.ValidateAuthorKey(authorID, key, cfg.AuthorKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid author key")
		return "", false
	}
	return authorID, true
}

// listParams extracts common listing query parameters. Out-of-range page
// and limit values are clamped by the service, not rejected here.
func listParams(r *http.Request) feed.ListParams {
	q := r.URL.Query()

	p := feed.ListParams{
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
		AuthorID: q.Get("author"),
	}
	if tags := q.Get("tags"); tags != "" {
		p.Tags = strings.Split(tags, ",")
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		p.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		p.PageSize = limit
	}
	return p
}
