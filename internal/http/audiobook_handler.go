package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"audiomatch/internal/discovery"
	"audiomatch/internal/httpx"
	"audiomatch/internal/normalize"
)

// Matcher is the slice of the discovery engine the handlers need.
type Matcher interface {
	FindBestMatch(ctx context.Context, t discovery.Target) (*discovery.AudiobookRecord, error)
	FindCandidatesForSelection(ctx context.Context, t discovery.Target) (*discovery.Selection, error)
	EnrichBook(ctx context.Context, b discovery.Book) (discovery.Book, error)
}

const defaultCacheTTL = 15 * time.Minute

type AudiobookHandler struct {
	matcher Matcher
	cache   *Cache
	log     *slog.Logger
}

func NewAudiobookHandler(matcher Matcher, cache *Cache, log *slog.Logger) *AudiobookHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AudiobookHandler{matcher: matcher, cache: cache, log: log}
}

type matchRequest struct {
	Title  string `json:"title" validate:"required,max=500"`
	Author string `json:"author" validate:"required,max=200"`
	ISBN   string `json:"isbn" validate:"omitempty,isbn"`
}

func (req matchRequest) target() discovery.Target {
	return discovery.Target{Title: req.Title, Author: req.Author, ISBN: req.ISBN}
}

// cacheKey collapses spelling variants of the same lookup onto one entry.
func cacheKey(kind string, t discovery.Target) string {
	return fmt.Sprintf("%s|%s|%s|%s", kind, normalize.Title(t.Title), normalize.Author(t.Author), t.ISBN)
}

func (h *AudiobookHandler) decodeMatchRequest(w http.ResponseWriter, r *http.Request) (matchRequest, bool) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", nil)
		return req, false
	}

	if validationErrors := ValidateStruct(req); validationErrors != nil {
		details := make([]httpx.ErrorDetail, 0, len(validationErrors))
		for _, ve := range validationErrors {
			details = append(details, httpx.ErrorDetail{Field: ve.Field, Message: ve.Message})
		}
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Request validation failed", details)
		return req, false
	}

	return req, true
}

func (h *AudiobookHandler) Match(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeMatchRequest(w, r)
	if !ok {
		return
	}

	key := cacheKey("match", req.target())
	if h.cache != nil {
		if cached, found := h.cache.Get(key); found {
			httpx.JSONSuccess(w, r, cached, map[string]interface{}{"cached": true})
			return
		}
	}

	record, err := h.matcher.FindBestMatch(r.Context(), req.target())
	if err != nil {
		h.writeMatchError(w, r, err)
		return
	}

	if h.cache != nil {
		h.cache.Put(key, record, defaultCacheTTL)
	}
	httpx.JSONSuccess(w, r, record, nil)
}

func (h *AudiobookHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeMatchRequest(w, r)
	if !ok {
		return
	}

	key := cacheKey("candidates", req.target())
	if h.cache != nil {
		if cached, found := h.cache.Get(key); found {
			httpx.JSONSuccess(w, r, cached, map[string]interface{}{"cached": true})
			return
		}
	}

	selection, err := h.matcher.FindCandidatesForSelection(r.Context(), req.target())
	if err != nil {
		h.writeMatchError(w, r, err)
		return
	}

	if h.cache != nil {
		h.cache.Put(key, selection, defaultCacheTTL)
	}
	httpx.JSONSuccess(w, r, selection, nil)
}

type enrichRequest struct {
	Title       string `json:"title" validate:"required,max=500"`
	Author      string `json:"author" validate:"required,max=200"`
	ISBN        string `json:"isbn" validate:"omitempty,isbn"`
	Publisher   string `json:"publisher" validate:"omitempty,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	CoverURL    string `json:"coverUrl" validate:"omitempty,url"`
}

func (h *AudiobookHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	var req enrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", nil)
		return
	}

	if validationErrors := ValidateStruct(req); validationErrors != nil {
		details := make([]httpx.ErrorDetail, 0, len(validationErrors))
		for _, ve := range validationErrors {
			details = append(details, httpx.ErrorDetail{Field: ve.Field, Message: ve.Message})
		}
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Request validation failed", details)
		return
	}

	book := discovery.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Publisher:   req.Publisher,
		Description: req.Description,
		CoverURL:    req.CoverURL,
	}

	enriched, err := h.matcher.EnrichBook(r.Context(), book)
	if err != nil {
		h.writeMatchError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, enriched, nil)
}

func (h *AudiobookHandler) writeMatchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, discovery.ErrAuthorRequired):
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Request validation failed", []httpx.ErrorDetail{
			{Field: "author", Message: "author is required"},
		})
	default:
		h.log.Error("audiobook resolution failed", "error", err)
		httpx.JSONError(w, r, http.StatusBadGateway, "MATCH_FAILED", "Audiobook catalogs could not be reached", nil)
	}
}
