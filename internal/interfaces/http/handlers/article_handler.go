package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/byestunting/byestunting/internal/content"
	"github.com/byestunting/byestunting/pkg/errors"
)

const defaultPopularLimit = 5

// ArticleHandler serves the education article endpoints.
type ArticleHandler struct {
	store *content.Store
}

// NewArticleHandler wires the handler.
func NewArticleHandler(store *content.Store) *ArticleHandler {
	return &ArticleHandler{store: store}
}

// List returns articles, optionally filtered by ?category, ?exclude (slug),
// and ?limit.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles := h.store.List(content.ListFilter{
		Category:    r.URL.Query().Get("category"),
		ExcludeSlug: r.URL.Query().Get("exclude"),
		Limit:       queryInt(r, "limit"),
	})
	if articles == nil {
		articles = []content.Article{}
	}
	writeJSON(w, http.StatusOK, articles)
}

// Popular returns the most viewed articles.
func (h *ArticleHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	writeJSON(w, http.StatusOK, h.store.Popular(limit))
}

// Get returns one article by id.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "articleID")
	if err != nil {
		writeAppError(w, err)
		return
	}

	article, err := h.store.GetByID(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// GetBySlug returns one article by slug.
func (h *ArticleHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	article, err := h.store.GetBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

// AddView increments the view counter.
func (h *ArticleHandler) AddView(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "articleID")
	if err != nil {
		writeAppError(w, err)
		return
	}

	views, err := h.store.AddView(id)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"view_count": views,
	})
}

type likeRequest struct {
	Increment int `json:"increment"`
}

// AddLike applies a like increment of +1 or -1.
func (h *ArticleHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "articleID")
	if err != nil {
		writeAppError(w, err)
		return
	}

	var req likeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAppError(w, err)
		return
	}
	if req.Increment == 0 {
		writeAppError(w, errors.InvalidParam("increment harus 1 atau -1"))
		return
	}

	likes, err := h.store.AddLike(id, req.Increment)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"like_count": likes,
	})
}
