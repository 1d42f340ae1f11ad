package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"serenity-api/internal/middleware"
	"serenity-api/internal/model"
)

const (
	maxTitleRunes   = 160
	maxContentRunes = 8000
	maxAuthorRunes  = 80
)

// ListArticles is the open community feed, newest first.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.store.ListArticles(r.Context())
	if err != nil {
		log.Printf("list articles: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	if articles == nil {
		articles = []model.Article{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

// CreateArticle posts to the community board. Requires a verified
// identity; the author label falls back to the token's email.
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Title == "" || req.Content == "" {
		errorJSON(w, http.StatusBadRequest, "title and content are required")
		return
	}

	uid, _ := r.Context().Value(middleware.UserIDKey).(string)
	email, _ := r.Context().Value(middleware.EmailKey).(string)

	author := truncateRunes(req.Author, maxAuthorRunes)
	if author == "" {
		author = email
	}
	if author == "" {
		author = "Anonymous"
	}

	article := &model.Article{
		Title:     truncateRunes(req.Title, maxTitleRunes),
		Content:   truncateRunes(req.Content, maxContentRunes),
		Author:    author,
		UID:       uid,
		CreatedAt: time.Now().UTC(),
	}

	id, err := h.store.CreateArticle(r.Context(), article)
	if err != nil {
		log.Printf("create article: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to create article")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Article created", "id": id})
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
