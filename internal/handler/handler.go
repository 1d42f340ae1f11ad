package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"serenity-api/internal/chat"
	"serenity-api/internal/config"
	"serenity-api/internal/model"
	"serenity-api/internal/store"
)

// Store is the storage collaborator as the handlers see it. It is an
// interface so tests can inject fakes instead of a live pool.
type Store interface {
	CreateAppointment(ctx context.Context, a *model.Appointment) (string, error)
	AppointmentsByEmail(ctx context.Context, email string) ([]model.Appointment, error)
	CreateArticle(ctx context.Context, a *model.Article) (string, error)
	ListArticles(ctx context.Context) ([]model.Article, error)
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	CreateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (string, error)
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*store.RefreshToken, error)
	RotateRefreshToken(ctx context.Context, oldID, newID, userID, newHash string, newExpiry time.Time) error
	RevokeAllRefreshTokens(ctx context.Context, userID string) error
}

// ChatService generates one reply for the recent conversation turns.
type ChatService interface {
	Generate(ctx context.Context, turns []chat.Turn) (string, error)
}

type Handler struct {
	store   Store
	chat    ChatService
	catalog config.Catalog
	secret  string
}

func New(st Store, chatSvc ChatService, catalog config.Catalog, secret string) *Handler {
	return &Handler{store: st, chat: chatSvc, catalog: catalog, secret: secret}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
