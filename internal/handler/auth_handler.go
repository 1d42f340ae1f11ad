package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"serenity-api/internal/auth"
	"serenity-api/internal/model"
)

const refreshTTL = 7 * 24 * time.Hour

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		errorJSON(w, http.StatusBadRequest, "all fields required")
		return
	}
	if len(req.Password) < 8 {
		errorJSON(w, http.StatusBadRequest, "password too short")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
	}

	if err := h.store.CreateUser(r.Context(), u); err != nil {
		// unique violation = dup email, but don't reveal that
		errorJSON(w, http.StatusConflict, "registration failed")
		return
	}

	h.issueSession(w, r, u, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		errorJSON(w, http.StatusBadRequest, "email and password required")
		return
	}

	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		errorJSON(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.issueSession(w, r, u, http.StatusOK)
}

// issueSession mints the access token and a refresh cookie and writes
// the session response.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, u *model.User, status int) {
	tok, err := auth.MakeToken(u.ID, u.Email, h.secret)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	rawRefresh, tokenHash, err := auth.GenerateRefreshToken()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	if _, err := h.store.CreateRefreshToken(r.Context(), u.ID, tokenHash, time.Now().Add(refreshTTL)); err != nil {
		log.Printf("create refresh token: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	setRefreshCookie(w, rawRefresh, time.Now().Add(refreshTTL))
	writeJSON(w, status, map[string]string{
		"userId": u.ID,
		"name":   u.Name,
		"token":  tok,
	})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("refresh_token")
	if err != nil || c.Value == "" {
		errorJSON(w, http.StatusUnauthorized, "missing refresh token")
		return
	}

	rt, err := h.store.GetRefreshTokenByHash(r.Context(), auth.HashRefreshToken(c.Value))
	if err != nil || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		errorJSON(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	u, err := h.store.UserByID(r.Context(), rt.UserID)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	newRaw, newHash, err := auth.GenerateRefreshToken()
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	newID := uuid.New().String()
	if err := h.store.RotateRefreshToken(r.Context(), rt.ID, newID, rt.UserID, newHash, time.Now().Add(refreshTTL)); err != nil {
		log.Printf("rotate refresh token: %v", err)
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	tok, err := auth.MakeToken(u.ID, u.Email, h.secret)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	setRefreshCookie(w, newRaw, time.Now().Add(refreshTTL))
	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie("refresh_token"); err == nil && c.Value != "" {
		if rt, err := h.store.GetRefreshTokenByHash(r.Context(), auth.HashRefreshToken(c.Value)); err == nil {
			_ = h.store.RevokeAllRefreshTokens(r.Context(), rt.UserID)
		}
	}
	setRefreshCookie(w, "", time.Unix(0, 0))
	writeJSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

func setRefreshCookie(w http.ResponseWriter, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    value,
		Path:     "/api/auth",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
