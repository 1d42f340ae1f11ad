package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"serenity-api/internal/chat"
)

// Chat proxies one conversation turn to the upstream provider. No
// partial output: the turn either fully succeeds or fails with a
// generic message.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []chat.Turn `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Messages) == 0 {
		errorJSON(w, http.StatusBadRequest, "messages are required")
		return
	}

	reply, err := h.chat.Generate(r.Context(), req.Messages)
	if err != nil {
		if errors.Is(err, chat.ErrNotConfigured) {
			log.Print("chat: missing API key")
			errorJSON(w, http.StatusInternalServerError, "chat is not configured")
			return
		}
		log.Printf("chat: %v", err)
		errorJSON(w, http.StatusBadGateway, "Sorry, I had trouble replying. Could you try again?")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
