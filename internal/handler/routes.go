package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"serenity-api/internal/middleware"
)

// Routes builds the full HTTP surface: open booking/list/article/chat
// endpoints, the authenticated article post, and the rate-limited
// credential endpoints.
func (h *Handler) Routes(origins []string, rl *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Serenity backend is running!"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Post("/api/appointments/book", h.BookAppointment)
	r.Get("/api/appointments", h.ListAppointments)
	r.Get("/api/booking/options", h.BookingOptions)

	r.Get("/api/community/articles", h.ListArticles)
	r.With(middleware.Auth(h.secret)).Post("/api/community/articles", h.CreateArticle)

	r.Post("/api/chat", h.Chat)

	r.Route("/api/auth", func(r chi.Router) {
		limited := r.With(middleware.RateLimit(rl))
		limited.Post("/register", h.Register)
		limited.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
		r.Post("/logout", h.Logout)
	})

	return r
}
