package api

import (
	"net/http"

	"moodjournal/internal/auth"
	"moodjournal/internal/middleware"
)

// Routes mounts every endpoint. With requireAuth the insights endpoints take the
// user from the bearer token instead of the request.
func (h *Handler) Routes(signingKey string, requireAuth bool) http.Handler {
	protect := func(next http.HandlerFunc) http.Handler {
		if requireAuth {
			return auth.JWTMiddleware(next, signingKey)
		}
		return next
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.HealthHandler)

	mux.Handle("/api/insights/patterns", protect(h.PatternsHandler))
	mux.Handle("/api/insights/prediction", protect(h.PredictionHandler))
	mux.Handle("/api/insights/prediction/history", protect(h.PredictionHistoryHandler))
	mux.Handle("/api/insights/prompts", protect(h.PromptsHandler))

	mux.Handle("/api/users/me/link-telegram", auth.JWTMiddleware(http.HandlerFunc(h.GenerateTelegramLinkHandler), signingKey))

	return middleware.Chain(mux,
		middleware.RequestIDMiddleware,
		middleware.RecoverMiddleware,
		middleware.CORSMiddleware,
	)
}
