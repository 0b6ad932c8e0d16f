package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"moodjournal/internal/auth"
	"moodjournal/internal/insights"
	"moodjournal/internal/linking"

	"github.com/sirupsen/logrus"
)

const (
	defaultHistoryLimit	= 10
	maxHistoryLimit		= 100
)

type InsightsService interface {
	AnalyzePatterns(ctx context.Context, userID string) (insights.PatternReport, error)
	PredictMood(ctx context.Context, userID string) (insights.PredictionReport, error)
	SelectPrompts(ctx context.Context, userID, currentMood string, recentActivities []string) ([]insights.SmartPrompt, error)
}

type PredictionHistory interface {
	ListPredictions(ctx context.Context, userID string, limit int) ([]insights.PredictionSnapshot, error)
}

type Handler struct {
	insightsService		InsightsService
	history			PredictionHistory
	linkingService		*linking.Service
	telegramBotName		string
}

func NewHandler(insightsService InsightsService, linkService *linking.Service, tgBotName string) *Handler {
	return &Handler{
		insightsService:	insightsService,
		linkingService:		linkService,
		telegramBotName:	tgBotName,
	}
}

// WithHistory enables the prediction history endpoint.
func (h *Handler) WithHistory(history PredictionHistory) *Handler {
	h.history = history
	return h
}

type PromptsRequest struct {
	UserID			string		`json:"user_id"`
	CurrentMood		string		`json:"current_mood,omitempty"`
	RecentActivities	[]string	`json:"recent_activities,omitempty"`
}

type PromptsResponse struct {
	Prompts []insights.SmartPrompt `json:"prompts"`
}

type HistoryResponse struct {
	Predictions []insights.PredictionSnapshot `json:"predictions"`
}

type GenerateTelegramLinkResponse struct {
	Link	string	`json:"link"`
	Token	string	`json:"token"`
}

// resolveUserID prefers the authenticated user over the one named by the request.
func resolveUserID(r *http.Request, requested string) string {
	if userID, ok := auth.GetUserIDFromContext(r.Context()); ok {
		return userID
	}
	return strings.TrimSpace(requested)
}

func (h *Handler) PatternsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := resolveUserID(r, r.URL.Query().Get("user_id"))
	report, err := h.insightsService.AnalyzePatterns(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "analyze patterns", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) PredictionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := resolveUserID(r, r.URL.Query().Get("user_id"))
	report, err := h.insightsService.PredictMood(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "predict mood", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) PromptsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PromptsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID := resolveUserID(r, req.UserID)
	prompts, err := h.insightsService.SelectPrompts(r.Context(), userID, req.CurrentMood, req.RecentActivities)
	if err != nil {
		writeServiceError(w, "select prompts", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, PromptsResponse{Prompts: prompts})
}

func (h *Handler) PredictionHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.history == nil {
		http.Error(w, "Prediction history is disabled", http.StatusNotFound)
		return
	}

	userID := resolveUserID(r, r.URL.Query().Get("user_id"))
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	snapshots, err := h.history.ListPredictions(r.Context(), userID, limit)
	if err != nil {
		writeServiceError(w, "list predictions", userID, err)
		return
	}

	writeJSON(w, http.StatusOK, HistoryResponse{Predictions: snapshots})
}

func (h *Handler) GenerateTelegramLinkHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		logrus.Error("No user id in context in GenerateTelegramLinkHandler")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if h.telegramBotName == "" {
		logrus.Error("Telegram bot name is not configured for the API handler")
		http.Error(w, "Telegram linking is unavailable", http.StatusServiceUnavailable)
		return
	}

	token, err := h.linkingService.GenerateLinkToken(userID)
	if err != nil {
		logrus.Errorf("Failed to generate link token for user %s: %v", userID, err)
		http.Error(w, "Failed to generate link", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GenerateTelegramLinkResponse{
		Link:	fmt.Sprintf("https://t.me/%s?start=%s", h.telegramBotName, token),
		Token:	token,
	})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeServiceError(w http.ResponseWriter, action, userID string, err error) {
	if errors.Is(err, insights.ErrMissingUserID) {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}
	logrus.Errorf("Failed to %s for user %s: %v", action, userID, err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}
