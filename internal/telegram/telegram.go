package telegram

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"moodjournal/internal/insights"
	"moodjournal/internal/linking"
	"moodjournal/pkg/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type InsightsService interface {
	AnalyzePatterns(ctx context.Context, userID string) (insights.PatternReport, error)
	PredictMood(ctx context.Context, userID string) (insights.PredictionReport, error)
	SelectPrompts(ctx context.Context, userID, currentMood string, recentActivities []string) ([]insights.SmartPrompt, error)
}

type Handler struct {
	bot		*tgbotapi.BotAPI
	insightsService	InsightsService
	linkingService	*linking.Service
	cfg		*config.Config
	webhookPath	string
}

// WebhookPath derives a secret webhook route from the bot token.
func WebhookPath(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "/webhook/" + hex.EncodeToString(sum[:])
}

func NewHandler(cfg *config.Config, insightsService InsightsService, lnkService *linking.Service) (*Handler, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telegram bot: %w", err)
	}

	logrus.Infof("Telegram bot started: %s", bot.Self.UserName)

	return &Handler{
		bot:			bot,
		insightsService:	insightsService,
		linkingService:		lnkService,
		cfg:			cfg,
		webhookPath:		WebhookPath(cfg.TelegramToken),
	}, nil
}

func (h *Handler) SetupWebhook() error {
	webhookURL := fmt.Sprintf("https://%s:%s%s", h.cfg.ServerHost, h.cfg.ServerPort, h.webhookPath)

	webhookConfig, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return fmt.Errorf("failed to build webhook config: %w", err)
	}

	if _, err := h.bot.Request(webhookConfig); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	return nil
}

func (h *Handler) WebhookPath() string {
	return h.webhookPath
}

func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	if h.webhookPath == "" || subtle.ConstantTimeCompare([]byte(r.URL.Path), []byte(h.webhookPath)) != 1 {
		logrus.Warnf("Rejected telegram update posted to %s", r.URL.Path)
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	update, err := h.bot.HandleUpdate(r)
	if err != nil {
		logrus.Errorf("Failed to decode telegram update: %v", err)
		http.Error(w, "Bad update", http.StatusBadRequest)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		return
	}

	reply := h.respond(r.Context(), update.Message.From.ID, update.Message.Text)
	if err := h.SendMessage(update.Message.Chat.ID, reply); err != nil {
		logrus.Errorf("Failed to reply to chat %d: %v", update.Message.Chat.ID, err)
	}
}

func (h *Handler) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (h *Handler) GetBotInfo() *tgbotapi.User {
	if h.bot != nil {
		return &h.bot.Self
	}
	return nil
}

// respond maps one incoming message to the reply text.
func (h *Handler) respond(ctx context.Context, telegramUserID int64, text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return helpText
	}

	command := strings.ToLower(fields[0])
	if i := strings.Index(command, "@"); i > 0 {
		command = command[:i]
	}

	if command == "/start" {
		if len(fields) == 2 {
			return h.handleLinkTokenStart(telegramUserID, fields[1])
		}
		return helpText
	}

	switch command {
	case "/insights", "/predict", "/prompts":
	default:
		return helpText
	}

	userID, err := h.linkingService.UserForTelegram(telegramUserID)
	if err != nil {
		return notLinkedText
	}

	switch command {
	case "/insights":
		report, err := h.insightsService.AnalyzePatterns(ctx, userID)
		if err != nil {
			logrus.Errorf("Failed to analyze patterns for user %s: %v", userID, err)
			return failureText
		}
		return FormatPatternReport(report)
	case "/predict":
		report, err := h.insightsService.PredictMood(ctx, userID)
		if err != nil {
			logrus.Errorf("Failed to predict mood for user %s: %v", userID, err)
			return failureText
		}
		return FormatPrediction(report)
	default:
		var mood string
		if len(fields) > 1 {
			mood = fields[1]
		}
		prompts, err := h.insightsService.SelectPrompts(ctx, userID, mood, nil)
		if err != nil {
			logrus.Errorf("Failed to select prompts for user %s: %v", userID, err)
			return failureText
		}
		return FormatPrompts(prompts)
	}
}

func (h *Handler) handleLinkTokenStart(telegramUserID int64, token string) string {
	userID, err := h.linkingService.LinkTelegram(token, telegramUserID)
	if err != nil {
		logrus.Warnf("Failed to link telegram user %d: %v", telegramUserID, err)
		switch {
		case errors.Is(err, linking.ErrTokenNotFound):
			return "This link is invalid or has expired. Please generate a new one in the app."
		case errors.Is(err, linking.ErrTokenAlreadyUsed):
			return "This link has already been used."
		default:
			return "Could not process the link. Please try again later."
		}
	}

	logrus.Infof("Telegram account %d linked to user %s", telegramUserID, userID)
	return "Your Telegram account is now linked to your journal! Try /insights, /predict or /prompts."
}
