package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moodjournal/internal/api"
	"moodjournal/internal/insights"
	"moodjournal/internal/journal"
	"moodjournal/internal/linking"
	"moodjournal/internal/telegram"
	"moodjournal/pkg/config"
	"moodjournal/pkg/db"

	"github.com/sirupsen/logrus"
)

func main() {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	cfg := config.LoadConfig()
	logrus.SetLevel(cfg.LogrusLevel())

	engine := insights.NewEngine(insights.Options{
		Location:		cfg.Location(),
		LowWellbeingThreshold:	cfg.LowWellbeingThreshold,
		HighWellbeingThreshold:	cfg.HighWellbeingThreshold,
	})

	var (
		fetcher		insights.EntryFetcher
		predictions	*insights.Repository
	)

	if cfg.StorageBackend == config.StorageBackendMemory {
		logrus.Warn("Using in-memory journal storage, entries are lost on restart")
		store := journal.NewMemoryStore()
		if cfg.SeedFile != "" {
			seedMemoryStore(store, cfg.SeedFile, cfg.SeedUserID)
		}
		fetcher = store
	} else {
		database, err := db.Open(cfg)
		if err != nil {
			logrus.Fatalf("Failed to connect to the database: %v", err)
		}
		defer database.Close()

		fetcher = journal.NewRepository(database)
		predictions = insights.NewRepository(database)
	}

	insightsService := insights.NewService(engine, fetcher)
	if cfg.PersistPredictions && predictions != nil {
		insightsService.WithRecorder(predictions)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	linkingSvc := linking.NewService()
	linkingSvc.StartCleanup(ctx)

	var telegramHandler *telegram.Handler
	var botUsername string
	if cfg.TelegramToken != "" {
		handler, err := telegram.NewHandler(cfg, insightsService, linkingSvc)
		if err != nil {
			logrus.Fatalf("Failed to initialize the Telegram bot: %v", err)
		}
		telegramHandler = handler
		if err := telegramHandler.SetupWebhook(); err != nil {
			logrus.Errorf("Failed to set up the Telegram webhook: %v", err)
		}
		if info := telegramHandler.GetBotInfo(); info != nil {
			botUsername = info.UserName
		}
	} else {
		logrus.Warn("TELEGRAM_TOKEN is not set, the Telegram channel is disabled")
	}

	apiHandler := api.NewHandler(insightsService, linkingSvc, botUsername)
	if predictions != nil {
		apiHandler.WithHistory(predictions)
	}

	mux := http.NewServeMux()
	mux.Handle("/", apiHandler.Routes(cfg.JWTSigningKey, cfg.RequireAuth))
	if telegramHandler != nil {
		mux.HandleFunc(telegramHandler.WebhookPath(), telegramHandler.HandleWebhook)
	}

	server := &http.Server{
		Addr:		cfg.ServerHost + ":" + cfg.ServerPort,
		Handler:	mux,
	}

	go func() {
		logrus.Infof("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()

	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Failed to stop server: %v", err)
	}

	logrus.Info("Server stopped")
}

func seedMemoryStore(store *journal.MemoryStore, path, defaultUserID string) {
	entries, err := journal.LoadEntriesFile(path)
	if err != nil {
		logrus.Fatalf("Failed to load seed entries: %v", err)
	}

	n, err := journal.Import(context.Background(), store, entries, defaultUserID)
	if err != nil {
		logrus.Fatalf("Failed to seed journal entries: %v", err)
	}
	logrus.Infof("Seeded %d journal entries from %s", n, path)
}
