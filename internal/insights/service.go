package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moodjournal/internal/journal"

	"github.com/sirupsen/logrus"
)

var ErrMissingUserID = errors.New("user id is required")

const (
	patternWindow		= 30 * 24 * time.Hour
	predictionWindow	= 14 * 24 * time.Hour
	promptWindow		= 7 * 24 * time.Hour
)

// EntryFetcher returns a user's entries created at or after since, newest first.
// A limit of zero means no limit.
type EntryFetcher interface {
	FetchRecentEntries(ctx context.Context, userID string, since time.Time, limit int) ([]journal.Entry, error)
}

type PredictionRecorder interface {
	SavePrediction(ctx context.Context, userID string, prediction MoodPrediction) (string, error)
}

type Service struct {
	engine		*Engine
	entries		EntryFetcher
	recorder	PredictionRecorder
	now		func() time.Time
}

func NewService(engine *Engine, entries EntryFetcher) *Service {
	return &Service{
		engine:		engine,
		entries:	entries,
		now:		time.Now,
	}
}

// WithRecorder stores every computed prediction through recorder.
func (s *Service) WithRecorder(recorder PredictionRecorder) *Service {
	s.recorder = recorder
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) AnalyzePatterns(ctx context.Context, userID string) (PatternReport, error) {
	entries, err := s.fetch(ctx, userID, patternWindow, 0)
	if err != nil {
		return PatternReport{}, err
	}

	report := s.engine.AnalyzePatterns(entries)
	logrus.Infof("Analyzed %d entries for user %s: %d mood patterns, %d risk factors",
		len(entries), userID, len(report.MoodPatterns), len(report.RiskFactors))
	return report, nil
}

func (s *Service) PredictMood(ctx context.Context, userID string) (PredictionReport, error) {
	entries, err := s.fetch(ctx, userID, predictionWindow, 0)
	if err != nil {
		return PredictionReport{}, err
	}

	prediction, suggestions := s.engine.PredictMood(entries)

	if s.recorder != nil {
		if _, err := s.recorder.SavePrediction(ctx, userID, prediction); err != nil {
			logrus.Warnf("Failed to save mood prediction for user %s: %v", userID, err)
		}
	}

	logrus.Infof("Predicted mood %s (confidence %.2f, risk %s) for user %s",
		prediction.PredictedMood, prediction.Confidence, prediction.RiskLevel, userID)
	return PredictionReport{Prediction: prediction, Suggestions: suggestions}, nil
}

func (s *Service) SelectPrompts(ctx context.Context, userID, currentMood string, recentActivities []string) ([]SmartPrompt, error) {
	entries, err := s.fetch(ctx, userID, promptWindow, maxPromptEntries)
	if err != nil {
		return nil, err
	}

	prompts := s.engine.SelectPrompts(currentMood, recentActivities, entries, s.now())
	logrus.Infof("Selected %d prompts for user %s", len(prompts), userID)
	return prompts, nil
}

func (s *Service) fetch(ctx context.Context, userID string, window time.Duration, limit int) ([]journal.Entry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}

	entries, err := s.entries.FetchRecentEntries(ctx, userID, s.now().Add(-window), limit)
	if err != nil {
		logrus.Errorf("Failed to fetch journal entries for user %s: %v", userID, err)
		return nil, fmt.Errorf("fetching journal entries: %w", err)
	}
	return entries, nil
}
