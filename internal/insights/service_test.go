package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"moodjournal/internal/journal"
)

type recorderStub struct {
	saved	[]MoodPrediction
	err	error
}

func (r *recorderStub) SavePrediction(ctx context.Context, userID string, prediction MoodPrediction) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.saved = append(r.saved, prediction)
	return "id", nil
}

type failingFetcher struct {
	err error
}

func (f failingFetcher) FetchRecentEntries(ctx context.Context, userID string, since time.Time, limit int) ([]journal.Entry, error) {
	return nil, f.err
}

func seededService(t *testing.T) (*Service, *journal.MemoryStore) {
	t.Helper()
	store := journal.NewMemoryStore()
	ctx := context.Background()

	ages := []struct {
		mood	string
		days	int
	}{
		{"happy", 1},
		{"sad", 10},
		{"fine", 20},
		{"angry", 40},
	}
	for _, a := range ages {
		e := entryAt(a.mood, monday.AddDate(0, 0, -a.days))
		if err := store.InsertEntry(ctx, &e); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	svc := NewService(NewEngine(DefaultOptions()), store).WithClock(func() time.Time { return monday })
	return svc, store
}

func TestServiceRejectsMissingUserID(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	if _, err := svc.AnalyzePatterns(ctx, ""); !errors.Is(err, ErrMissingUserID) {
		t.Errorf("patterns: expected ErrMissingUserID, got %v", err)
	}
	if _, err := svc.PredictMood(ctx, "  "); !errors.Is(err, ErrMissingUserID) {
		t.Errorf("prediction: expected ErrMissingUserID, got %v", err)
	}
	if _, err := svc.SelectPrompts(ctx, "", "happy", nil); !errors.Is(err, ErrMissingUserID) {
		t.Errorf("prompts: expected ErrMissingUserID, got %v", err)
	}
}

func TestServiceUsesPipelineWindows(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	report, err := svc.AnalyzePatterns(ctx, "u1")
	if err != nil {
		t.Fatalf("patterns: %v", err)
	}
	total := 0
	for _, p := range report.MoodPatterns {
		total += p.Frequency
	}
	if total != 3 {
		t.Errorf("expected 3 entries in the 30 day window, got %d", total)
	}

	prediction, err := svc.PredictMood(ctx, "u1")
	if err != nil {
		t.Fatalf("prediction: %v", err)
	}
	if prediction.Prediction.Confidence != 0.3 {
		t.Errorf("expected insufficient-data prediction for 2 entries, got %+v", prediction.Prediction)
	}

	prompts, err := svc.SelectPrompts(ctx, "u1", "", nil)
	if err != nil {
		t.Fatalf("prompts: %v", err)
	}
	if !contains(promptIDs(prompts), "mood-happy") {
		t.Errorf("expected the newest entry in the 7 day window to drive prompts, got %v", promptIDs(prompts))
	}
}

func TestServiceRecordsPredictions(t *testing.T) {
	svc, _ := seededService(t)
	recorder := &recorderStub{}
	svc.WithRecorder(recorder)

	if _, err := svc.PredictMood(context.Background(), "u1"); err != nil {
		t.Fatalf("prediction: %v", err)
	}
	if len(recorder.saved) != 1 {
		t.Errorf("expected one saved prediction, got %d", len(recorder.saved))
	}
}

func TestServiceIgnoresRecorderFailure(t *testing.T) {
	svc, _ := seededService(t)
	svc.WithRecorder(&recorderStub{err: errors.New("disk full")})

	report, err := svc.PredictMood(context.Background(), "u1")
	if err != nil {
		t.Fatalf("a failed save must not fail the request: %v", err)
	}
	if report.Prediction.PredictedMood == "" {
		t.Error("expected a prediction")
	}
}

func TestServiceWrapsFetchErrors(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewService(NewEngine(DefaultOptions()), failingFetcher{err: boom})

	if _, err := svc.AnalyzePatterns(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Errorf("expected wrapped fetch error, got %v", err)
	}
}
