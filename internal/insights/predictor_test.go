package insights

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"moodjournal/internal/journal"
)

func TestPredictMoodInsufficientData(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	for _, entries := range [][]journal.Entry{nil, dailyEntries("anxious", "anxious")} {
		prediction, suggestions := engine.PredictMood(entries)

		if prediction.PredictedMood != MoodNeutral || prediction.Confidence != 0.3 || prediction.RiskLevel != RiskLow {
			t.Errorf("expected neutral/0.3/low, got %+v", prediction)
		}
		if len(prediction.Factors) != 1 || len(prediction.Recommendations) != 1 || len(prediction.ProactiveActions) != 1 {
			t.Errorf("expected one line per list, got %+v", prediction)
		}
		if len(suggestions) != 2 || suggestions[0].Title != "Light physical activity" || suggestions[1].Title != "Gratitude practice" {
			t.Errorf("unexpected default suggestions: %+v", suggestions)
		}
	}
}

func TestPredictMoodSharpDecline(t *testing.T) {
	// chronological: excited, excited, happy, sad, angry, anxious, anxious
	entries := dailyEntries("anxious", "anxious", "angry", "sad", "happy", "excited", "excited")

	prediction, suggestions := NewEngine(DefaultOptions()).PredictMood(entries)

	if prediction.PredictedMood != MoodAnxious {
		t.Errorf("expected anxious, got %s", prediction.PredictedMood)
	}
	if prediction.RiskLevel != RiskHigh {
		t.Errorf("expected high risk, got %s", prediction.RiskLevel)
	}
	if prediction.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", prediction.Confidence)
	}
	if !contains(prediction.Recommendations, "Consider reaching out to a mental health professional for support") {
		t.Errorf("expected professional-help recommendation, got %v", prediction.Recommendations)
	}

	wantTitles := []string{"Breathing exercise", "Self-care routine", "Grounding exercise", "Light physical activity"}
	if len(suggestions) != len(wantTitles) {
		t.Fatalf("expected %d suggestions, got %+v", len(wantTitles), suggestions)
	}
	for i, want := range wantTitles {
		if suggestions[i].Title != want {
			t.Errorf("suggestion %d: expected %q, got %q", i, want, suggestions[i].Title)
		}
	}
}

func TestPredictMoodAnxietyPattern(t *testing.T) {
	at := func(daysAgo int) time.Time {
		return time.Date(2026, 3, 16, 20, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
	}
	entries := []journal.Entry{
		entryAt("fine", at(0)),
		entryAt("anxious", at(1)),
		entryAt("fine", at(2)),
		entryAt("fine", at(3)),
		entryAt("anxious", at(4)),
		entryAt("fine", at(5)),
	}

	prediction, suggestions := NewEngine(DefaultOptions()).PredictMood(entries)

	if prediction.PredictedMood != MoodAnxious || prediction.RiskLevel != RiskMedium {
		t.Errorf("expected anxious/medium, got %s/%s", prediction.PredictedMood, prediction.RiskLevel)
	}
	if prediction.Confidence != 0.65 {
		t.Errorf("expected confidence 0.65, got %v", prediction.Confidence)
	}
	if !contains(prediction.Recommendations, "Try a 5-minute breathing exercise when tension builds") {
		t.Errorf("expected anxiety guidance, got %v", prediction.Recommendations)
	}
	if len(suggestions) != 3 || suggestions[0].Title != "Grounding exercise" {
		t.Errorf("unexpected suggestions: %+v", suggestions)
	}
}

func TestPredictMoodPositiveActivity(t *testing.T) {
	entries := []journal.Entry{
		entryAt("happy", monday, "yoga"),
		entryAt("happy", monday.AddDate(0, 0, -1), "yoga"),
		entryAt("happy", monday.AddDate(0, 0, -2), "yoga"),
		entryAt("happy", monday.AddDate(0, 0, -3), "yoga"),
	}

	prediction, _ := NewEngine(DefaultOptions()).PredictMood(entries)

	if prediction.PredictedMood != MoodHappy || prediction.RiskLevel != RiskLow {
		t.Errorf("expected happy/low, got %s/%s", prediction.PredictedMood, prediction.RiskLevel)
	}
	// base 0.5, positive activity 0.1, morning pattern 0.1
	if prediction.Confidence != 0.7 {
		t.Errorf("expected confidence 0.7, got %v", prediction.Confidence)
	}
	if !contains(prediction.ProactiveActions, "Make time for yoga; it tends to lift your mood") {
		t.Errorf("expected yoga action, got %v", prediction.ProactiveActions)
	}
	if !contains(prediction.ProactiveActions, "Continue your current wellbeing activities") {
		t.Errorf("expected default action, got %v", prediction.ProactiveActions)
	}
	if len(prediction.Recommendations) == 0 {
		t.Error("recommendations must never be empty")
	}
}

func TestPredictMoodLowWellbeingEscalatesRisk(t *testing.T) {
	at := func(daysAgo int) time.Time {
		return time.Date(2026, 3, 16, 15, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
	}
	entries := []journal.Entry{
		withScore(entryAt("fine", at(0)), 10),
		withScore(entryAt("fine", at(1)), 12),
		entryAt("fine", at(2)),
		entryAt("fine", at(3)),
		entryAt("fine", at(4)),
	}

	prediction, _ := NewEngine(DefaultOptions()).PredictMood(entries)
	if prediction.RiskLevel != RiskHigh {
		t.Errorf("expected high risk from low wellbeing, got %s", prediction.RiskLevel)
	}
}

func TestPredictMoodConfidenceBounds(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	lists := [][]string{
		{"happy", "happy", "happy"},
		{"anxious", "anxious", "anxious", "anxious", "excited", "excited", "excited"},
		{"excited", "excited", "excited", "sad", "sad", "sad", "sad"},
		{"angry", "angry", "angry", "angry", "angry", "angry", "angry", "angry"},
		{"bored", "fine", "sad", "excited", "neutral"},
	}

	for _, moods := range lists {
		entries := dailyEntries(moods...)
		for i := range entries {
			entries[i].Activities = journal.Activities{"walk"}
			entries[i] = withScore(entries[i], 5)
		}

		prediction, suggestions := engine.PredictMood(entries)
		if prediction.Confidence < 0 || prediction.Confidence > 0.95 {
			t.Errorf("%v: confidence %v out of bounds", moods, prediction.Confidence)
		}
		if len(suggestions) > 4 {
			t.Errorf("%v: %d suggestions", moods, len(suggestions))
		}
		for i := 1; i < len(suggestions); i++ {
			if suggestions[i].Priority.rank() > suggestions[i-1].Priority.rank() {
				t.Errorf("%v: suggestions out of priority order", moods)
			}
		}
	}
}

func TestPredictMoodIsIdempotent(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	entries := dailyEntries("sad", "stressed", "fine", "happy", "excited", "happy")

	p1, s1 := engine.PredictMood(entries)
	p2, s2 := engine.PredictMood(entries)
	first, _ := json.Marshal(PredictionReport{Prediction: p1, Suggestions: s1})
	second, _ := json.Marshal(PredictionReport{Prediction: p2, Suggestions: s2})
	if !bytes.Equal(first, second) {
		t.Errorf("outputs differ:\n%s\n%s", first, second)
	}
}

// mondayEvening builds entries an hour apart going back from 22:00 on monday, newest first.
func mondayEvening(moods ...string) []journal.Entry {
	start := time.Date(2026, 3, 16, 22, 0, 0, 0, time.UTC)
	entries := make([]journal.Entry, 0, len(moods))
	for i, mood := range moods {
		entries = append(entries, entryAt(mood, start.Add(-time.Duration(i)*time.Hour)))
	}
	return entries
}

func TestPredictMoodSingleFactor(t *testing.T) {
	weekend := func() []journal.Entry {
		var entries []journal.Entry
		saturday := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
		for i := 0; i < 8; i++ {
			at := saturday.AddDate(0, 0, -i)
			mood := "fine"
			if at.Weekday() == time.Saturday || at.Weekday() == time.Sunday {
				mood = "excited"
			}
			entries = append(entries, entryAt(mood, at))
		}
		return entries
	}

	negativeActivity := mondayEvening("angry", "fine", "fine", "fine", "anxious", "fine", "fine")
	negativeActivity[0].Activities = journal.Activities{"commute"}
	negativeActivity[4].Activities = journal.Activities{"commute"}

	tests := []struct {
		name		string
		entries		[]journal.Entry
		factor		string
		mood		string
		risk		RiskLevel
		confidence	float64
	}{
		{
			name:		"improving trend",
			entries:	mondayEvening("happy", "happy", "happy", "fine", "fine", "fine", "fine"),
			factor:		"Mood has been improving over recent entries (up 1.0 points)",
			mood:		MoodExcited,
			risk:		RiskLow,
			confidence:	0.65,
		},
		{
			name:		"moderate decline",
			entries:	mondayEvening("fine", "fine", "fine", "fine", "fine", "happy", "happy"),
			factor:		"Mood has been declining over recent entries (down 0.5 points)",
			mood:		MoodSad,
			risk:		RiskMedium,
			confidence:	0.7,
		},
		{
			name:		"weekend effect",
			entries:	weekend(),
			factor:		"Weekend effect: your mood tends to be better on weekends",
			mood:		MoodNeutral,
			risk:		RiskLow,
			confidence:	0.6,
		},
		{
			name:		"negative activity",
			entries:	negativeActivity,
			factor:		"Activities linked to lower moods: commute",
			mood:		MoodStressed,
			risk:		RiskLow,
			confidence:	0.6,
		},
	}

	engine := NewEngine(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prediction, _ := engine.PredictMood(tt.entries)

			if len(prediction.Factors) != 1 || prediction.Factors[0] != tt.factor {
				t.Errorf("expected factors [%s], got %v", tt.factor, prediction.Factors)
			}
			if prediction.PredictedMood != tt.mood {
				t.Errorf("expected mood %s, got %s", tt.mood, prediction.PredictedMood)
			}
			if prediction.RiskLevel != tt.risk {
				t.Errorf("expected risk %s, got %s", tt.risk, prediction.RiskLevel)
			}
			if prediction.Confidence != tt.confidence {
				t.Errorf("expected confidence %v, got %v", tt.confidence, prediction.Confidence)
			}
		})
	}
}
