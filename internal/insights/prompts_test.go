package insights

import (
	"testing"
	"time"

	"moodjournal/internal/journal"
)

func promptIDs(prompts []SmartPrompt) []string {
	ids := make([]string, 0, len(prompts))
	for _, p := range prompts {
		ids = append(ids, p.ID)
	}
	return ids
}

func assertPromptOrder(t *testing.T, prompts []SmartPrompt) {
	t.Helper()
	if len(prompts) > 5 {
		t.Errorf("expected at most 5 prompts, got %d", len(prompts))
	}
	for i := 1; i < len(prompts); i++ {
		if prompts[i].Priority.rank() > prompts[i-1].Priority.rank() {
			t.Errorf("prompts out of priority order: %v", promptIDs(prompts))
			return
		}
	}
}

func TestSelectPromptsNegativeStreakAddsCrisisSupport(t *testing.T) {
	prompts := NewEngine(DefaultOptions()).SelectPrompts("", nil, dailyEntries("sad", "stressed", "angry"), monday)
	assertPromptOrder(t, prompts)

	ids := promptIDs(prompts)
	for _, want := range []string{"support-reach-out", "support-self-kindness", "support-breathe"} {
		if !contains(ids, want) {
			t.Errorf("expected %s in %v", want, ids)
		}
	}
	if !contains(ids, "pattern-negative-streak") {
		t.Errorf("expected negative streak prompt in %v", ids)
	}
}

func TestSelectPromptsNegativeCurrentMoodAddsCrisisSupport(t *testing.T) {
	prompts := NewEngine(DefaultOptions()).SelectPrompts("Anxious", nil, nil, monday)
	assertPromptOrder(t, prompts)

	ids := promptIDs(prompts)
	if !contains(ids, "mood-anxious") || !contains(ids, "support-breathe") {
		t.Errorf("expected anxious mood and support prompts, got %v", ids)
	}
}

func TestSelectPromptsTimeOfDay(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	tests := []struct {
		hour	int
		want	string
	}{
		{6, "time-morning"},
		{11, "time-morning"},
		{12, "time-afternoon"},
		{17, "time-afternoon"},
		{18, "time-evening"},
		{23, "time-evening"},
	}

	for _, tt := range tests {
		now := time.Date(2026, 3, 16, tt.hour, 30, 0, 0, time.UTC)
		prompts := engine.SelectPrompts("", nil, nil, now)
		if len(prompts) != 1 || prompts[0].ID != tt.want {
			t.Errorf("hour %d: expected only %s, got %v", tt.hour, tt.want, promptIDs(prompts))
		}
	}
}

func TestSelectPromptsTimeOfDayUsesLocation(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	opts := DefaultOptions()
	opts.Location = newYork

	// 14:00 UTC is 10:00 in New York.
	prompts := NewEngine(opts).SelectPrompts("", nil, nil, time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC))
	if len(prompts) != 1 || prompts[0].ID != "time-morning" {
		t.Errorf("expected morning prompt, got %v", promptIDs(prompts))
	}
}

func TestSelectPromptsCelebration(t *testing.T) {
	prompts := NewEngine(DefaultOptions()).SelectPrompts("happy", nil, nil, monday)
	assertPromptOrder(t, prompts)

	want := []string{"mood-happy", "time-morning", "celebrate-win", "celebrate-share"}
	ids := promptIDs(prompts)
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}

func TestSelectPromptsPositiveStreak(t *testing.T) {
	entries := dailyEntries("excited", "happy", "sad")
	for i := range entries {
		entries[i].Activities = journal.Activities{"walk"}
	}

	ids := promptIDs(NewEngine(DefaultOptions()).SelectPrompts("", nil, entries, monday))
	if !contains(ids, "pattern-positive-streak") || !contains(ids, "celebrate-win") {
		t.Errorf("expected positive streak and celebration prompts, got %v", ids)
	}
	if contains(ids, "support-reach-out") {
		t.Errorf("did not expect crisis prompts, got %v", ids)
	}
}

func TestSelectPromptsActivities(t *testing.T) {
	prompts := NewEngine(DefaultOptions()).SelectPrompts("neutral", []string{"Gratitude", " exercise ", "reading"}, nil, monday)

	want := []string{"activity-exercise", "activity-gratitude", "time-morning", "mood-neutral"}
	ids := promptIDs(prompts)
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}

func TestSelectPromptsFallsBackToNewestEntryMood(t *testing.T) {
	ids := promptIDs(NewEngine(DefaultOptions()).SelectPrompts("", nil, dailyEntries("anxious", "fine"), monday))

	if !contains(ids, "mood-anxious") {
		t.Errorf("expected newest entry mood to drive the mood prompt, got %v", ids)
	}
	if contains(ids, "support-reach-out") {
		t.Errorf("a single negative entry is not a streak, got %v", ids)
	}
}

func TestSelectPromptsLowActivityLogging(t *testing.T) {
	entries := dailyEntries("fine", "fine", "fine", "fine")
	entries[0].Activities = journal.Activities{"walk"}

	want := []string{"time-morning", "mood-fine", "pattern-low-activity"}
	ids := promptIDs(NewEngine(DefaultOptions()).SelectPrompts("", nil, entries, monday))
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}

func TestSelectPromptsBoundedAndOrdered(t *testing.T) {
	engine := NewEngine(DefaultOptions())
	moods := []string{"", "excited", "happy", "fine", "neutral", "sad", "stressed", "anxious", "angry", "unknown"}
	histories := [][]journal.Entry{
		nil,
		dailyEntries("sad", "sad", "sad"),
		dailyEntries("happy", "excited", "happy", "sad"),
		dailyEntries("fine", "angry", "angry", "angry", "angry", "angry", "angry", "angry", "angry", "angry", "angry", "angry"),
	}
	activities := []string{"exercise", "meditation", "gratitude"}

	for _, mood := range moods {
		for _, history := range histories {
			for hour := 0; hour < 24; hour += 7 {
				now := time.Date(2026, 3, 16, hour, 0, 0, 0, time.UTC)
				assertPromptOrder(t, engine.SelectPrompts(mood, activities, history, now))
			}
		}
	}
}

func TestSelectPromptsReturnsCopies(t *testing.T) {
	engine := NewEngine(DefaultOptions())

	first := engine.SelectPrompts("sad", nil, nil, monday)
	first[0].SuggestedActivities[0] = "changed"

	second := engine.SelectPrompts("sad", nil, nil, monday)
	if second[0].SuggestedActivities[0] == "changed" {
		t.Error("canned prompt copy was mutated through a returned prompt")
	}
}

func TestSelectPromptsContextNamesGenerator(t *testing.T) {
	evening := time.Date(2026, 3, 16, 20, 0, 0, 0, time.UTC)
	entries := []journal.Entry{entryAt("fine", monday)}

	prompts := NewEngine(DefaultOptions()).SelectPrompts("fine", []string{"Exercise"}, entries, evening)

	want := map[string]string{
		"mood-fine":		"mood",
		"activity-exercise":	"activity",
		"pattern-low-activity":	"pattern",
		"time-evening":		"time_of_day",
	}
	if len(prompts) != len(want) {
		t.Fatalf("expected %d prompts, got %v", len(want), promptIDs(prompts))
	}
	for _, p := range prompts {
		if p.Context != want[p.ID] {
			t.Errorf("%s: expected context %q, got %q", p.ID, want[p.ID], p.Context)
		}
	}
}
