package insights

import (
	"time"

	"moodjournal/internal/journal"
)

// monday is 2026-03-16 09:00 UTC.
var monday = time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

func entryAt(mood string, at time.Time, activities ...string) journal.Entry {
	return journal.Entry{
		UserID:		"u1",
		MoodTag:	mood,
		Activities:	journal.Activities(activities),
		CreatedAt:	at,
	}
}

// dailyEntries builds one entry per day going back from monday, newest first.
func dailyEntries(moods ...string) []journal.Entry {
	entries := make([]journal.Entry, 0, len(moods))
	for i, mood := range moods {
		entries = append(entries, entryAt(mood, monday.AddDate(0, 0, -i)))
	}
	return entries
}

func withScore(e journal.Entry, score float64) journal.Entry {
	e.WellbeingScore = &score
	return e
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
