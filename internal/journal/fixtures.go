package journal

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type fixtureEntry struct {
	ID		string		`yaml:"id"`
	UserID		string		`yaml:"user_id"`
	EntryText	string		`yaml:"entry_text"`
	MoodTag		string		`yaml:"mood_tag"`
	Activities	[]string	`yaml:"activities"`
	WellbeingScore	*float64	`yaml:"wellbeing_score"`
	CreatedAt	string		`yaml:"created_at"`
	DateKey		*string		`yaml:"date_key"`
}

// ParseEntries decodes a YAML (or JSON, which is valid YAML) list of entries and
// returns them newest first, the order every pipeline expects.
func ParseEntries(data []byte) ([]Entry, error) {
	var raw []fixtureEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing entries: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for i, r := range raw {
		if strings.TrimSpace(r.MoodTag) == "" {
			return nil, fmt.Errorf("entry %d: mood_tag is required", i)
		}
		createdAt, err := time.Parse(time.RFC3339, strings.TrimSpace(r.CreatedAt))
		if err != nil {
			return nil, fmt.Errorf("entry %d: created_at must be RFC 3339: %w", i, err)
		}

		activities := Activities{}
		if r.Activities != nil {
			activities = Activities(r.Activities)
		}

		entries = append(entries, Entry{
			ID:		r.ID,
			UserID:		r.UserID,
			EntryText:	r.EntryText,
			MoodTag:	r.MoodTag,
			Activities:	activities,
			WellbeingScore:	r.WellbeingScore,
			CreatedAt:	createdAt,
			DateKey:	r.DateKey,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func LoadEntriesFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseEntries(data)
}

type EntryInserter interface {
	InsertEntry(ctx context.Context, entry *Entry) error
}

// Import inserts entries through store. Entries without a user are assigned defaultUserID.
func Import(ctx context.Context, store EntryInserter, entries []Entry, defaultUserID string) (int, error) {
	for i := range entries {
		if entries[i].UserID == "" {
			if defaultUserID == "" {
				return i, fmt.Errorf("entry %d: user_id is required", i)
			}
			entries[i].UserID = defaultUserID
		}
		if err := store.InsertEntry(ctx, &entries[i]); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}
