package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// FetchRecentEntries returns the user's entries created at or after since, newest first.
// A limit of zero or less means no limit.
func (r *Repository) FetchRecentEntries(ctx context.Context, userID string, since time.Time, limit int) ([]Entry, error) {
	query := `
		SELECT id, user_id, entry_text, mood_tag, activities, wellbeing_score, created_at, date_key
		FROM journal_entries
		WHERE user_id = ? AND created_at >= ?
		ORDER BY created_at DESC
	`
	args := []interface{}{userID, since.UTC()}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var entries []Entry
	err := r.db.SelectContext(ctx, &entries, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries for user %s: %w", userID, err)
	}

	logrus.Debugf("Fetched %d journal entries for user %s since %s", len(entries), userID, since.Format(time.RFC3339))
	return entries, nil
}

func (r *Repository) InsertEntry(ctx context.Context, entry *Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Activities == nil {
		entry.Activities = Activities{}
	}

	query := `
		INSERT INTO journal_entries (id, user_id, entry_text, mood_tag, activities, wellbeing_score, created_at, date_key)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		entry.ID, entry.UserID, entry.EntryText, entry.MoodTag, entry.Activities,
		entry.WellbeingScore, entry.CreatedAt.UTC(), entry.DateKey)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", entry.ID, err)
	}

	return nil
}
