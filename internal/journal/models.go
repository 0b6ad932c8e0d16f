package journal

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Entry struct {
	ID		string		`db:"id" json:"id"`
	UserID		string		`db:"user_id" json:"user_id"`
	EntryText	string		`db:"entry_text" json:"entry_text"`
	MoodTag		string		`db:"mood_tag" json:"mood_tag"`
	Activities	Activities	`db:"activities" json:"activities"`
	WellbeingScore	*float64	`db:"wellbeing_score" json:"wellbeing_score,omitempty"`
	CreatedAt	time.Time	`db:"created_at" json:"created_at"`
	DateKey		*string		`db:"date_key" json:"date_key,omitempty"`
}

// Activities is persisted as a JSON array: jsonb on Postgres, text on SQLite.
type Activities []string

func (a Activities) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(a))
	if err != nil {
		return nil, fmt.Errorf("encoding activities: %w", err)
	}
	return string(data), nil
}

func (a *Activities) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*a = Activities{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported activities column type %T", src)
	}

	if len(data) == 0 {
		*a = Activities{}
		return nil
	}

	var decoded []string
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decoding activities: %w", err)
	}
	if decoded == nil {
		decoded = []string{}
	}
	*a = decoded
	return nil
}

// Clone returns a deep copy.
func (e Entry) Clone() Entry {
	out := e
	if e.Activities != nil {
		out.Activities = append(Activities(nil), e.Activities...)
	}
	if e.WellbeingScore != nil {
		score := *e.WellbeingScore
		out.WellbeingScore = &score
	}
	if e.DateKey != nil {
		key := *e.DateKey
		out.DateKey = &key
	}
	return out
}
