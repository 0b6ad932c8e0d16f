package insights

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// PredictionSnapshot is a stored MoodPrediction.
type PredictionSnapshot struct {
	ID		string		`json:"id"`
	UserID		string		`json:"userId"`
	CreatedAt	time.Time	`json:"createdAt"`
	Prediction	MoodPrediction	`json:"prediction"`
}

type predictionRow struct {
	ID			string		`db:"id"`
	UserID			string		`db:"user_id"`
	PredictedMood		string		`db:"predicted_mood"`
	Confidence		float64		`db:"confidence"`
	RiskLevel		string		`db:"risk_level"`
	Factors			textList	`db:"factors"`
	Recommendations		textList	`db:"recommendations"`
	ProactiveActions	textList	`db:"proactive_actions"`
	CreatedAt		time.Time	`db:"created_at"`
}

// textList is a string slice kept in a JSON column.
type textList []string

func (l textList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *textList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = textList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for text list", src)
	}

	var items []string
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("decoding text list: %w", err)
		}
	}
	if items == nil {
		items = []string{}
	}
	*l = items
	return nil
}

type Repository struct {
	db	*sqlx.DB
	now	func() time.Time
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		db:	db,
		now:	time.Now,
	}
}

func (r *Repository) SavePrediction(ctx context.Context, userID string, prediction MoodPrediction) (string, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO mood_predictions
		(id, user_id, predicted_mood, confidence, risk_level, factors, recommendations, proactive_actions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		id, userID, prediction.PredictedMood, prediction.Confidence, string(prediction.RiskLevel),
		textList(prediction.Factors), textList(prediction.Recommendations), textList(prediction.ProactiveActions),
		r.now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to save mood prediction for user %s: %w", userID, err)
	}

	return id, nil
}

// ListPredictions returns the user's stored predictions, newest first.
func (r *Repository) ListPredictions(ctx context.Context, userID string, limit int) ([]PredictionSnapshot, error) {
	query := `
		SELECT id, user_id, predicted_mood, confidence, risk_level, factors, recommendations, proactive_actions, created_at
		FROM mood_predictions
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	args := []interface{}{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []predictionRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list mood predictions for user %s: %w", userID, err)
	}

	snapshots := make([]PredictionSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, PredictionSnapshot{
			ID:		row.ID,
			UserID:		row.UserID,
			CreatedAt:	row.CreatedAt,
			Prediction: MoodPrediction{
				PredictedMood:		row.PredictedMood,
				Confidence:		row.Confidence,
				RiskLevel:		RiskLevel(row.RiskLevel),
				Factors:		[]string(row.Factors),
				Recommendations:	[]string(row.Recommendations),
				ProactiveActions:	[]string(row.ProactiveActions),
			},
		})
	}

	logrus.Debugf("Loaded %d mood predictions for user %s", len(snapshots), userID)
	return snapshots, nil
}
