// File: internal/model/entry.go
package model

import "time"

// Sentiment 標籤，由 polarity 的正負號決定
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

type Entry struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Date      time.Time `db:"date" json:"date"`
	Content   string    `db:"content" json:"content"`
	Mood      string    `db:"mood" json:"mood"`
	Gratitude string    `db:"gratitude" json:"gratitude"`
	Sentiment string    `db:"sentiment" json:"sentiment"`
	Polarity  float64   `db:"polarity" json:"polarity"`
}
