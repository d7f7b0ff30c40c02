package api

import (
	"time"

	"wellness-journal/internal/model"
)

// swagger:model api.EntryResponse
type EntryResponse struct {
	ID        int       `json:"id" example:"1"`
	Date      time.Time `json:"date" example:"2025-05-01T15:04:05Z07:00"`
	Content   string    `json:"content" example:"I am grateful today"`
	Mood      string    `json:"mood" example:"Happy"`
	Gratitude string    `json:"gratitude" example:"Family"`
	Sentiment string    `json:"sentiment" example:"Positive"`
	Polarity  float64   `json:"polarity" example:"0.6"`
}

// swagger:model api.EntryListResponse
type EntryListResponse struct {
	Quote   string          `json:"quote"`
	Entries []EntryResponse `json:"entries"`
}

func NewEntryResponse(e model.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Date:      e.Date,
		Content:   e.Content,
		Mood:      e.Mood,
		Gratitude: e.Gratitude,
		Sentiment: e.Sentiment,
		Polarity:  e.Polarity,
	}
}
