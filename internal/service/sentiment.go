// File: internal/service/sentiment.go
package service

import (
	"github.com/jonreiter/govader"

	"wellness-journal/internal/model"
)

// Annotator 依內容計算情緒極性，polarity 介於 [-1, 1]
// 以介面注入 handler，測試可替換 stub
type Annotator interface {
	Annotate(content string) (sentiment string, polarity float64)
}

// VaderAnnotator 以 VADER 詞典計算 compound polarity
type VaderAnnotator struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderAnnotator() *VaderAnnotator {
	return &VaderAnnotator{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (a *VaderAnnotator) Annotate(content string) (string, float64) {
	polarity := a.analyzer.PolarityScores(content).Compound
	return ClassifySentiment(polarity), polarity
}

// ClassifySentiment polarity > 0 → Positive；< 0 → Negative；== 0 → Neutral
func ClassifySentiment(polarity float64) string {
	switch {
	case polarity > 0:
		return model.SentimentPositive
	case polarity < 0:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
