package service

import (
	"testing"
	"time"

	"wellness-journal/internal/model"

	"github.com/stretchr/testify/require"
)

func TestRenderJournalPDFEmpty(t *testing.T) {
	out, err := RenderJournalPDF(nil)
	require.NoError(t, err)
	require.True(t, len(out) > 0)
	require.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderJournalPDFEntries(t *testing.T) {
	now := time.Date(2025, 5, 1, 15, 4, 5, 0, time.UTC)
	entries := []model.Entry{
		{ID: 2, Date: now, Content: "second entry", Mood: "Calm", Gratitude: "Friends"},
		{ID: 1, Date: now, Content: "first entry", Mood: "Happy", Gratitude: "Family"},
	}

	empty, err := RenderJournalPDF(nil)
	require.NoError(t, err)
	out, err := RenderJournalPDF(entries)
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(out[:4]))
	require.Greater(t, len(out), len(empty))
}
