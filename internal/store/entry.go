package store

import (
	"context"
	"errors"
	"fmt"

	"wellness-journal/internal/database"
	"wellness-journal/internal/model"

	"github.com/jackc/pgx/v5"
)

var ErrEntryNotFound = errors.New("entry not found")

func CreateEntry(ctx context.Context, db database.DB, e *model.Entry) (*model.Entry, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO entries (user_id, content, mood, gratitude, sentiment, polarity)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, date`,
		e.UserID,
		e.Content,
		e.Mood,
		e.Gratitude,
		e.Sentiment,
		e.Polarity,
	)
	if err := row.Scan(&e.ID, &e.Date); err != nil {
		return nil, fmt.Errorf("CreateEntry: %w", err)
	}
	return e, nil
}

func ListEntriesByUser(ctx context.Context, db database.DB, userID int) ([]model.Entry, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, date, content, mood, gratitude, sentiment, polarity
		 FROM entries WHERE user_id = $1 ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListEntriesByUser: %w", err)
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Date,
			&e.Content,
			&e.Mood,
			&e.Gratitude,
			&e.Sentiment,
			&e.Polarity,
		); err != nil {
			return nil, fmt.Errorf("ListEntriesByUser: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEntriesByUser: %w", err)
	}
	return entries, nil
}

func GetEntryByID(ctx context.Context, db database.DB, entryID, userID int) (*model.Entry, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, date, content, mood, gratitude, sentiment, polarity
		 FROM entries WHERE id = $1 AND user_id = $2`,
		entryID,
		userID,
	)
	e := &model.Entry{}
	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Date,
		&e.Content,
		&e.Mood,
		&e.Gratitude,
		&e.Sentiment,
		&e.Polarity,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("GetEntryByID: %w", err)
	}
	return e, nil
}

// UpdateEntry 只覆寫 content/mood/gratitude/sentiment/polarity，
// date 與 user_id 建立後不再變動
func UpdateEntry(ctx context.Context, db database.DB, e *model.Entry) error {
	tag, err := db.Exec(ctx,
		`UPDATE entries
		 SET content = $1, mood = $2, gratitude = $3, sentiment = $4, polarity = $5
		 WHERE id = $6 AND user_id = $7`,
		e.Content,
		e.Mood,
		e.Gratitude,
		e.Sentiment,
		e.Polarity,
		e.ID,
		e.UserID,
	)
	if err != nil {
		return fmt.Errorf("UpdateEntry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteEntry 刪除不存在或不屬於該使用者的 id 視為 no-op
func DeleteEntry(ctx context.Context, db database.DB, entryID, userID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM entries WHERE id = $1 AND user_id = $2`,
		entryID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteEntry: %w", err)
	}
	return nil
}
