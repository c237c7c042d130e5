package sqlite

import (
	"context"
	"time"

	"github.com/julianstephens/habitgrid/internal/models"
)

func (s *Store) FetchCompletions(ctx context.Context) ([]models.Completion, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT habit_id, date, completed FROM habit_completions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completions := []models.Completion{}
	for rows.Next() {
		var c models.Completion
		var completed int
		if err := rows.Scan(&c.HabitID, &c.Date, &completed); err != nil {
			return nil, err
		}
		c.Completed = completed != 0
		completions = append(completions, c)
	}

	return completions, rows.Err()
}

func (s *Store) UpsertCompletion(ctx context.Context, c models.Completion) error {
	completed := 0
	if c.Completed {
		completed = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habit_completions (habit_id, date, completed, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(habit_id, date) DO UPDATE SET
			completed = excluded.completed,
			updated_at = excluded.updated_at`,
		c.HabitID, c.Date, completed, time.Now().UTC().Format(timestampFormat))

	return err
}
