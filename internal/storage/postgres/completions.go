package postgres

import (
	"context"
	"time"

	"github.com/julianstephens/habitgrid/internal/calendar"
	"github.com/julianstephens/habitgrid/internal/models"
)

func (s *Store) FetchCompletions(ctx context.Context) ([]models.Completion, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT habit_id, to_char(date, 'YYYY-MM-DD'), completed FROM habit_completions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completions := []models.Completion{}
	for rows.Next() {
		var c models.Completion
		if err := rows.Scan(&c.HabitID, &c.Date, &c.Completed); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}

	return completions, rows.Err()
}

func (s *Store) UpsertCompletion(ctx context.Context, c models.Completion) error {
	// DATE would otherwise accept other layouts and silently normalize them
	if _, err := calendar.ParseStorageDate(c.Date, time.UTC); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habit_completions (habit_id, date, completed, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (habit_id, date) DO UPDATE SET
			completed = EXCLUDED.completed,
			updated_at = EXCLUDED.updated_at`,
		c.HabitID, c.Date, c.Completed)

	return err
}
