package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitgrid/internal/models"
)

func (s *Store) FetchHabits(ctx context.Context) ([]models.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, is_positive, category, sort_order, created_at
		FROM habits
		ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		var category sql.NullString
		var order sql.NullInt64

		if err := rows.Scan(&h.ID, &h.Name, &h.IsPositive, &category, &order, &h.CreatedAt); err != nil {
			return nil, err
		}
		if category.Valid {
			h.Category = models.Some(category.String)
		}
		if order.Valid {
			h.Order = models.Some(int(order.Int64))
		}
		h.CreatedAt = h.CreatedAt.UTC()

		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) InsertHabit(ctx context.Context, n models.NewHabit) (models.Habit, error) {
	n, err := n.Normalize()
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:         uuid.New().String(),
		Name:       n.Name,
		IsPositive: n.IsPositive,
		Category:   n.Category,
		Order:      n.Order,
		// TIMESTAMPTZ keeps microseconds
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	var category sql.NullString
	if c, ok := habit.Category.Get(); ok {
		category = sql.NullString{String: c, Valid: true}
	}
	var order sql.NullInt64
	if o, ok := habit.Order.Get(); ok {
		order = sql.NullInt64{Int64: int64(o), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO habits (id, name, is_positive, category, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		habit.ID, habit.Name, habit.IsPositive, category, order, habit.CreatedAt)
	if err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}
