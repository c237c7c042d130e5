package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitgrid/internal/models"
)

func (s *Store) FetchHabits(ctx context.Context) ([]models.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, is_positive, category, sort_order, created_at
		FROM habits
		ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		var isPositive int
		var category sql.NullString
		var order sql.NullInt64
		var createdAt string

		if err := rows.Scan(&h.ID, &h.Name, &isPositive, &category, &order, &createdAt); err != nil {
			return nil, err
		}

		h.IsPositive = isPositive != 0
		if category.Valid {
			h.Category = models.Some(category.String)
		}
		if order.Valid {
			h.Order = models.Some(int(order.Int64))
		}
		h.CreatedAt, err = time.Parse(timestampFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
		}

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
		CreatedAt:  time.Now().UTC(),
	}

	var category sql.NullString
	if c, ok := habit.Category.Get(); ok {
		category = sql.NullString{String: c, Valid: true}
	}
	var order sql.NullInt64
	if o, ok := habit.Order.Get(); ok {
		order = sql.NullInt64{Int64: int64(o), Valid: true}
	}
	isPositive := 0
	if habit.IsPositive {
		isPositive = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO habits (id, name, is_positive, category, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, isPositive, category, order, habit.CreatedAt.Format(timestampFormat))
	if err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}
