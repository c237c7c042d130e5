package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitgrid/internal/models"
)

type habitForm struct {
	Name       string
	IsPositive bool
	Category   string
	Order      string
}

func newHabitForm(hf *habitForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&hf.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return models.ErrEmptyHabitName
					}
					return nil
				}),
			huh.NewSelect[bool]().
				Title("Type").
				Options(
					huh.NewOption("Build (positive)", true),
					huh.NewOption("Break (negative)", false),
				).
				Value(&hf.IsPositive),
			huh.NewInput().
				Title("Category").
				Description("Optional, e.g. morning, evening, work").
				Value(&hf.Category),
			huh.NewInput().
				Title("Order").
				Description("Optional position within the category").
				Value(&hf.Order).
				Validate(validateOrder),
		),
	)
}

func validateOrder(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("order must be a whole number")
	}
	return nil
}

// request converts the form into an insert request.
func (hf *habitForm) request() models.NewHabit {
	n := models.NewHabit{
		Name:       hf.Name,
		IsPositive: hf.IsPositive,
	}
	if c := strings.TrimSpace(hf.Category); c != "" {
		n.Category = models.Some(c)
	}
	if o, err := strconv.Atoi(strings.TrimSpace(hf.Order)); err == nil {
		n.Order = models.Some(o)
	}
	return n
}
