package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

// eventAnswers collects wizard input as strings before conversion.
type eventAnswers struct {
	Name      string
	Date      string
	Attendees string
	Budget    string
	EventType string
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("expected a positive whole number")
	}
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// eventForm builds the interactive form used when event flags are omitted.
// Already-supplied values pre-fill their fields.
func eventForm(a *eventAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Event name").
				Placeholder("Summer Gala").
				Value(&a.Name).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("Event date (YYYY-MM-DD)").
				Placeholder("2026-06-15").
				Value(&a.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Expected attendees").
				Placeholder("120").
				Value(&a.Attendees).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Budget range").
				Placeholder("$10,000-$15,000").
				Value(&a.Budget).
				Validate(validateNonEmpty),
			huh.NewInput().
				Title("Event type").
				Placeholder("fundraiser").
				Value(&a.EventType).
				Validate(validateNonEmpty),
		),
	).WithShowHelp(false)
}
