package dto

import (
	"fmt"
	"strings"
	"time"
)

// ParseDueDate parses a due_date form value as either date-only ("2006-01-02"),
// the datetime-local input format, or RFC3339. Date-only is stored as start of
// that day in UTC. Empty input yields nil.
func ParseDueDate(raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	layouts := []string{
		"2006-01-02",       // date only
		"2006-01-02T15:04", // <input type="datetime-local">
		"2006-01-02T15:04:05",
		time.RFC3339, // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano,
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			// If it was date-only (no time component), use start of day UTC
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("due_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// CreateTodoForm carries the create form fields. Title is required; the rest
// default to the zero value.
type CreateTodoForm struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"max=2000"`
	DueDate     string `form:"due_date"` // optional: "2026-02-19" or RFC3339
}

// UpdateTodoForm carries the update form fields. A missing resolved checkbox
// binds to false, which is exactly the unchecked semantics we want.
type UpdateTodoForm struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"max=2000"`
	Resolved    bool   `form:"resolved"`
}
