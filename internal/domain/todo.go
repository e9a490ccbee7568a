package domain

import "time"

// Todo is the domain entity. It does not depend on Gin, Postgres or Redis.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Resolved    bool
	DueDate     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// String returns the display representation of a todo: its title.
func (t Todo) String() string { return t.Title }
