// One-off: PG_DSN=... go run scripts/seed.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

func main() {
	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "PG_DSN is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		panic(err)
	}
	defer conn.Close(ctx)

	samples := []struct {
		title, description string
		days               int
	}{
		{"Buy groceries", "Milk, eggs, bread", 1},
		{"Write monthly report", "", 3},
		{"Call the dentist", "Reschedule the appointment", 0},
	}
	for _, s := range samples {
		var due *time.Time
		if s.days > 0 {
			d := time.Now().UTC().AddDate(0, 0, s.days)
			due = &d
		}
		if _, err := conn.Exec(ctx,
			`INSERT INTO todos (title, description, due_date) VALUES ($1, $2, $3)`,
			s.title, s.description, due,
		); err != nil {
			panic(err)
		}
		fmt.Printf("seeded %q\n", s.title)
	}
}
