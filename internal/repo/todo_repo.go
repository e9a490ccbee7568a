package repo

import (
	"context"

	dom "todoweb/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id int64) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	Update(ctx context.Context, id int64, patch dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ToggleResolved(ctx context.Context, id int64) (dom.Todo, error)
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, description, due_date)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, resolved, due_date, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, t.Title, t.Description, t.DueDate).Scan(
		&out.ID, &out.Title, &out.Description, &out.Resolved, &out.DueDate,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	query := `
		SELECT id, title, description, resolved, due_date, created_at, updated_at
		FROM todos WHERE id = $1`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Resolved, &t.DueDate,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	// Newest first; id breaks created_at ties.
	query := `
		SELECT id, title, description, resolved, due_date, created_at, updated_at
		FROM todos ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Resolved, &t.DueDate,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Update(ctx context.Context, id int64, patch dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos SET title = $2, description = $3, due_date = $4, resolved = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, resolved, due_date, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, patch.Title, patch.Description, patch.DueDate, patch.Resolved).Scan(
		&t.ID, &t.Title, &t.Description, &t.Resolved, &t.DueDate,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Delete removes the row permanently. Returns false if no row matched.
func (r *PGTodoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGTodoRepo) ToggleResolved(ctx context.Context, id int64) (dom.Todo, error) {
	query := `
		UPDATE todos SET resolved = NOT resolved, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, resolved, due_date, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Resolved, &t.DueDate,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
