package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "todoweb/internal/domain"

	"github.com/jackc/pgx/v5"
)

// MemTodoRepo is an in-process TodoRepo used when no Postgres DSN is
// configured (dev mode) and by the test suite. It returns pgx.ErrNoRows for
// missing rows so the service layer maps both implementations the same way.
type MemTodoRepo struct {
	mu     sync.Mutex
	nextID int64
	todos  map[int64]dom.Todo
}

func NewMemTodoRepo() *MemTodoRepo {
	return &MemTodoRepo{nextID: 1, todos: make(map[int64]dom.Todo)}
}

func (r *MemTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = now
	t.UpdatedAt = now
	r.todos[t.ID] = t
	return t, nil
}

func (r *MemTodoRepo) GetByID(_ context.Context, id int64) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *MemTodoRepo) List(_ context.Context) ([]dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]dom.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		list = append(list, t)
	}
	// Newest first; id breaks created_at ties.
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *MemTodoRepo) Update(_ context.Context, id int64, patch dom.Todo) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.Title = patch.Title
	t.Description = patch.Description
	t.DueDate = patch.DueDate
	t.Resolved = patch.Resolved
	t.UpdatedAt = time.Now().UTC()
	r.todos[id] = t
	return t, nil
}

func (r *MemTodoRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[id]; !ok {
		return false, nil
	}
	delete(r.todos, id)
	return true, nil
}

func (r *MemTodoRepo) ToggleResolved(_ context.Context, id int64) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.Resolved = !t.Resolved
	t.UpdatedAt = time.Now().UTC()
	r.todos[id] = t
	return t, nil
}
