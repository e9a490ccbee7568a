package repo

import (
	"context"
	"errors"
	"testing"

	dom "todoweb/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemRepoCreateAssignsIDAndTimestamps(t *testing.T) {
	r := NewMemTodoRepo()

	created, err := r.Create(context.Background(), dom.Todo{Title: "Test TODO"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())
	assert.False(t, created.Resolved)
}

func TestMemRepoListNewestFirst(t *testing.T) {
	r := NewMemTodoRepo()
	ctx := context.Background()
	for _, title := range []string{"First", "Second", "Third"} {
		_, err := r.Create(ctx, dom.Todo{Title: title})
		require.NoError(t, err)
	}

	list, err := r.List(ctx)
	require.NoError(t, err)

	var titles []string
	for _, todo := range list {
		titles = append(titles, todo.Title)
	}
	if diff := cmp.Diff([]string{"Third", "Second", "First"}, titles); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestMemRepoGetByIDUnknown(t *testing.T) {
	r := NewMemTodoRepo()

	_, err := r.GetByID(context.Background(), 9999)

	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestMemRepoUpdate(t *testing.T) {
	r := NewMemTodoRepo()
	ctx := context.Background()
	created, err := r.Create(ctx, dom.Todo{Title: "Before", Description: "old"})
	require.NoError(t, err)

	patch := created
	patch.Title = "After"
	patch.Resolved = true
	updated, err := r.Update(ctx, created.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.True(t, updated.Resolved)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, err = r.Update(ctx, 9999, patch)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestMemRepoDelete(t *testing.T) {
	r := NewMemTodoRepo()
	ctx := context.Background()
	created, err := r.Create(ctx, dom.Todo{Title: "Doomed"})
	require.NoError(t, err)

	deleted, err := r.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = r.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))

	deleted, err = r.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemRepoToggleResolved(t *testing.T) {
	r := NewMemTodoRepo()
	ctx := context.Background()
	created, err := r.Create(ctx, dom.Todo{Title: "Flip me"})
	require.NoError(t, err)

	toggled, err := r.ToggleResolved(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Resolved)

	toggled, err = r.ToggleResolved(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Resolved)

	_, err = r.ToggleResolved(ctx, 9999)
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}
