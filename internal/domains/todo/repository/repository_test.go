package repository_test

import (
	"context"
	"testing"
	"time"

	"todoapp/infras/database/databasetest"
	"todoapp/infras/otel/mocks"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/repository"
	"todoapp/shared"
	gDto "todoapp/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) repository.Todo {
	t.Helper()

	_, conn := databasetest.New(t)

	return repository.New(conn, mocks.NewOtel())
}

func byID(id int64) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func TestTodoRepository_InsertAndGet(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	due := time.Date(2025, 1, 2, 3, 4, 5, 678000, time.UTC)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	id, err := repo.Insert(ctx, model.Todo{
		Title:       "Buy milk",
		Description: "2 liters",
		DueDate:     &due,
		CreatedAt:   created,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	todo, err := repo.Get(ctx, byID(id))
	require.NoError(t, err)

	todo = todo.Normalize()
	assert.Equal(t, id, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, "2 liters", todo.Description)
	require.NotNil(t, todo.DueDate)
	assert.True(t, due.Equal(*todo.DueDate), "due date %v", todo.DueDate)
	assert.False(t, todo.IsResolved)
	assert.True(t, created.Equal(todo.CreatedAt), "created at %v", todo.CreatedAt)
}

func TestTodoRepository_InsertWithoutDueDate(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, model.Todo{Title: "No deadline", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	todo, err := repo.Get(ctx, byID(id))
	require.NoError(t, err)
	assert.Nil(t, todo.DueDate)
}

func TestTodoRepository_GetMissing(t *testing.T) {
	repo := newRepository(t)

	todo, err := repo.Get(context.Background(), byID(404))

	require.NoError(t, err)
	assert.False(t, todo.Exists())
}

func TestTodoRepository_GetRequiresFilter(t *testing.T) {
	repo := newRepository(t)

	_, err := repo.Get(context.Background(), gDto.FilterGroup{})

	assert.Error(t, err)
}

func TestTodoRepository_IDsAreNeverReused(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, model.Todo{Title: "first", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	affected, err := repo.Delete(ctx, byID(first))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	second, err := repo.Insert(ctx, model.Todo{Title: "second", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestTodoRepository_GetAllFilteredAndOrdered(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	ids := make([]int64, 0, 3)
	for i, title := range []string{"a", "b", "c"} {
		id, err := repo.Insert(ctx, model.Todo{Title: title, IsResolved: i == 1, CreatedAt: time.Now().UTC()})
		require.NoError(t, err)

		ids = append(ids, id)
	}

	all, err := repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{ids[2], ids[1], ids[0]}, []int64{all[0].ID, all[1].ID, all[2].ID})

	pending, err := repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{gDto.Filter{Field: model.FieldIsResolved, Value: false, Operator: gDto.FilterOperatorEq, Table: model.TableName}},
	})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "c", pending[0].Title)
	assert.Equal(t, "a", pending[1].Title)

	asc, err := repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldTitle, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, "a", asc[0].Title)
}

func TestTodoRepository_Exist(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, model.Todo{Title: "x", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	exist, err := repo.Exist(ctx, byID(id))
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = repo.Exist(ctx, byID(id+1))
	require.NoError(t, err)
	assert.False(t, exist)

	_, err = repo.Exist(ctx, gDto.FilterGroup{})
	assert.Error(t, err)
}

func TestTodoRepository_Update(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	due := time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)
	id, err := repo.Insert(ctx, model.Todo{Title: "old", Description: "desc", DueDate: &due, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	affected, err := repo.Update(ctx, map[string]any{
		model.FieldTitle:       "new",
		model.FieldDescription: "",
		model.FieldDueDate:     (*time.Time)(nil),
	}, byID(id))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	todo, err := repo.Get(ctx, byID(id))
	require.NoError(t, err)
	assert.Equal(t, "new", todo.Title)
	assert.Empty(t, todo.Description)
	assert.Nil(t, todo.DueDate)

	affected, err = repo.Update(ctx, map[string]any{model.FieldTitle: "ghost"}, byID(id+100))
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestTodoRepository_ToggleResolved(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, model.Todo{Title: "toggle me", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	affected, err := repo.ToggleResolved(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	todo, err := repo.Get(ctx, byID(id))
	require.NoError(t, err)
	assert.True(t, todo.IsResolved)

	_, err = repo.ToggleResolved(ctx, id)
	require.NoError(t, err)

	todo, err = repo.Get(ctx, byID(id))
	require.NoError(t, err)
	assert.False(t, todo.IsResolved)

	affected, err = repo.ToggleResolved(ctx, id+1)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestTodoRepository_DeleteAll(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b"} {
		_, err := repo.Insert(ctx, model.Todo{Title: title, CreatedAt: time.Now().UTC()})
		require.NoError(t, err)
	}

	affected, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	remaining, err := repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
