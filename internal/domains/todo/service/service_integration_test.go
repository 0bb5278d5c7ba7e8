package service_test

import (
	"context"
	"testing"
	"time"

	"todoapp/infras/database/databasetest"
	"todoapp/infras/otel/mocks"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/repository"
	"todoapp/internal/domains/todo/service"
	"todoapp/shared/cache"
	"todoapp/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreService(t *testing.T) service.Todo {
	t.Helper()

	cfg, conn := databasetest.New(t)
	otl := mocks.NewOtel()

	return service.New(repository.New(conn, otl), cfg, cache.NewRedisCache(nil, otl), otl)
}

func ids(todos []dto.TodoResponse) []int64 {
	res := make([]int64, 0, len(todos))
	for _, todo := range todos {
		res = append(res, todo.ID)
	}

	return res
}

func TestStore_CreateThenGet(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	due := time.Now().Add(48 * time.Hour)

	created, err := svc.Create(ctx, dto.TodoRequest{Title: "Write report", Description: "quarterly", DueDate: &due})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.False(t, created.IsResolved)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "quarterly", got.Description)
	require.NotNil(t, got.DueDate)
	assert.True(t, created.DueDate.Equal(*got.DueDate))
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	assert.False(t, got.IsResolved)
	assert.False(t, got.IsOverdue)
}

func TestStore_ToggleTwiceRestores(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.TodoRequest{Title: "Toggle"})
	require.NoError(t, err)

	toggled, err := svc.ToggleResolved(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsResolved)

	toggled, err = svc.ToggleResolved(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsResolved)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsResolved)
}

func TestStore_DeleteThenGet(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.TodoRequest{Title: "Delete me"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, failure.IsNotFound(err))

	err = svc.Delete(ctx, created.ID)
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.ToggleResolved(ctx, created.ID)
	assert.True(t, failure.IsNotFound(err))

	_, err = svc.Update(ctx, created.ID, dto.TodoRequest{Title: "ghost"})
	assert.True(t, failure.IsNotFound(err))
}

func TestStore_UpdateReplacesEditableFields(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	due := time.Now().Add(time.Hour)

	created, err := svc.Create(ctx, dto.TodoRequest{Title: "Draft", Description: "notes", DueDate: &due})
	require.NoError(t, err)

	_, err = svc.ToggleResolved(ctx, created.ID)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.TodoRequest{Title: "Final"})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Empty(t, got.Description)
	assert.Nil(t, got.DueDate)
	assert.True(t, got.IsResolved)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	_, err = svc.Update(ctx, created.ID, dto.TodoRequest{Title: " "})
	assert.True(t, failure.IsBadRequest(err))

	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
}

func TestStore_ResolvedAndPendingPartitionAll(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	for i, title := range []string{"one", "two", "three", "four", "five"} {
		created, err := svc.Create(ctx, dto.TodoRequest{Title: title})
		require.NoError(t, err)

		if i%2 == 0 {
			_, err = svc.ToggleResolved(ctx, created.ID)
			require.NoError(t, err)
		}
	}

	all, err := svc.List(ctx, dto.ListTodosRequest{Filter: dto.FilterAll})
	require.NoError(t, err)

	resolved, err := svc.List(ctx, dto.ListTodosRequest{Filter: dto.FilterResolved})
	require.NoError(t, err)

	pending, err := svc.List(ctx, dto.ListTodosRequest{Filter: dto.FilterPending})
	require.NoError(t, err)

	assert.Len(t, resolved.Todos, 3)
	assert.Len(t, pending.Todos, 2)
	assert.ElementsMatch(t, ids(all.Todos), append(ids(resolved.Todos), ids(pending.Todos)...))

	for _, todo := range resolved.Todos {
		assert.NotContains(t, ids(pending.Todos), todo.ID)
	}

	for _, res := range []dto.ListTodosResponse{all, resolved, pending} {
		assert.Equal(t, 5, res.Counts.Total)
		assert.Equal(t, res.Counts.Total, res.Counts.Resolved+res.Counts.Pending)
	}
}

func TestStore_ListIsNewestFirst(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	var created []int64

	for _, title := range []string{"a", "b", "c"} {
		res, err := svc.Create(ctx, dto.TodoRequest{Title: title})
		require.NoError(t, err)

		created = append(created, res.ID)
	}

	first, err := svc.List(ctx, dto.ListTodosRequest{})
	require.NoError(t, err)

	second, err := svc.List(ctx, dto.ListTodosRequest{})
	require.NoError(t, err)

	assert.Equal(t, []int64{created[2], created[1], created[0]}, ids(first.Todos))
	assert.Equal(t, ids(first.Todos), ids(second.Todos))
	assert.Equal(t, dto.FilterAll, first.Filter)
	assert.Equal(t, dto.ViewGrid, first.View)
}

func TestStore_BuyMilkDueYesterday(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1)

	milk, err := svc.Create(ctx, dto.TodoRequest{Title: "Buy milk", DueDate: &yesterday})
	require.NoError(t, err)
	assert.True(t, milk.IsOverdue)

	future := time.Now().AddDate(0, 0, 1)
	_, err = svc.Create(ctx, dto.TodoRequest{Title: "Plan trip", DueDate: &future})
	require.NoError(t, err)

	all, err := svc.List(ctx, dto.ListTodosRequest{Filter: dto.FilterAll})
	require.NoError(t, err)
	assert.Contains(t, ids(all.Todos), milk.ID)

	overdue, err := svc.List(ctx, dto.ListTodosRequest{Filter: dto.FilterOverdue})
	require.NoError(t, err)
	assert.Equal(t, []int64{milk.ID}, ids(overdue.Todos))
	assert.Equal(t, 1, overdue.Counts.Overdue)

	resolved, err := svc.List(ctx, dto.ListTodosRequest{Filter: dto.FilterResolved})
	require.NoError(t, err)
	assert.NotContains(t, ids(resolved.Todos), milk.ID)

	// resolving takes it out of the overdue list
	_, err = svc.ToggleResolved(ctx, milk.ID)
	require.NoError(t, err)

	overdue, err = svc.List(ctx, dto.ListTodosRequest{Filter: dto.FilterOverdue})
	require.NoError(t, err)
	assert.Empty(t, overdue.Todos)
	assert.Zero(t, overdue.Counts.Overdue)
}

func TestStore_CreateWithEmptyTitle(t *testing.T) {
	svc := newStoreService(t)
	ctx := context.Background()

	before, err := svc.List(ctx, dto.ListTodosRequest{})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.TodoRequest{Title: ""})
	require.Error(t, err)
	assert.True(t, failure.IsBadRequest(err))
	assert.Contains(t, failure.GetFields(err), "title")

	after, err := svc.List(ctx, dto.ListTodosRequest{})
	require.NoError(t, err)
	assert.Equal(t, before.Counts.Total, after.Counts.Total)
	assert.Empty(t, after.Todos)
}
