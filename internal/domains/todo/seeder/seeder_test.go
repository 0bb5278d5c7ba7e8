package seeder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todoapp/infras/database/databasetest"
	"todoapp/infras/otel/mocks"
	todoMocks "todoapp/internal/domains/todo/mocks"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/repository"
	"todoapp/internal/domains/todo/seeder"
	"todoapp/internal/domains/todo/service"
	"todoapp/shared/cache"
	"todoapp/shared/cache/cachetest"
	cacheMocks "todoapp/shared/cache/mocks"
	"todoapp/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExamples(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	todos := seeder.Examples(now)

	require.Len(t, todos, 12)

	titles := map[string]bool{}
	for _, todo := range todos {
		assert.NotEmpty(t, todo.Title)
		assert.LessOrEqual(t, len(todo.Title), model.TitleMaxLength)
		require.NotNil(t, todo.DueDate)

		titles[todo.Title] = true
	}

	assert.Len(t, titles, 12, "titles are unique")

	counts := dto.CountTodos(todos, now)
	assert.Equal(t, dto.Counts{Total: 12, Resolved: 5, Pending: 7, Overdue: 2}, counts)
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	_, conn := databasetest.New(t)
	otl := mocks.NewOtel()
	s := seeder.New(repository.New(conn, otl), cache.NewRedisCache(nil, otl), otl)
	ctx := context.Background()
	now := time.Now()

	summary, err := s.Run(ctx, false, now)
	require.NoError(t, err)
	assert.Equal(t, 12, summary.Created)
	assert.Equal(t, 12, summary.Counts.Total)
	assert.Equal(t, 5, summary.Counts.Resolved)
	assert.Equal(t, 7, summary.Counts.Pending)
	assert.Equal(t, 2, summary.Counts.Overdue)

	summary, err = s.Run(ctx, false, now)
	require.NoError(t, err)
	assert.Zero(t, summary.Created)
	assert.Equal(t, 12, summary.Counts.Total)

	summary, err = s.Run(ctx, true, now)
	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.Cleared)
	assert.Equal(t, 12, summary.Created)
	assert.Equal(t, 12, summary.Counts.Total)
}

func TestSeeder_RunClearDropsCachedTodos(t *testing.T) {
	cfg, conn := databasetest.New(t)
	otl := mocks.NewOtel()
	repo := repository.New(conn, otl)
	c := cachetest.NewMemory()
	svc := service.New(repo, cfg, c, otl)
	s := seeder.New(repo, c, otl)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.TodoRequest{Title: "Buy milk"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len(), "get fills the cache")

	_, err = s.Run(ctx, true, time.Now())
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
}

func TestSeeder_RunErrors(t *testing.T) {
	errDatabase := errors.New("database error")

	t.Run("clear fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := todoMocks.NewMockTodo(ctrl)
		repo.EXPECT().DeleteAll(gomock.Any()).Return(int64(0), errDatabase)

		_, err := seeder.New(repo, cacheMocks.NewMockCache(ctrl), mocks.NewOtel()).Run(context.Background(), true, time.Now())

		assert.ErrorIs(t, err, errDatabase)
	})

	t.Run("cache clear fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := todoMocks.NewMockTodo(ctrl)
		c := cacheMocks.NewMockCache(ctrl)

		gomock.InOrder(
			repo.EXPECT().DeleteAll(gomock.Any()).Return(int64(3), nil),
			c.EXPECT().Clear(gomock.Any(), "todo:*").Return(errDatabase),
		)

		summary, err := seeder.New(repo, c, mocks.NewOtel()).Run(context.Background(), true, time.Now())

		assert.ErrorIs(t, err, errDatabase)
		assert.Equal(t, int64(3), summary.Cleared)
	})

	t.Run("insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := todoMocks.NewMockTodo(ctrl)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Todo{}, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errDatabase)

		_, err := seeder.New(repo, cacheMocks.NewMockCache(ctrl), mocks.NewOtel()).Run(context.Background(), false, time.Now())

		assert.ErrorIs(t, err, errDatabase)
	})
}
