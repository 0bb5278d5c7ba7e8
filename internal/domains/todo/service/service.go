package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"
	"todoapp/config"
	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/repository"
	"todoapp/shared"
	"todoapp/shared/cache"
	"todoapp/shared/constant"
	gDto "todoapp/shared/dto"
	"todoapp/shared/failure"
	"todoapp/shared/timezone"
	"todoapp/shared/validator"

	"github.com/rs/zerolog/log"
)

const errMessageNotFound = "todo not found"

type Todo interface {
	List(ctx context.Context, req dto.ListTodosRequest) (dto.ListTodosResponse, error)
	Create(ctx context.Context, req dto.TodoRequest) (dto.TodoResponse, error)
	Get(ctx context.Context, id int64) (dto.TodoResponse, error)
	Update(ctx context.Context, id int64, req dto.TodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int64) error
	ToggleResolved(ctx context.Context, id int64) (dto.TodoResponse, error)
}

type serviceImpl struct {
	repo  repository.Todo
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Todo, cfg *config.Config, cache cache.Cache, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterByID(id int64) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// matchesFilter reports whether todo belongs to the named list. Overdue is evaluated per row against now.
func matchesFilter(todo model.Todo, filter string, now time.Time) bool {
	switch filter {
	case dto.FilterPending:
		return !todo.IsResolved
	case dto.FilterResolved:
		return todo.IsResolved
	case dto.FilterOverdue:
		return todo.IsOverdue(now)
	default:
		return true
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListTodosRequest) (res dto.ListTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Filter = dto.NormalizeFilter(req.Filter)
	res.View = dto.NormalizeView(req.View)
	scope.SetAttribute("todo.filter", res.Filter)

	all, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	now := timezone.Now()
	res.Counts = dto.CountTodos(all, now)

	todos := make([]model.Todo, 0, len(all))

	for _, todo := range all {
		if matchesFilter(todo, res.Filter, now) {
			todos = append(todos, todo)
		}
	}

	res.FromModels(todos, now)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.TodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()
	todo := req.ToModel(now)

	todo.ID, err = s.repo.Insert(ctx, todo)
	if err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	res.FromModel(todo, now)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(todo, timezone.Now())

	return res, nil
}

// get reads a todo through the cache. Cache failures fall back to the database.
func (s *serviceImpl) get(ctx context.Context, id int64) (model.Todo, error) {
	var todo model.Todo

	cacheKey := shared.BuildCacheKeyWithID(model.CacheKeyPrefix, id)

	err := s.cache.Get(ctx, cacheKey, &todo)
	if err == nil && todo.Exists() {
		return todo, nil
	}

	if err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to read todo from cache")
	}

	todo, err = s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo")

		return todo, fmt.Errorf("failed to get todo: %w", err)
	}

	if !todo.Exists() {
		return todo, failure.NotFound(errMessageNotFound) // nolint:wrapcheck
	}

	todo = todo.Normalize()

	if err = s.cache.Save(ctx, cacheKey, todo, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to save todo to cache")
	}

	return todo, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	cacheKey := shared.BuildCacheKeyWithID(model.CacheKeyPrefix, id)

	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to invalidate todo cache")
	}
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.TodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := filterByID(id)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check todo")

		return res, fmt.Errorf("failed to check todo: %w", err)
	}

	if !exist {
		return res, failure.NotFound(errMessageNotFound) // nolint:wrapcheck
	}

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	affected, err := s.repo.Update(ctx, req.ToUpdateFields(), filter)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound(errMessageNotFound) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	todo, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(todo, timezone.Now())

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(errMessageNotFound) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ToggleResolved(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleResolved")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.ToggleResolved(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to toggle todo")

		return res, fmt.Errorf("failed to toggle todo: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound(errMessageNotFound) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	todo, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(todo, timezone.Now())

	return res, nil
}
