package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"todoapp/infras/database"
	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model"
	gDto "todoapp/shared/dto"
	gRepo "todoapp/shared/repository"
)

type Todo interface {
	Insert(ctx context.Context, todo model.Todo) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Todo, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Todo, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	ToggleResolved(ctx context.Context, id int64) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
}

func New(db *database.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// ToggleResolved flips is_resolved in a single statement and returns the affected row count.
func (r *repositoryImpl) ToggleResolved(ctx context.Context, id int64) (int64, error) {
	query := fmt.Sprintf("UPDATE %s SET %s = NOT %s WHERE %s = :%s",
		model.TableName, model.FieldIsResolved, model.FieldIsResolved, model.FieldID, model.FieldID)

	return r.Exec(ctx, query, map[string]any{model.FieldID: id})
}
