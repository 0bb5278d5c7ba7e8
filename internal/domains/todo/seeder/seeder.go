package seeder

import (
	"context"
	"fmt"
	"time"
	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/repository"
	"todoapp/shared"
	"todoapp/shared/cache"
	"todoapp/shared/constant"
	gDto "todoapp/shared/dto"

	"github.com/rs/zerolog/log"
)

type example struct {
	title       string
	description string
	due         time.Duration
	resolved    bool
}

const day = 24 * time.Hour

var examples = []example{
	{"Complete the TODO application", "Finish building the TODO app with all CRUD operations, filtering, and statistics", -day, false},
	{"Review project documentation", "Read through README.md and TESTING.md files", 2 * day, false},
	{"Set up development environment", "Install Go, fetch the modules, and configure the .env file", -3 * day, true},
	{"Learn sqlx", "Study named queries, struct scanning, and transactions", 7 * day, false},
	{"Push code to GitHub", "Upload the project to the GitHub repository", -5 * time.Hour, false},
	{"Write unit tests", "Create test cases for models, views, and forms", 5 * day, false},
	{"Design database schema", "Plan the database structure for the TODO application", -5 * day, true},
	{"Add a blue theme", "Update the UI with a blue color scheme", 0, true},
	{"Implement list and grid views", "Add toggle between list and grid view modes", 0, true},
	{"Add task statistics", "Display counts for total, resolved, pending, and overdue tasks", 0, true},
	{"Fix authentication issues", "Resolve GitHub push authentication problems", 2 * time.Hour, false},
	{"Create user documentation", "Write comprehensive README with setup instructions", day, false},
}

// Examples returns the example todos with due dates relative to now.
func Examples(now time.Time) []model.Todo {
	todos := make([]model.Todo, 0, len(examples))

	for _, ex := range examples {
		due := dto.StorageTime(now.Add(ex.due))

		todos = append(todos, model.Todo{
			Title:       ex.title,
			Description: ex.description,
			DueDate:     &due,
			IsResolved:  ex.resolved,
			CreatedAt:   dto.StorageTime(now),
		})
	}

	return todos
}

type Summary struct {
	Cleared int64
	Created int
	Counts  dto.Counts
}

type Seeder struct {
	repo  repository.Todo
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Todo, cache cache.Cache, otel otel.Otel) *Seeder {
	return &Seeder{repo: repo, cache: cache, otel: otel}
}

func byTitle(title string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldTitle, Value: title, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

// Run inserts every example whose title is not stored yet. With clearFirst set the table and the
// cached rows are emptied first.
func (s *Seeder) Run(ctx context.Context, clearFirst bool, now time.Time) (summary Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if clearFirst {
		summary.Cleared, err = s.repo.DeleteAll(ctx)
		if err != nil {
			return summary, fmt.Errorf("failed to clear todos: %w", err)
		}

		if err = s.cache.Clear(ctx, shared.BuildCacheKey(model.CacheKeyPrefix, "*")); err != nil {
			return summary, fmt.Errorf("failed to clear cached todos: %w", err)
		}

		log.Warn().Int64("deleted", summary.Cleared).Msg("All existing tasks have been deleted")
	}

	for _, todo := range Examples(now) {
		existing, err := s.repo.Get(ctx, byTitle(todo.Title))
		if err != nil {
			return summary, fmt.Errorf("failed to look up example %q: %w", todo.Title, err)
		}

		if existing.Exists() {
			continue
		}

		if _, err = s.repo.Insert(ctx, todo); err != nil {
			return summary, fmt.Errorf("failed to create example %q: %w", todo.Title, err)
		}

		summary.Created++
	}

	all, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return summary, fmt.Errorf("failed to summarize todos: %w", err)
	}

	summary.Counts = dto.CountTodos(all, now)

	return summary, nil
}
