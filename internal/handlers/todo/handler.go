package todo

import (
	"net/http"
	"strconv"
	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/service"
	"todoapp/shared/constant"
	"todoapp/shared/failure"
	"todoapp/shared/validator"
	"todoapp/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const errMessageNotFound = "todo not found"

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Put("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
		routerGroup.Post("/{id}/toggle", handler.ToggleTodo)
	})
}

// PathID parses the {id} route parameter. Anything but a positive integer is reported as not found.
func PathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.NotFound(errMessageNotFound) // nolint:wrapcheck
	}

	return id, nil
}

// ListTodos lists todo items.
// @Summary List todo items
// @Description List todo items newest first, with counts over the whole table.
// @Tags Todo
// @Produce json
// @Param filter query string false "all, pending, resolved or overdue" default(all)
// @Param view query string false "grid or list" default(grid)
// @Success 200 {object} response.Data[dto.ListTodosResponse]
// @Failure 500 {object} response.Error
// @Router /v1/todos [get]
func (handler *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListTodos")
	defer scope.End()

	query := r.URL.Query()

	todos, err := handler.service.List(ctx, dto.ListTodosRequest{
		Filter: query.Get(constant.RequestParamFilter),
		View:   query.Get(constant.RequestParamView),
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list todos")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todos)
}

// CreateTodo creates a todo item.
// @Summary Create a todo item
// @Description Create a pending todo item. The title is required.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.TodoRequest true "Todo"
// @Success 201 {object} response.Data[dto.TodoResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos [post]
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.TodoRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo created")

	response.WithJSON(w, http.StatusCreated, todo)
}

// GetTodoByID retrieves a todo item.
// @Summary Get a todo item
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} response.Data[dto.TodoResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{id} [get]
func (handler *Handler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	id, err := PathID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// UpdateTodo replaces the editable fields of a todo item.
// @Summary Update a todo item
// @Description Replace title, description and due date. Omitted optional fields are cleared.
// @Tags Todo
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body dto.TodoRequest true "Todo"
// @Success 200 {object} response.Data[dto.TodoResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{id} [put]
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id, err := PathID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.TodoRequest{}

	// A missing todo is reported before a malformed body.
	if err = validator.Decode(r.Body, &req); err != nil {
		if _, getErr := handler.service.Get(ctx, id); getErr != nil {
			err = getErr
		}

		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo updated")

	response.WithJSON(w, http.StatusOK, todo)
}

// DeleteTodo deletes a todo item.
// @Summary Delete a todo item
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{id} [delete]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id, err := PathID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted")

	response.WithMessage(w, http.StatusOK, "Todo deleted successfully")
}

// ToggleTodo flips the resolved flag of a todo item.
// @Summary Toggle resolved
// @Tags Todo
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} response.Data[dto.TodoResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/todos/{id}/toggle [post]
func (handler *Handler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleTodo")
	defer scope.End()

	id, err := PathID(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	todo, err := handler.service.ToggleResolved(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to toggle todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}
