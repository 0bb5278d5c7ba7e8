package page

import (
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/service"
	"todoapp/internal/handlers/todo"
	"todoapp/shared/constant"
	"todoapp/shared/failure"
	"todoapp/shared/logger"
	"todoapp/shared/timezone"
	"todoapp/shared/validator"
	"todoapp/transport/http/response"
	"todoapp/web"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	pathTodos = "/todos"

	errMessageInvalidDueDate = "Enter a valid date and time."
)

// dueDateLayouts are the shapes a datetime-local input submits, with and without seconds.
var dueDateLayouts = []string{constant.DateTimeLocalFormat, constant.DateTimeLocalFormat + ":05"}

// Handler serves the HTML pages of the todo list.
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
	router.Get("/", handler.Home)

	router.Route(pathTodos, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.List)
		routerGroup.Get("/new", handler.NewForm)
		routerGroup.Post("/new", handler.Create)
		routerGroup.Get("/{id}/edit", handler.EditForm)
		routerGroup.Post("/{id}/edit", handler.Update)
		routerGroup.Get("/{id}/delete", handler.ConfirmDelete)
		routerGroup.Post("/{id}/delete", handler.Delete)
		routerGroup.Post("/{id}/toggle", handler.Toggle)
	})
}

func (handler *Handler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, pathTodos, http.StatusSeeOther)
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".page.List")
	defer scope.End()

	params := listParamsFrom(r.URL.Query())

	todos, err := handler.service.List(ctx, dto.ListTodosRequest{Filter: params.Filter, View: params.View})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list todos")

		handler.renderError(w, err)

		return
	}

	handler.render(w, http.StatusOK, web.PageList, listPage{
		listParams: listParams{Filter: todos.Filter, View: todos.View},
		Title:      "Todos",
		Flash:      popFlash(w, r),
		Filters:    dto.Filters,
		Views:      views,
		Counts:     todos.Counts,
		Todos:      todos.Todos,
	})
}

func (handler *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	handler.render(w, http.StatusOK, web.PageForm, newTodoForm(listParamsFrom(r.URL.Query())))
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".page.Create")
	defer scope.End()

	values, params, err := readForm(r)
	if err != nil {
		handler.renderError(w, err)

		return
	}

	page := newTodoForm(params)
	page.Form = values

	req, fields := values.request()
	if len(fields) > 0 {
		page.Errors = fields
		handler.render(w, http.StatusOK, web.PageForm, page)

		return
	}

	if _, err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)

		if invalid := failure.GetFields(err); invalid != nil {
			page.Errors = invalid
			handler.render(w, http.StatusOK, web.PageForm, page)

			return
		}

		log.Error().Err(err).Msg("failed to create todo")
		handler.renderError(w, err)

		return
	}

	setFlash(w, flashCreated)
	http.Redirect(w, r, params.redirectURL(), http.StatusSeeOther)
}

func (handler *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".page.EditForm")
	defer scope.End()

	id, err := todo.PathID(r)
	if err != nil {
		handler.renderError(w, err)

		return
	}

	found, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		handler.renderError(w, err)

		return
	}

	page := editTodoForm(id, listParamsFrom(r.URL.Query()))
	page.Form = formValuesFrom(found)

	handler.render(w, http.StatusOK, web.PageForm, page)
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".page.Update")
	defer scope.End()

	id, err := todo.PathID(r)
	if err != nil {
		handler.renderError(w, err)

		return
	}

	values, params, err := readForm(r)
	if err != nil {
		handler.renderError(w, err)

		return
	}

	page := editTodoForm(id, params)
	page.Form = values

	req, fields := values.request()
	if len(fields) > 0 {
		// a missing todo is still a 404, even when the form is invalid
		if _, err = handler.service.Get(ctx, id); err != nil {
			handler.renderError(w, err)

			return
		}

		page.Errors = fields
		handler.render(w, http.StatusOK, web.PageForm, page)

		return
	}

	if _, err = handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)

		if invalid := failure.GetFields(err); invalid != nil {
			page.Errors = invalid
			handler.render(w, http.StatusOK, web.PageForm, page)

			return
		}

		log.Error().Err(err).Int64("id", id).Msg("failed to update todo")
		handler.renderError(w, err)

		return
	}

	setFlash(w, flashUpdated)
	http.Redirect(w, r, params.redirectURL(), http.StatusSeeOther)
}

func (handler *Handler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".page.ConfirmDelete")
	defer scope.End()

	id, err := todo.PathID(r)
	if err != nil {
		handler.renderError(w, err)

		return
	}

	found, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		handler.renderError(w, err)

		return
	}

	handler.render(w, http.StatusOK, web.PageConfirmDelete, confirmDeletePage{
		listParams: listParamsFrom(r.URL.Query()),
		Title:      "Delete todo",
		Todo:       found,
	})
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".page.Delete")
	defer scope.End()

	id, err := todo.PathID(r)
	if err != nil {
		handler.renderError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete todo")

		handler.renderError(w, err)

		return
	}

	setFlash(w, flashDeleted)
	http.Redirect(w, r, listParamsFrom(postForm(r)).redirectURL(), http.StatusSeeOther)
}

func (handler *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".page.Toggle")
	defer scope.End()

	id, err := todo.PathID(r)
	if err != nil {
		handler.renderError(w, err)

		return
	}

	toggled, err := handler.service.ToggleResolved(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to toggle todo")

		handler.renderError(w, err)

		return
	}

	if toggled.IsResolved {
		setFlash(w, flashResolved)
	} else {
		setFlash(w, flashUnresolved)
	}

	http.Redirect(w, r, listParamsFrom(postForm(r)).redirectURL(), http.StatusSeeOther)
}

func newTodoForm(params listParams) formPage {
	return formPage{
		listParams: params,
		Title:      "New todo",
		Action:     pathTodos + "/new",
		Submit:     "Create",
		Errors:     map[string]string{},
	}
}

func editTodoForm(id int64, params listParams) formPage {
	return formPage{
		listParams: params,
		Title:      "Edit todo",
		Action:     pathTodos + "/" + strconv.FormatInt(id, 10) + "/edit",
		Submit:     "Save",
		Errors:     map[string]string{},
	}
}

func (handler *Handler) render(w http.ResponseWriter, code int, page string, data any) {
	body, err := web.Render(page, data)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	response.WithHTML(w, code, body)
}

func (handler *Handler) renderError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	handler.render(w, code, web.PageError, newErrorPage(code))
}

// postForm returns the submitted form fields. A body that cannot be parsed yields none.
func postForm(r *http.Request) url.Values {
	if err := r.ParseForm(); err != nil {
		return nil
	}

	return r.PostForm
}

func readForm(r *http.Request) (formValues, listParams, error) {
	if err := r.ParseForm(); err != nil {
		return formValues{}, listParams{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	values := formValues{
		Title:       r.PostForm.Get(model.FieldTitle),
		Description: r.PostForm.Get(model.FieldDescription),
		DueDate:     r.PostForm.Get(model.FieldDueDate),
	}

	return values, listParamsFrom(r.PostForm), nil
}

// request converts the submitted values. A due date that does not parse is reported next to any
// other invalid field instead of reaching the service.
func (v formValues) request() (dto.TodoRequest, map[string]string) {
	req := dto.TodoRequest{
		Title:       v.Title,
		Description: v.Description,
	}

	due := strings.TrimSpace(v.DueDate)
	if due == "" {
		return req, nil
	}

	dueDate, err := parseDueDate(due)
	if err == nil {
		req.DueDate = &dueDate

		return req, nil
	}

	fields := map[string]string{model.FieldDueDate: errMessageInvalidDueDate}
	maps.Copy(fields, failure.GetFields(validator.ValidateStruct(&req)))

	return req, fields
}

func parseDueDate(value string) (time.Time, error) {
	var err error

	for _, layout := range dueDateLayouts {
		var parsed time.Time

		if parsed, err = timezone.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, err
}
