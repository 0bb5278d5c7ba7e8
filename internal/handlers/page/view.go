package page

import (
	"net/http"
	"net/url"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/shared/constant"
	"todoapp/shared/timezone"
)

var views = []string{dto.ViewGrid, dto.ViewList}

// listParams is the filter and view of the list page a form was opened from.
type listParams struct {
	Filter string
	View   string
}

func listParamsFrom(values url.Values) listParams {
	return listParams{
		Filter: values.Get(constant.RequestParamFilter),
		View:   values.Get(constant.RequestParamView),
	}
}

// redirectURL leads back to the list, keeping only the parameters that were given.
func (p listParams) redirectURL() string {
	query := url.Values{}

	if p.Filter != "" {
		query.Set(constant.RequestParamFilter, p.Filter)
	}

	if p.View != "" {
		query.Set(constant.RequestParamView, p.View)
	}

	if len(query) == 0 {
		return pathTodos
	}

	return pathTodos + "?" + query.Encode()
}

type listPage struct {
	listParams

	Title   string
	Flash   string
	Filters []string
	Views   []string
	Counts  dto.Counts
	Todos   []dto.TodoResponse
}

// formValues echoes what the user typed, so a failed submission re-renders untouched.
type formValues struct {
	Title       string
	Description string
	DueDate     string
}

func formValuesFrom(todo dto.TodoResponse) formValues {
	values := formValues{
		Title:       todo.Title,
		Description: todo.Description,
	}

	if todo.DueDate != nil {
		values.DueDate = timezone.Format(*todo.DueDate, constant.DateTimeLocalFormat)
	}

	return values
}

type formPage struct {
	listParams

	Title  string
	Action string
	Submit string
	Form   formValues
	Errors map[string]string
}

type confirmDeletePage struct {
	listParams

	Title string
	Todo  dto.TodoResponse
}

type errorPage struct {
	Title   string
	Code    int
	Message string
}

func newErrorPage(code int) errorPage {
	page := errorPage{
		Title:   http.StatusText(code),
		Code:    code,
		Message: "Something went wrong. Please try again later.",
	}

	if code == http.StatusNotFound {
		page.Message = "The todo you are looking for does not exist."
	}

	return page
}
