package dto

import (
	"strings"
	"time"
	"todoapp/internal/domains/todo/model"
)

const (
	FilterAll      = "all"
	FilterPending  = "pending"
	FilterResolved = "resolved"
	FilterOverdue  = "overdue"

	ViewGrid = "grid"
	ViewList = "list"
)

var Filters = []string{FilterAll, FilterPending, FilterResolved, FilterOverdue}

// NormalizeFilter maps an empty or unknown filter to FilterAll.
func NormalizeFilter(filter string) string {
	switch filter {
	case FilterPending, FilterResolved, FilterOverdue:
		return filter
	default:
		return FilterAll
	}
}

// NormalizeView defaults an empty view to the grid layout. Other values pass through.
func NormalizeView(view string) string {
	if view == "" {
		return ViewGrid
	}

	return view
}

// StorageTime is how times are persisted: UTC with microsecond precision, which every driver keeps.
func StorageTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

type ListTodosRequest struct {
	Filter string `json:"filter"`
	View   string `json:"view"`
}

type TodoRequest struct {
	Title       string     `form:"title" json:"title" validate:"notblank,max=200"`
	Description string     `form:"description" json:"description"`
	DueDate     *time.Time `form:"due_date" json:"due_date" swaggertype:"string" format:"date-time"`
}

// Normalize trims the title and description and moves the due date to storage precision.
func (r *TodoRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)

	if r.DueDate != nil {
		due := StorageTime(*r.DueDate)
		r.DueDate = &due
	}
}

func (r *TodoRequest) ToModel(now time.Time) model.Todo {
	return model.Todo{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		IsResolved:  false,
		CreatedAt:   StorageTime(now),
	}
}

// ToUpdateFields replaces every editable column. A nil due date clears it.
func (r *TodoRequest) ToUpdateFields() map[string]any {
	return map[string]any{
		model.FieldTitle:       r.Title,
		model.FieldDescription: r.Description,
		model.FieldDueDate:     r.DueDate,
	}
}

type TodoResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	IsResolved  bool       `json:"is_resolved"`
	IsOverdue   bool       `json:"is_overdue"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (r *TodoResponse) FromModel(todo model.Todo, now time.Time) {
	todo = todo.Normalize()

	r.ID = todo.ID
	r.Title = todo.Title
	r.Description = todo.Description
	r.DueDate = todo.DueDate
	r.IsResolved = todo.IsResolved
	r.IsOverdue = todo.IsOverdue(now)
	r.CreatedAt = todo.CreatedAt
}

type Counts struct {
	Total    int `json:"total"`
	Resolved int `json:"resolved"`
	Pending  int `json:"pending"`
	Overdue  int `json:"overdue"`
}

// CountTodos tallies one snapshot of the table, so Total is always Resolved + Pending.
func CountTodos(todos []model.Todo, now time.Time) Counts {
	counts := Counts{Total: len(todos)}

	for _, todo := range todos {
		if todo.IsResolved {
			counts.Resolved++
		} else {
			counts.Pending++
		}

		if todo.IsOverdue(now) {
			counts.Overdue++
		}
	}

	return counts
}

type ListTodosResponse struct {
	Todos  []TodoResponse `json:"todos"`
	Filter string         `json:"filter"`
	View   string         `json:"view"`
	Counts Counts         `json:"counts"`
}

func (r *ListTodosResponse) FromModels(todos []model.Todo, now time.Time) {
	r.Todos = make([]TodoResponse, len(todos))
	for i, todo := range todos {
		r.Todos[i].FromModel(todo, now)
	}
}
