package dto_test

import (
	"testing"
	"time"

	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFilter(t *testing.T) {
	tests := map[string]string{
		"":         dto.FilterAll,
		"all":      dto.FilterAll,
		"pending":  dto.FilterPending,
		"resolved": dto.FilterResolved,
		"overdue":  dto.FilterOverdue,
		"archived": dto.FilterAll,
		"PENDING":  dto.FilterAll,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, dto.NormalizeFilter(input), "filter %q", input)
	}
}

func TestNormalizeView(t *testing.T) {
	assert.Equal(t, dto.ViewGrid, dto.NormalizeView(""))
	assert.Equal(t, dto.ViewList, dto.NormalizeView("list"))
	assert.Equal(t, "compact", dto.NormalizeView("compact"))
}

func TestTodoRequest_Normalize(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	due := time.Date(2025, 3, 1, 9, 30, 0, 123456789, jakarta)

	req := dto.TodoRequest{
		Title:       "  Buy milk \n",
		Description: " 2 liters ",
		DueDate:     &due,
	}
	req.Normalize()

	assert.Equal(t, "Buy milk", req.Title)
	assert.Equal(t, "2 liters", req.Description)
	require.NotNil(t, req.DueDate)
	assert.Equal(t, time.UTC, req.DueDate.Location())
	assert.Equal(t, 123456000, req.DueDate.Nanosecond())
	assert.True(t, req.DueDate.Equal(due.Truncate(time.Microsecond)))
}

func TestTodoRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 999, time.UTC)
	req := dto.TodoRequest{Title: "Buy milk", Description: "2 liters"}

	todo := req.ToModel(now)

	assert.Zero(t, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, "2 liters", todo.Description)
	assert.Nil(t, todo.DueDate)
	assert.False(t, todo.IsResolved)
	assert.Equal(t, now.Truncate(time.Microsecond), todo.CreatedAt)
}

func TestTodoRequest_ToUpdateFields(t *testing.T) {
	req := dto.TodoRequest{Title: "Renamed"}

	fields := req.ToUpdateFields()

	assert.Equal(t, "Renamed", fields[model.FieldTitle])
	assert.Equal(t, "", fields[model.FieldDescription])
	assert.Contains(t, fields, model.FieldDueDate)
	assert.Nil(t, fields[model.FieldDueDate])
	assert.NotContains(t, fields, model.FieldIsResolved)
}

func TestTodoResponse_FromModel(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	todo := model.Todo{
		ID:          7,
		Title:       "Buy milk",
		Description: "2 liters",
		DueDate:     &yesterday,
		CreatedAt:   now.AddDate(0, 0, -2),
	}

	var res dto.TodoResponse
	res.FromModel(todo, now)

	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, todo.Title, res.Title)
	assert.Equal(t, todo.Description, res.Description)
	assert.Equal(t, todo.DueDate, res.DueDate)
	assert.False(t, res.IsResolved)
	assert.True(t, res.IsOverdue)
	assert.Equal(t, todo.CreatedAt, res.CreatedAt)
}

func TestCountTodos(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	todos := []model.Todo{
		{ID: 1, DueDate: &past},
		{ID: 2, DueDate: &past, IsResolved: true},
		{ID: 3, DueDate: &future},
		{ID: 4},
		{ID: 5, IsResolved: true},
	}

	counts := dto.CountTodos(todos, now)

	assert.Equal(t, dto.Counts{Total: 5, Resolved: 2, Pending: 3, Overdue: 1}, counts)
	assert.Equal(t, counts.Total, counts.Resolved+counts.Pending)
	assert.Equal(t, dto.Counts{}, dto.CountTodos(nil, now))
}

func TestListTodosResponse_FromModels(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var res dto.ListTodosResponse
	res.FromModels([]model.Todo{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}, now)

	require.Len(t, res.Todos, 2)
	assert.Equal(t, int64(2), res.Todos[0].ID)
	assert.Equal(t, int64(1), res.Todos[1].ID)

	res.FromModels(nil, now)
	assert.NotNil(t, res.Todos)
	assert.Empty(t, res.Todos)
}
