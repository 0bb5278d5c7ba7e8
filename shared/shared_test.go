package shared_test

import (
	"testing"
	"todoapp/shared"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "single part", parts: []string{"todo"}, expected: "todo"},
		{name: "multiple parts", parts: []string{"limiter", "127.0.0.1", "curl"}, expected: "limiter:127.0.0.1:curl"},
		{name: "empty parts skipped", parts: []string{"todo", "", "get"}, expected: "todo:get"},
		{name: "no parts", parts: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.parts...))
		})
	}
}

func TestBuildCacheKeyWithID(t *testing.T) {
	assert.Equal(t, "todo:get:42", shared.BuildCacheKeyWithID("todo:get", 42))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(7), "id", "todos")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(todos.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(7)}, args)
}
