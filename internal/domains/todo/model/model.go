package model

import "time"

const (
	TableName  = "todos"
	EntityName = "todo"

	// CacheKeyPrefix namespaces cached rows as todo:<id>.
	CacheKeyPrefix = "todo"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldIsResolved  = "is_resolved"
	FieldCreatedAt   = "created_at"
)

const TitleMaxLength = 200

type Todo struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	DueDate     *time.Time `db:"due_date"`
	IsResolved  bool       `db:"is_resolved"`
	CreatedAt   time.Time  `db:"created_at"`
}

// IsOverdue reports whether the todo is still open and its due date lies before now.
func (t Todo) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.IsResolved
}

func (t Todo) Exists() bool {
	return t.ID != 0
}

// Normalize converts stored times to UTC. Drivers differ in the location they attach on scan.
func (t Todo) Normalize() Todo {
	t.CreatedAt = t.CreatedAt.UTC()

	if t.DueDate != nil {
		due := t.DueDate.UTC()
		t.DueDate = &due
	}

	return t
}
