package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"

	"todoapi/internal/core/domain"
)

func NewTodo(customData ...map[string]any) domain.Todo {
	instance := fab.New(domain.Todo{})

	hasStatus := false
	for _, data := range customData {
		if _, exists := data["Status"]; exists {
			hasStatus = true
			break
		}
	}

	if !hasStatus {
		customData = append(customData, map[string]any{"Status": domain.TodoStatusPending})
	}

	// fabricator's Build only applies the first overrides map, so collapse
	// caller data and appended defaults into one.
	merged := map[string]any{}
	for _, data := range customData {
		for key, value := range data {
			merged[key] = value
		}
	}

	todo := instance.Build(merged)

	if todo.UUID == uuid.Nil {
		todo.UUID = uuid.New()
	}

	if todo.Date.IsZero() {
		todo.Date = time.Now()
	}

	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = time.Now()
	}
	if todo.UpdatedAt.IsZero() {
		todo.UpdatedAt = time.Now()
	}

	return todo
}
