package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TodoStatus string

const (
	TodoStatusCompleted TodoStatus = "Completed"
	TodoStatusProgress  TodoStatus = "Progress"
	TodoStatusPending   TodoStatus = "Pending"
)

func ParseTodoStatus(status string) (TodoStatus, error) {
	switch TodoStatus(status) {
	case TodoStatusCompleted, TodoStatusProgress, TodoStatusPending:
		return TodoStatus(status), nil
	default:
		return "", fmt.Errorf("invalid status: %s", status)
	}
}

type Todo struct {
	ID        int
	UUID      uuid.UUID
	Todo      string `validate:"required,min=1"`
	Date      time.Time
	Status    TodoStatus
	UserID    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Todo) BelongsToUser(userID int) bool {
	return t.UserID == userID
}
