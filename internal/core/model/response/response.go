package response

import (
	"time"

	"todoapi/internal/core/domain"
)

// Envelope is the uniform response shape of every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type UserResponse struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type TodoResponse struct {
	ID     string    `json:"id"`
	Todo   string    `json:"todo"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

func NewTodoResponse(todo domain.Todo) TodoResponse {
	return TodoResponse{
		ID:     todo.UUID.String(),
		Todo:   todo.Todo,
		Date:   todo.Date,
		Status: string(todo.Status),
	}
}

type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
	Pages int            `json:"pages"`
}
