package port

import (
	"context"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
)

// TodoQuery describes one page of a todo listing.
type TodoQuery struct {
	Page   int
	Limit  int
	Sort   string
	Order  string
	Search string
}

type TodoRepository interface {
	// List returns the requested page plus the total count of rows matching
	// the search filter for the user.
	List(ctx context.Context, userID int, q TodoQuery) ([]domain.Todo, int, error)
	GetByUUID(ctx context.Context, uid string, userID int) (domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	UpdateByUUID(ctx context.Context, uid string, userID int, fields map[string]any) (domain.Todo, error)
	DeleteByUUID(ctx context.Context, uid string, userID int) error
}

type TodoService interface {
	List(ctx context.Context, userID int, q TodoQuery) (*response.TodoListResponse, error)
	Get(ctx context.Context, uid string, userID int) (domain.Todo, error)
	Create(ctx context.Context, userID int, req *request.TodoRequest) (domain.Todo, error)
	Update(ctx context.Context, uid string, userID int, req *request.TodoRequest) (domain.Todo, error)
	UpdateStatus(ctx context.Context, uid string, userID int, status domain.TodoStatus) (domain.Todo, error)
	Delete(ctx context.Context, uid string, userID int) error
}
