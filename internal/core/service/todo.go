package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
)

type TodoService struct {
	todos port.TodoRepository
}

func NewTodoService(todos port.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// List returns one page of the user's todos. An empty page is a 404, even
// when the page number is merely out of range.
func (s *TodoService) List(ctx context.Context, userID int, q port.TodoQuery) (*response.TodoListResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	todos, total, err := s.todos.List(ctx, userID, q)

	if err != nil {
		return nil, err
	}

	if len(todos) == 0 {
		return nil, domain.NotFound("No todos found")
	}

	items := make([]response.TodoResponse, 0, len(todos))
	for _, todo := range todos {
		items = append(items, response.NewTodoResponse(todo))
	}

	pages := (total + q.Limit - 1) / q.Limit

	// A page beyond the last one reports itself as page 1.
	page := q.Page
	if page > pages {
		page = 1
	}

	return &response.TodoListResponse{
		Todos: items,
		Page:  page,
		Limit: q.Limit,
		Total: total,
		Pages: pages,
	}, nil
}

func (s *TodoService) Get(ctx context.Context, uid string, userID int) (domain.Todo, error) {
	todo, err := s.todos.GetByUUID(ctx, uid, userID)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Todo{}, domain.NotFound("Todo not found")
		}
		return domain.Todo{}, err
	}

	return todo, nil
}

func (s *TodoService) Create(ctx context.Context, userID int, req *request.TodoRequest) (domain.Todo, error) {
	date, err := parseDate(req.Date)

	if err != nil {
		return domain.Todo{}, domain.UnprocessableEntity("Date must be a valid date")
	}

	todo := domain.Todo{
		UUID:   uuid.New(),
		Todo:   req.Todo,
		Date:   date,
		Status: domain.TodoStatusPending,
		UserID: userID,
	}

	return s.todos.Create(ctx, todo)
}

func (s *TodoService) Update(ctx context.Context, uid string, userID int, req *request.TodoRequest) (domain.Todo, error) {
	date, err := parseDate(req.Date)

	if err != nil {
		return domain.Todo{}, domain.UnprocessableEntity("Date must be a valid date")
	}

	todo, err := s.todos.UpdateByUUID(ctx, uid, userID, map[string]any{
		"todo": req.Todo,
		"date": date,
	})

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Todo{}, domain.NotFound("Todo not found")
		}
		return domain.Todo{}, err
	}

	return todo, nil
}

// UpdateStatus patches the status column and nothing else.
func (s *TodoService) UpdateStatus(ctx context.Context, uid string, userID int, status domain.TodoStatus) (domain.Todo, error) {
	todo, err := s.todos.UpdateByUUID(ctx, uid, userID, map[string]any{
		"status": string(status),
	})

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Todo{}, domain.NotFound("Todo not found")
		}
		return domain.Todo{}, err
	}

	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, uid string, userID int) error {
	if err := s.todos.DeleteByUUID(ctx, uid, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("Todo not found")
		}
		return err
	}

	return nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(raw string) (time.Time, error) {
	var lastErr error

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}

	return time.Time{}, lastErr
}

var _ port.TodoService = (*TodoService)(nil)
