package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"todoapi/internal/adapter/database/postgres"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

var todoColumns = []string{
	"id", "uuid", "todo", "date", "status", "user_id", "created_at", "updated_at",
}

// sortColumns whitelists the sortable fields, keyed by their API names.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"todo":      "todo",
	"date":      "date",
	"status":    "status",
}

type TodoRepository struct {
	db *postgres.DB
}

func NewTodoRepository(db *postgres.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) List(ctx context.Context, userID int, q port.TodoQuery) ([]domain.Todo, int, error) {
	pred := sq.And{sq.Eq{"user_id": userID}}

	if q.Search != "" {
		pred = append(pred, sq.ILike{"todo": "%" + q.Search + "%"})
	}

	countQuery := r.db.QueryBuilder.Select("COUNT(*)").From("todos").Where(pred)

	stmt, args, err := countQuery.ToSql()

	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, stmt, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[q.Sort]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if strings.EqualFold(q.Order, "asc") {
		direction = "ASC"
	}

	query := r.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		Where(pred).
		OrderBy(column+" "+direction, "id "+direction).
		Limit(uint64(q.Limit)).
		Offset(uint64((q.Page - 1) * q.Limit))

	stmt, args, err = query.ToSql()

	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, stmt, args...)

	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	todos := []domain.Todo{}

	for rows.Next() {
		todo, err := scanTodo(rows)

		if err != nil {
			return nil, 0, err
		}

		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return todos, total, nil
}

func (r *TodoRepository) GetByUUID(ctx context.Context, uid string, userID int) (domain.Todo, error) {
	query := r.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"uuid": uid, "user_id": userID}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	return scanTodo(r.db.QueryRow(ctx, stmt, args...))
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	now := time.Now()

	query := r.db.QueryBuilder.Insert("todos").
		Columns("uuid", "todo", "date", "status", "user_id", "created_at", "updated_at").
		Values(todo.UUID, todo.Todo, todo.Date, string(todo.Status), todo.UserID, now, now).
		Suffix("RETURNING " + columnList(todoColumns))

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	return scanTodo(r.db.QueryRow(ctx, stmt, args...))
}

func (r *TodoRepository) UpdateByUUID(ctx context.Context, uid string, userID int, fields map[string]any) (domain.Todo, error) {
	query := r.db.QueryBuilder.Update("todos").
		SetMap(fields).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"uuid": uid, "user_id": userID}).
		Suffix("RETURNING " + columnList(todoColumns))

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	return scanTodo(r.db.QueryRow(ctx, stmt, args...))
}

func (r *TodoRepository) DeleteByUUID(ctx context.Context, uid string, userID int) error {
	query := r.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"uuid": uid, "user_id": userID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, stmt, args...)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func scanTodo(row pgx.Row) (domain.Todo, error) {
	var todo domain.Todo
	var status string

	err := row.Scan(
		&todo.ID, &todo.UUID, &todo.Todo, &todo.Date, &status,
		&todo.UserID, &todo.CreatedAt, &todo.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Todo{}, domain.ErrNotFound
		}
		return domain.Todo{}, err
	}

	todo.Status = domain.TodoStatus(status)

	return todo, nil
}

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}
