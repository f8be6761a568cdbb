package http

import (
	"github.com/rs/zerolog"

	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/internal/shared"
	"todoapi/pkg/auth"
)

// Container wires repositories, services and handlers once at startup.
type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	AuthService port.AuthService
	UserService port.UserService
	TodoService port.TodoService

	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	TodoHandler *handler.TodoHandler

	AuthMiddleware *middleware.AuthMiddleware
}

func NewContainer(
	users port.UserRepository,
	todos port.TodoRepository,
	mailer port.Mailer,
	tokens *auth.JWT,
	cfg *shared.AppConfig,
	logger zerolog.Logger,
	metrics *shared.AppMetrics,
) *Container {
	authSvc := service.NewAuthService(users, mailer, tokens, cfg, logger, metrics)
	userSvc := service.NewUserService(users)
	todoSvc := service.NewTodoService(todos)

	return &Container{
		UserRepo: users,
		TodoRepo: todos,

		AuthService: authSvc,
		UserService: userSvc,
		TodoService: todoSvc,

		AuthHandler: handler.NewAuthHandler(authSvc, logger),
		UserHandler: handler.NewUserHandler(userSvc),
		TodoHandler: handler.NewTodoHandler(todoSvc),

		AuthMiddleware: middleware.NewAuthMiddleware(tokens, users, logger),
	}
}
