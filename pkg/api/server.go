package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"todoapi/internal/adapter/database/postgres"
	pgrepository "todoapi/internal/adapter/database/postgres/repository"
	"todoapi/internal/adapter/database/sqlite"
	sqliterepository "todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/adapter/email"
	adapterhttp "todoapi/internal/adapter/http"
	"todoapi/internal/core/port"
	"todoapi/internal/shared"
	"todoapi/pkg/auth"
)

// BuildServer assembles the full application: database adapter, mailer,
// container and router. The returned http.Server is ready to listen.
func BuildServer(ctx context.Context, cfg *shared.AppConfig, logger zerolog.Logger, metrics *shared.AppMetrics) (*http.Server, func(), error) {
	users, todos, closeDB, err := openDatabase(ctx, cfg, logger)

	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	mailer, err := buildMailer(cfg, logger)

	if err != nil {
		closeDB()
		return nil, nil, err
	}

	tokens := auth.New(cfg.JWTSecret, cfg.TokenTTL)
	limiter := shared.NewRateLimiter(cfg.RateLimit, logger, metrics)

	container := adapterhttp.NewContainer(users, todos, mailer, tokens, cfg, logger, metrics)
	router := SetupRouter(container, cfg, metrics, limiter)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	return srv, closeDB, nil
}

// openDatabase selects the adapter from the DATABASE_URL scheme: postgres URLs
// get the pgx pool, anything else is treated as a sqlite file path.
func openDatabase(ctx context.Context, cfg *shared.AppConfig, logger zerolog.Logger) (port.UserRepository, port.TodoRepository, func(), error) {
	if isPostgresURL(cfg.DatabaseURL) {
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL)

		if err != nil {
			return nil, nil, nil, err
		}

		return pgrepository.NewUserRepository(db),
			pgrepository.NewTodoRepository(db),
			db.Close,
			nil
	}

	db, err := sqlite.NewDB(cfg.DatabaseURL, logger)

	if err != nil {
		return nil, nil, nil, err
	}

	return sqliterepository.NewUserRepository(db),
		sqliterepository.NewTodoRepository(db),
		func() { db.Close() },
		nil
}

func buildMailer(cfg *shared.AppConfig, logger zerolog.Logger) (port.Mailer, error) {
	if cfg.IsDevelopment() || cfg.SMTP.Host == "" {
		return email.NewLogMailer(logger), nil
	}

	return email.NewSMTPMailer(cfg.SMTP)
}

func isPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}
