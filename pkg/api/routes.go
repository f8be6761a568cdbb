package api

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	adapterhttp "todoapi/internal/adapter/http"
	"todoapi/internal/shared"
)

// SetupRouter builds the full route table under /api. The rate limiter is
// attached per route, matching the original table: every endpoint is limited
// except the profile and todo reads.
func SetupRouter(
	container *adapterhttp.Container,
	cfg *shared.AppConfig,
	metrics *shared.AppMetrics,
	limiter *shared.RateLimiter,
) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("todoapi"))

	if metrics != nil {
		router.Use(metrics.Middleware())
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	router.Use(corsMiddleware(cfg.AllowedOrigins))

	limited := limiter.Middleware()
	guest := container.AuthMiddleware.RequireGuest()

	api := router.Group("/api")
	{
		api.POST("/register", limited, guest, container.AuthHandler.Register)
		api.POST("/login", limited, guest, container.AuthHandler.Login)
		api.POST("/send/verification/mail", limited, guest, container.AuthHandler.SendVerificationMail)
		api.POST("/otp/verification", limited, guest, container.AuthHandler.VerifyOTP)
		api.POST("/forgot-password", limited, guest, container.AuthHandler.ForgotPassword)
		api.POST("/reset-password/:token", limited, guest, container.AuthHandler.ResetPassword)

		authed := api.Group("/")
		authed.Use(container.AuthMiddleware.RequireAuth())
		{
			authed.GET("/profile", container.UserHandler.Profile)
			authed.PATCH("/profile", limited, container.UserHandler.UpdateProfile)
			authed.POST("/change-password", limited, container.UserHandler.ChangePassword)

			authed.GET("/todos", container.TodoHandler.List)
			authed.GET("/todos/:todoId", container.TodoHandler.Get)
			authed.POST("/todos", limited, container.TodoHandler.Create)
			authed.PATCH("/todos/status/:todoId", limited, container.TodoHandler.UpdateStatus)
			authed.PUT("/todos/:todoId", limited, container.TodoHandler.Update)
			authed.DELETE("/todos/:todoId", limited, container.TodoHandler.Delete)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := slices.Contains(allowedOrigins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(allowedOrigins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
