package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/edulab/booklib-backend/internal/http/handlers"
	"github.com/edulab/booklib-backend/internal/http/middleware"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log          *logger.Logger
	AllowOrigins []string

	HealthHandler *handlers.HealthHandler
	UserHandler   *handlers.UserHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowOrigins))
	router.Use(otelgin.Middleware("booklib-backend"))
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	user := router.Group("/api/v1/user")
	{
		user.POST("/create", cfg.UserHandler.CreateUserWithBooks)
		user.PUT("/update/:userId", cfg.UserHandler.UpdateUserWithBooks)
		user.GET("/getWithBooks/:userId", cfg.UserHandler.GetUserWithBooks)
		user.GET("/getUserBooks/:userId", cfg.UserHandler.GetUserBooks)
		user.GET("/getUser/:userId", cfg.UserHandler.GetUser)
		user.DELETE("/delete/:userId", cfg.UserHandler.DeleteUserWithBooks)
	}

	return router
}
