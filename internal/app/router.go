package app

import (
	"github.com/gin-gonic/gin"

	"github.com/edulab/booklib-backend/internal/pkg/logger"
	"github.com/edulab/booklib-backend/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:           log,
		AllowOrigins:  cfg.AllowOrigins,
		HealthHandler: handlerset.Health,
		UserHandler:   handlerset.User,
	})
}
