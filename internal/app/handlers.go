package app

import (
	"github.com/edulab/booklib-backend/internal/http/handlers"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
)

type Handlers struct {
	Health *handlers.HealthHandler
	User   *handlers.UserHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: handlers.NewHealthHandler(),
		User:   handlers.NewUserHandler(serviceset.UserData),
	}
}
