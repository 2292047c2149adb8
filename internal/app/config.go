package app

import (
	"strings"

	"github.com/edulab/booklib-backend/internal/pkg/envutil"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
)

type Config struct {
	Port         string
	AllowOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	origins := envutil.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)
	allowOrigins := []string{}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowOrigins = append(allowOrigins, o)
		}
	}
	return Config{
		Port:         envutil.GetEnv("PORT", "8080", log),
		AllowOrigins: allowOrigins,
	}
}
