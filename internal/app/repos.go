package app

import (
	"gorm.io/gorm"

	"github.com/edulab/booklib-backend/internal/pkg/logger"
	"github.com/edulab/booklib-backend/internal/repos"
)

type Repos struct {
	Person repos.PersonRepo
	Book   repos.BookRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Person: repos.NewPersonRepo(db, log),
		Book:   repos.NewBookRepo(db, log),
	}
}
