package app

import (
	"gorm.io/gorm"

	"github.com/edulab/booklib-backend/internal/pkg/idalloc"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
	"github.com/edulab/booklib-backend/internal/services"
)

type Services struct {
	User     services.UserService
	Book     services.BookService
	UserData services.UserDataService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	ids := idalloc.New(db, log, idalloc.DefaultBlockSize)
	userService := services.NewUserService(log, reposet.Person, ids)
	bookService := services.NewBookService(log, reposet.Book, ids)
	return Services{
		User:     userService,
		Book:     bookService,
		UserData: services.NewUserDataService(db, log, userService, bookService),
	}
}
