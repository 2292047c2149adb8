package services_test

import (
	"testing"

	"gorm.io/gorm"

	"github.com/edulab/booklib-backend/internal/pkg/idalloc"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
	"github.com/edulab/booklib-backend/internal/pkg/testdb"
	"github.com/edulab/booklib-backend/internal/repos"
	"github.com/edulab/booklib-backend/internal/services"
)

type testEnv struct {
	db       *gorm.DB
	users    services.UserService
	books    services.BookService
	userData services.UserDataService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	gormDB := testdb.Open(t)
	log := logger.NewNop()
	ids := idalloc.New(gormDB, log, idalloc.DefaultBlockSize)
	users := services.NewUserService(log, repos.NewPersonRepo(gormDB, log), ids)
	books := services.NewBookService(log, repos.NewBookRepo(gormDB, log), ids)
	return testEnv{
		db:       gormDB,
		users:    users,
		books:    books,
		userData: services.NewUserDataService(gormDB, log, users, books),
	}
}
