package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/edulab/booklib-backend/internal/dto"
	"github.com/edulab/booklib-backend/internal/pkg/apperr"
	"github.com/edulab/booklib-backend/internal/pkg/dbctx"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
)

// UserDataService composes the user and book services into multi-record
// workflows. Every write operation runs in exactly one transaction: either
// all row changes commit or none do.
type UserDataService interface {
	CreateUserWithBooks(ctx context.Context, user *dto.UserDto, books []*dto.BookDto) (*dto.UserBooksDto, error)
	UpdateUserWithBooks(ctx context.Context, userID int64, user *dto.UserDto, books []*dto.BookDto) (*dto.UserBooksDto, error)
	GetUserWithBooks(ctx context.Context, userID int64) (*dto.UserBooksDto, error)
	GetUser(ctx context.Context, userID int64) (*dto.UserDto, error)
	GetUserBooks(ctx context.Context, userID int64) ([]*dto.BookDto, error)
	DeleteUserWithBooks(ctx context.Context, userID int64) error
}

type userDataService struct {
	db          *gorm.DB
	log         *logger.Logger
	userService UserService
	bookService BookService
}

func NewUserDataService(db *gorm.DB, log *logger.Logger, userService UserService, bookService BookService) UserDataService {
	return &userDataService{
		db:          db,
		log:         log.With("service", "UserDataService"),
		userService: userService,
		bookService: bookService,
	}
}

func (s *userDataService) CreateUserWithBooks(ctx context.Context, user *dto.UserDto, books []*dto.BookDto) (*dto.UserBooksDto, error) {
	s.log.Info("Got user book create request")
	var out *dto.UserBooksDto
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		createdUser, err := s.userService.CreateUser(dbc, user)
		if err != nil {
			return err
		}
		s.log.Info("Created user", "id", createdUser.ID)
		bookIDs, err := s.createBooks(dbc, createdUser.ID, books)
		if err != nil {
			return err
		}
		s.log.Info("Collected book ids", "ids", bookIDs)
		out = &dto.UserBooksDto{UserID: createdUser.ID, BookIDs: bookIDs}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUserWithBooks merges the user payload onto the existing row and then
// appends the given books as new rows. It never reconciles or replaces the
// user's existing book set.
func (s *userDataService) UpdateUserWithBooks(ctx context.Context, userID int64, user *dto.UserDto, books []*dto.BookDto) (*dto.UserBooksDto, error) {
	var out *dto.UserBooksDto
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		exists, err := s.userService.ExistsByID(dbc, userID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFoundf("User with id: %d was not found", userID)
		}
		update := *user
		update.ID = userID
		updatedUser, err := s.userService.UpdateUser(dbc, &update)
		if err != nil {
			return err
		}
		s.log.Info("Updated user", "id", updatedUser.ID)
		bookIDs, err := s.createBooks(dbc, userID, books)
		if err != nil {
			return err
		}
		s.log.Info("Created books", "ids", bookIDs)
		out = &dto.UserBooksDto{UserID: userID, BookIDs: bookIDs}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *userDataService) GetUserWithBooks(ctx context.Context, userID int64) (*dto.UserBooksDto, error) {
	var out *dto.UserBooksDto
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		exists, err := s.userService.ExistsByID(dbc, userID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFoundf("User with id: %d was not found", userID)
		}
		bookIDs, err := s.bookService.GetBookIDsByUserID(dbc, userID)
		if err != nil {
			return err
		}
		out = &dto.UserBooksDto{UserID: userID, BookIDs: bookIDs}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *userDataService) GetUser(ctx context.Context, userID int64) (*dto.UserDto, error) {
	return s.userService.GetUserByID(dbctx.Context{Ctx: ctx}, userID)
}

func (s *userDataService) GetUserBooks(ctx context.Context, userID int64) ([]*dto.BookDto, error) {
	return s.bookService.GetBooksByUserID(dbctx.Context{Ctx: ctx}, userID)
}

// DeleteUserWithBooks removes the user's books first and the user second, so
// a failed book delete never leaves a user stripped of its books.
func (s *userDataService) DeleteUserWithBooks(ctx context.Context, userID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if err := s.bookService.DeleteBooksByUserID(dbc, userID); err != nil {
			return err
		}
		if err := s.userService.DeleteUserByID(dbc, userID); err != nil {
			return err
		}
		s.log.Info("Deleted user and his books", "user_id", userID)
		return nil
	})
}

// createBooks stamps each payload with the owner id and persists it, keeping
// the generated ids in input order. Nil entries are skipped.
func (s *userDataService) createBooks(dbc dbctx.Context, userID int64, books []*dto.BookDto) ([]int64, error) {
	ids := []int64{}
	for _, payload := range books {
		if payload == nil {
			continue
		}
		book := *payload
		owner := userID
		book.UserID = &owner
		created, err := s.bookService.CreateBook(dbc, &book)
		if err != nil {
			return nil, err
		}
		s.log.Info("Created book", "id", created.ID)
		ids = append(ids, created.ID)
	}
	return ids, nil
}
