package services

import (
	"errors"

	"github.com/edulab/booklib-backend/internal/dto"
	"github.com/edulab/booklib-backend/internal/mapper"
	"github.com/edulab/booklib-backend/internal/pkg/apperr"
	"github.com/edulab/booklib-backend/internal/pkg/dbctx"
	"github.com/edulab/booklib-backend/internal/pkg/idalloc"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
	"github.com/edulab/booklib-backend/internal/repos"
	"gorm.io/gorm"
)

type BookService interface {
	// CreateBook expects UserID to be set by the caller; it does not check
	// that the owner exists. Ownership integrity is the orchestrator's job.
	CreateBook(dbc dbctx.Context, book *dto.BookDto) (*dto.BookDto, error)
	UpdateBook(dbc dbctx.Context, book *dto.BookDto) (*dto.BookDto, error)
	GetBookByID(dbc dbctx.Context, id int64) (*dto.BookDto, error)
	DeleteBookByID(dbc dbctx.Context, id int64) error
	GetBookIDsByUserID(dbc dbctx.Context, userID int64) ([]int64, error)
	GetBooksByUserID(dbc dbctx.Context, userID int64) ([]*dto.BookDto, error)
	DeleteBooksByUserID(dbc dbctx.Context, userID int64) error
}

type bookService struct {
	log      *logger.Logger
	bookRepo repos.BookRepo
	ids      *idalloc.Allocator
}

func NewBookService(log *logger.Logger, bookRepo repos.BookRepo, ids *idalloc.Allocator) BookService {
	return &bookService{
		log:      log.With("service", "BookService"),
		bookRepo: bookRepo,
		ids:      ids,
	}
}

func (bs *bookService) CreateBook(dbc dbctx.Context, book *dto.BookDto) (*dto.BookDto, error) {
	row := mapper.BookDtoToBook(book)
	id, err := bs.ids.Next(dbc.Ctx)
	if err != nil {
		return nil, err
	}
	row.ID = id
	saved, err := bs.bookRepo.Create(dbc, row)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	bs.log.Info("Created book", "id", saved.ID)
	return mapper.BookToBookDto(saved), nil
}

func (bs *bookService) UpdateBook(dbc dbctx.Context, book *dto.BookDto) (*dto.BookDto, error) {
	update := mapper.BookDtoToBook(book)
	row, err := bs.bookRepo.LockByID(dbc, book.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Book with id: %d was not found", book.ID)
		}
		return nil, apperr.FromDB(err)
	}
	mapper.MergeBook(update, row)
	saved, err := bs.bookRepo.Save(dbc, row)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	bs.log.Info("Updated book", "id", saved.ID)
	return mapper.BookToBookDto(saved), nil
}

func (bs *bookService) GetBookByID(dbc dbctx.Context, id int64) (*dto.BookDto, error) {
	row, err := bs.bookRepo.GetByID(dbc, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Book with id: %d was not found", id)
		}
		return nil, apperr.FromDB(err)
	}
	return mapper.BookToBookDto(row), nil
}

func (bs *bookService) DeleteBookByID(dbc dbctx.Context, id int64) error {
	if err := bs.bookRepo.DeleteByID(dbc, id); err != nil {
		return apperr.FromDB(err)
	}
	bs.log.Info("Book deleted", "id", id)
	return nil
}

func (bs *bookService) GetBookIDsByUserID(dbc dbctx.Context, userID int64) ([]int64, error) {
	ids, err := bs.bookRepo.ListIDsByUserID(dbc, userID)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	return ids, nil
}

func (bs *bookService) GetBooksByUserID(dbc dbctx.Context, userID int64) ([]*dto.BookDto, error) {
	rows, err := bs.bookRepo.ListByUserID(dbc, userID)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	out := make([]*dto.BookDto, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		out = append(out, mapper.BookToBookDto(row))
	}
	return out, nil
}

func (bs *bookService) DeleteBooksByUserID(dbc dbctx.Context, userID int64) error {
	if err := bs.bookRepo.DeleteByUserID(dbc, userID); err != nil {
		return apperr.FromDB(err)
	}
	bs.log.Info("Deleted books", "user_id", userID)
	return nil
}
