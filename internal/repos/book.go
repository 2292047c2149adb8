package repos

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edulab/booklib-backend/internal/pkg/dbctx"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
	"github.com/edulab/booklib-backend/internal/types"
)

type BookRepo interface {
	Create(dbc dbctx.Context, row *types.Book) (*types.Book, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Book, error)
	LockByID(dbc dbctx.Context, id int64) (*types.Book, error)
	Save(dbc dbctx.Context, row *types.Book) (*types.Book, error)
	DeleteByID(dbc dbctx.Context, id int64) error
	ListByUserID(dbc dbctx.Context, userID int64) ([]*types.Book, error)
	ListIDsByUserID(dbc dbctx.Context, userID int64) ([]int64, error)
	DeleteByUserID(dbc dbctx.Context, userID int64) error
}

type bookRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBookRepo(db *gorm.DB, log *logger.Logger) BookRepo {
	return &bookRepo{db: db, log: log.With("repo", "BookRepo")}
}

func (r *bookRepo) conn(dbc dbctx.Context) *gorm.DB {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx)
}

func (r *bookRepo) Create(dbc dbctx.Context, row *types.Book) (*types.Book, error) {
	if err := r.conn(dbc).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *bookRepo) GetByID(dbc dbctx.Context, id int64) (*types.Book, error) {
	var out types.Book
	if err := r.conn(dbc).
		Where("id = ?", id).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *bookRepo) LockByID(dbc dbctx.Context, id int64) (*types.Book, error) {
	var out types.Book
	if err := r.conn(dbc).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *bookRepo) Save(dbc dbctx.Context, row *types.Book) (*types.Book, error) {
	if err := r.conn(dbc).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *bookRepo) DeleteByID(dbc dbctx.Context, id int64) error {
	return r.conn(dbc).
		Where("id = ?", id).
		Delete(&types.Book{}).Error
}

func (r *bookRepo) ListByUserID(dbc dbctx.Context, userID int64) ([]*types.Book, error) {
	out := []*types.Book{}
	if err := r.conn(dbc).
		Where("user_id = ?", userID).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *bookRepo) ListIDsByUserID(dbc dbctx.Context, userID int64) ([]int64, error) {
	out := []int64{}
	if err := r.conn(dbc).
		Model(&types.Book{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("id", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *bookRepo) DeleteByUserID(dbc dbctx.Context, userID int64) error {
	return r.conn(dbc).
		Where("user_id = ?", userID).
		Delete(&types.Book{}).Error
}
