package repos

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edulab/booklib-backend/internal/pkg/dbctx"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
	"github.com/edulab/booklib-backend/internal/types"
)

type PersonRepo interface {
	Create(dbc dbctx.Context, row *types.Person) (*types.Person, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Person, error)
	// LockByID reads the row under a pessimistic write lock held until the
	// surrounding transaction ends.
	LockByID(dbc dbctx.Context, id int64) (*types.Person, error)
	ExistsByID(dbc dbctx.Context, id int64) (bool, error)
	Save(dbc dbctx.Context, row *types.Person) (*types.Person, error)
	DeleteByID(dbc dbctx.Context, id int64) error
}

type personRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonRepo(db *gorm.DB, log *logger.Logger) PersonRepo {
	return &personRepo{db: db, log: log.With("repo", "PersonRepo")}
}

func (r *personRepo) conn(dbc dbctx.Context) *gorm.DB {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx)
}

func (r *personRepo) Create(dbc dbctx.Context, row *types.Person) (*types.Person, error) {
	if err := r.conn(dbc).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *personRepo) GetByID(dbc dbctx.Context, id int64) (*types.Person, error) {
	var out types.Person
	if err := r.conn(dbc).
		Where("id = ?", id).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *personRepo) LockByID(dbc dbctx.Context, id int64) (*types.Person, error) {
	var out types.Person
	if err := r.conn(dbc).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *personRepo) ExistsByID(dbc dbctx.Context, id int64) (bool, error) {
	var count int64
	if err := r.conn(dbc).
		Model(&types.Person{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *personRepo) Save(dbc dbctx.Context, row *types.Person) (*types.Person, error) {
	if err := r.conn(dbc).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *personRepo) DeleteByID(dbc dbctx.Context, id int64) error {
	return r.conn(dbc).
		Where("id = ?", id).
		Delete(&types.Person{}).Error
}
