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

type UserService interface {
	CreateUser(dbc dbctx.Context, user *dto.UserDto) (*dto.UserDto, error)
	// UpdateUser locks the target row for the rest of the transaction, merges
	// the non-nil fields of user onto it and persists the result.
	UpdateUser(dbc dbctx.Context, user *dto.UserDto) (*dto.UserDto, error)
	GetUserByID(dbc dbctx.Context, id int64) (*dto.UserDto, error)
	ExistsByID(dbc dbctx.Context, id int64) (bool, error)
	DeleteUserByID(dbc dbctx.Context, id int64) error
}

type userService struct {
	log        *logger.Logger
	personRepo repos.PersonRepo
	ids        *idalloc.Allocator
}

func NewUserService(log *logger.Logger, personRepo repos.PersonRepo, ids *idalloc.Allocator) UserService {
	return &userService{
		log:        log.With("service", "UserService"),
		personRepo: personRepo,
		ids:        ids,
	}
}

func (us *userService) CreateUser(dbc dbctx.Context, user *dto.UserDto) (*dto.UserDto, error) {
	person := mapper.UserDtoToPerson(user)
	id, err := us.ids.Next(dbc.Ctx)
	if err != nil {
		return nil, err
	}
	person.ID = id
	saved, err := us.personRepo.Create(dbc, person)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	us.log.Info("Created person", "id", saved.ID)
	return mapper.PersonToUserDto(saved), nil
}

func (us *userService) UpdateUser(dbc dbctx.Context, user *dto.UserDto) (*dto.UserDto, error) {
	update := mapper.UserDtoToPerson(user)
	person, err := us.personRepo.LockByID(dbc, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("User with id: %d was not found", user.ID)
		}
		return nil, apperr.FromDB(err)
	}
	mapper.MergePerson(update, person)
	saved, err := us.personRepo.Save(dbc, person)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	us.log.Info("Updated person", "id", saved.ID)
	return mapper.PersonToUserDto(saved), nil
}

func (us *userService) GetUserByID(dbc dbctx.Context, id int64) (*dto.UserDto, error) {
	person, err := us.personRepo.GetByID(dbc, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("User with id: %d was not found", id)
		}
		return nil, apperr.FromDB(err)
	}
	return mapper.PersonToUserDto(person), nil
}

func (us *userService) ExistsByID(dbc dbctx.Context, id int64) (bool, error) {
	return us.personRepo.ExistsByID(dbc, id)
}

// DeleteUserByID is idempotent: deleting an absent id succeeds silently.
func (us *userService) DeleteUserByID(dbc dbctx.Context, id int64) error {
	if err := us.personRepo.DeleteByID(dbc, id); err != nil {
		return apperr.FromDB(err)
	}
	us.log.Info("Person deleted", "id", id)
	return nil
}
