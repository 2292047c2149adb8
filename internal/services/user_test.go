package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/booklib-backend/internal/dto"
	"github.com/edulab/booklib-backend/internal/pkg/apperr"
	"github.com/edulab/booklib-backend/internal/pkg/dbctx"
	"github.com/edulab/booklib-backend/internal/pkg/pointers"
)

func userPayload(name, title string, age int) *dto.UserDto {
	return &dto.UserDto{
		FullName: pointers.String(name),
		Title:    pointers.String(title),
		Age:      pointers.Int(age),
	}
}

func TestCreateUserAssignsGeneratedID(t *testing.T) {
	env := newTestEnv(t)
	dbc := dbctx.Context{Ctx: context.Background()}

	first, err := env.users.CreateUser(dbc, userPayload("Ann", "reader", 30))
	require.NoError(t, err)
	assert.Positive(t, first.ID)

	second, err := env.users.CreateUser(dbc, userPayload("Bob", "writer", 25))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateUserMissingRequiredFieldIsConstraint(t *testing.T) {
	env := newTestEnv(t)
	dbc := dbctx.Context{Ctx: context.Background()}

	_, err := env.users.CreateUser(dbc, &dto.UserDto{Title: pointers.String("t"), Age: pointers.Int(1)})
	require.Error(t, err)
	assert.True(t, apperr.IsConstraint(err))
}

func TestUpdateUserMergesOnlyProvidedFields(t *testing.T) {
	env := newTestEnv(t)
	dbc := dbctx.Context{Ctx: context.Background()}

	created, err := env.users.CreateUser(dbc, userPayload("Ann", "old", 30))
	require.NoError(t, err)

	updated, err := env.users.UpdateUser(dbc, &dto.UserDto{ID: created.ID, Title: pointers.String("new")})
	require.NoError(t, err)
	assert.Equal(t, "Ann", *updated.FullName)
	assert.Equal(t, "new", *updated.Title)
	assert.Equal(t, 30, *updated.Age)

	// and the merge is persisted, not just returned
	got, err := env.users.GetUserByID(dbc, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", *got.FullName)
	assert.Equal(t, "new", *got.Title)
	assert.Equal(t, 30, *got.Age)
}

func TestUpdateUserMissingIDIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	dbc := dbctx.Context{Ctx: context.Background()}

	_, err := env.users.UpdateUser(dbc, &dto.UserDto{ID: 404, Title: pointers.String("x")})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetUserByIDMissingIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	dbc := dbctx.Context{Ctx: context.Background()}

	_, err := env.users.GetUserByID(dbc, 404)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteUserByIDIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	dbc := dbctx.Context{Ctx: context.Background()}

	require.NoError(t, env.users.DeleteUserByID(dbc, 404))

	created, err := env.users.CreateUser(dbc, userPayload("Ann", "reader", 30))
	require.NoError(t, err)
	require.NoError(t, env.users.DeleteUserByID(dbc, created.ID))
	require.NoError(t, env.users.DeleteUserByID(dbc, created.ID))

	exists, err := env.users.ExistsByID(dbc, created.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
