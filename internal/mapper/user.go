// Package mapper converts between wire-shape DTOs and persistence entities
// with explicit per-field functions. Merge helpers implement partial-update
// semantics: only non-nil source fields overwrite the target.
package mapper

import (
	"github.com/edulab/booklib-backend/internal/dto"
	"github.com/edulab/booklib-backend/internal/types"
)

// UserDtoToPerson maps a wire-shape user onto a fresh entity. Rating is a
// persistence-only attribute and is never carried over from the wire shape.
func UserDtoToPerson(d *dto.UserDto) *types.Person {
	if d == nil {
		return nil
	}
	return &types.Person{
		ID:       d.ID,
		FullName: d.FullName,
		Title:    d.Title,
		Age:      d.Age,
	}
}

func PersonToUserDto(p *types.Person) *dto.UserDto {
	if p == nil {
		return nil
	}
	return &dto.UserDto{
		ID:       p.ID,
		FullName: p.FullName,
		Title:    p.Title,
		Age:      p.Age,
	}
}

// MergePerson copies the non-nil fields of update onto existing. The id is
// never touched and neither is rating, which the update entity cannot carry.
func MergePerson(update, existing *types.Person) {
	if update == nil || existing == nil {
		return
	}
	if update.FullName != nil {
		existing.FullName = update.FullName
	}
	if update.Title != nil {
		existing.Title = update.Title
	}
	if update.Age != nil {
		existing.Age = update.Age
	}
}
