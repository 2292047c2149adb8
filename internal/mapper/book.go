package mapper

import (
	"github.com/edulab/booklib-backend/internal/dto"
	"github.com/edulab/booklib-backend/internal/types"
)

func BookDtoToBook(d *dto.BookDto) *types.Book {
	if d == nil {
		return nil
	}
	return &types.Book{
		ID:        d.ID,
		UserID:    d.UserID,
		Title:     d.Title,
		Author:    d.Author,
		PageCount: d.PageCount,
	}
}

func BookToBookDto(b *types.Book) *dto.BookDto {
	if b == nil {
		return nil
	}
	return &dto.BookDto{
		ID:        b.ID,
		UserID:    b.UserID,
		Title:     b.Title,
		Author:    b.Author,
		PageCount: b.PageCount,
	}
}

// MergeBook copies the non-nil fields of update onto existing, id excluded.
func MergeBook(update, existing *types.Book) {
	if update == nil || existing == nil {
		return
	}
	if update.UserID != nil {
		existing.UserID = update.UserID
	}
	if update.Title != nil {
		existing.Title = update.Title
	}
	if update.Author != nil {
		existing.Author = update.Author
	}
	if update.PageCount != nil {
		existing.PageCount = update.PageCount
	}
}
