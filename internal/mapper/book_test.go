package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/booklib-backend/internal/dto"
	"github.com/edulab/booklib-backend/internal/pkg/pointers"
	"github.com/edulab/booklib-backend/internal/types"
)

func TestBookRoundTripPreservesNonNilFields(t *testing.T) {
	in := &dto.BookDto{
		ID:        12,
		UserID:    pointers.Int64(5),
		Title:     pointers.String("Go"),
		Author:    pointers.String("Pike"),
		PageCount: pointers.Int64(320),
	}
	out := BookToBookDto(BookDtoToBook(in))
	require.NotNil(t, out)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, *in.UserID, *out.UserID)
	assert.Equal(t, *in.Title, *out.Title)
	assert.Equal(t, *in.Author, *out.Author)
	assert.Equal(t, *in.PageCount, *out.PageCount)
}

func TestMergeBookSkipsNilFields(t *testing.T) {
	existing := &types.Book{
		ID:        12,
		UserID:    pointers.Int64(5),
		Title:     pointers.String("Go"),
		Author:    pointers.String("Pike"),
		PageCount: pointers.Int64(320),
	}
	MergeBook(&types.Book{Author: pointers.String("Thompson")}, existing)
	assert.Equal(t, int64(12), existing.ID)
	assert.Equal(t, int64(5), *existing.UserID)
	assert.Equal(t, "Go", *existing.Title)
	assert.Equal(t, "Thompson", *existing.Author)
	assert.Equal(t, int64(320), *existing.PageCount)
}
