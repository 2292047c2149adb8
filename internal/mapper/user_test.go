package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/booklib-backend/internal/dto"
	"github.com/edulab/booklib-backend/internal/pkg/pointers"
	"github.com/edulab/booklib-backend/internal/types"
)

func TestUserRoundTripPreservesNonNilFields(t *testing.T) {
	in := &dto.UserDto{
		ID:       5,
		FullName: pointers.String("Ann"),
		Title:    pointers.String("reader"),
		Age:      pointers.Int(30),
	}
	out := PersonToUserDto(UserDtoToPerson(in))
	require.NotNil(t, out)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, *in.FullName, *out.FullName)
	assert.Equal(t, *in.Title, *out.Title)
	assert.Equal(t, *in.Age, *out.Age)
}

func TestUserDtoToPersonNeverCarriesRating(t *testing.T) {
	p := UserDtoToPerson(&dto.UserDto{ID: 1, FullName: pointers.String("Bob")})
	require.NotNil(t, p)
	assert.Nil(t, p.Rating)
}

func TestMergePerson(t *testing.T) {
	cases := []struct {
		name     string
		update   *types.Person
		wantName string
		wantTitl string
		wantAge  int
	}{
		{
			name:     "only_title_set",
			update:   &types.Person{Title: pointers.String("new")},
			wantName: "Ann",
			wantTitl: "new",
			wantAge:  30,
		},
		{
			name:     "all_fields_set",
			update:   &types.Person{FullName: pointers.String("Bea"), Title: pointers.String("t"), Age: pointers.Int(41)},
			wantName: "Bea",
			wantTitl: "t",
			wantAge:  41,
		},
		{
			name:     "nothing_set",
			update:   &types.Person{},
			wantName: "Ann",
			wantTitl: "old",
			wantAge:  30,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			existing := &types.Person{
				ID:       5,
				FullName: pointers.String("Ann"),
				Title:    pointers.String("old"),
				Age:      pointers.Int(30),
				Rating:   pointers.Int(7),
			}
			MergePerson(tc.update, existing)
			assert.Equal(t, int64(5), existing.ID)
			assert.Equal(t, tc.wantName, *existing.FullName)
			assert.Equal(t, tc.wantTitl, *existing.Title)
			assert.Equal(t, tc.wantAge, *existing.Age)
			// rating is persistence-only and must survive any merge
			require.NotNil(t, existing.Rating)
			assert.Equal(t, 7, *existing.Rating)
		})
	}
}

func TestMergePersonNilArgsAreNoops(t *testing.T) {
	MergePerson(nil, nil)
	existing := &types.Person{FullName: pointers.String("Ann")}
	MergePerson(nil, existing)
	assert.Equal(t, "Ann", *existing.FullName)
}
