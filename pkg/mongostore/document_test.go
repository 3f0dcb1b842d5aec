package mongostore

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/permkit/pkg/permission"
)

func TestGroupDocumentConversion(t *testing.T) {
	t.Parallel()

	group := permission.Group{
		ID:          uuid.New(),
		Name:        "all",
		Description: "root group",
		Roles: []permission.Role{
			{Name: "developer", Members: []string{"u1"}},
			{Name: "guest", Members: []string{}},
		},
		Projects: []permission.Project{
			{
				ID:   uuid.New(),
				Name: "website",
				Roles: []permission.Role{
					{Name: "guest", Members: []string{"u2"}},
				},
			},
		},
	}

	restored, err := toGroupDocument(group).toDomain()
	require.NoError(t, err)
	assert.Equal(t, group, restored)
}

func TestGroupDocumentConversion_NilMembers(t *testing.T) {
	t.Parallel()

	// Documents written by older tooling may carry null member arrays; the
	// domain contract is an empty slice.
	doc := groupDocument{
		ID:    uuid.NewString(),
		Name:  "all",
		Roles: []roleDocument{{Name: "guest", Members: nil}},
	}

	group, err := doc.toDomain()
	require.NoError(t, err)
	require.Len(t, group.Roles, 1)
	assert.NotNil(t, group.Roles[0].Members)
	assert.Empty(t, group.Roles[0].Members)
}

func TestGroupDocumentConversion_InvalidID(t *testing.T) {
	t.Parallel()

	doc := groupDocument{ID: "not-a-uuid", Name: "all"}
	_, err := doc.toDomain()
	assert.True(t, errors.Is(err, ErrInvalidDocument))

	doc = groupDocument{
		ID:       uuid.NewString(),
		Name:     "all",
		Projects: []projectDocument{{ID: "nope", Name: "website"}},
	}
	_, err = doc.toDomain()
	assert.True(t, errors.Is(err, ErrInvalidDocument))
}
