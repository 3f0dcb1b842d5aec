package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/permkit/pkg/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(map[string][]string{
		"master":    {"create", "add_user"},
		"developer": {"create", "read"},
		"guest":     {"read"},
	})
}

func TestSeedRoles(t *testing.T) {
	t.Parallel()

	roles := seedRoles(testCatalog())

	require.Len(t, roles, 3)
	assert.Equal(t, "developer", roles[0].Name)
	assert.Equal(t, "guest", roles[1].Name)
	assert.Equal(t, "master", roles[2].Name)
	for _, r := range roles {
		assert.Empty(t, r.Members)
		assert.NotNil(t, r.Members)
	}
}

func TestRoleOf(t *testing.T) {
	t.Parallel()

	roles := []Role{
		{Name: "developer", Members: []string{"u1", "u2"}},
		{Name: "guest", Members: []string{"u3"}},
	}

	role, ok := roleOf("u2", roles)
	assert.True(t, ok)
	assert.Equal(t, "developer", role)

	role, ok = roleOf("u3", roles)
	assert.True(t, ok)
	assert.Equal(t, "guest", role)

	_, ok = roleOf("u4", roles)
	assert.False(t, ok)
}

func TestApplyGrant(t *testing.T) {
	t.Parallel()

	t.Run("moves user between roles", func(t *testing.T) {
		t.Parallel()

		roles := []Role{
			{Name: "developer", Members: []string{"u1"}},
			{Name: "guest", Members: []string{}},
		}

		granted, err := applyGrant(testCatalog(), roles, "u1", "guest")
		require.NoError(t, err)

		role, ok := roleOf("u1", granted)
		require.True(t, ok)
		assert.Equal(t, "guest", role)
		assert.Empty(t, granted[0].Members)
	})

	t.Run("re-grant is idempotent", func(t *testing.T) {
		t.Parallel()

		roles := []Role{{Name: "guest", Members: []string{"u1"}}}

		granted, err := applyGrant(testCatalog(), roles, "u1", "guest")
		require.NoError(t, err)
		assert.Equal(t, []string{"u1"}, granted[0].Members)
	})

	t.Run("recreates missing catalog role entry", func(t *testing.T) {
		t.Parallel()

		roles := []Role{{Name: "guest", Members: []string{"u1"}}}

		granted, err := applyGrant(testCatalog(), roles, "u1", "developer")
		require.NoError(t, err)
		require.Len(t, granted, 2)
		assert.Equal(t, Role{Name: "developer", Members: []string{"u1"}}, granted[1])
		assert.Empty(t, granted[0].Members)
	})

	t.Run("unknown role leaves collection unchanged", func(t *testing.T) {
		t.Parallel()

		roles := []Role{{Name: "guest", Members: []string{"u1"}}}

		_, err := applyGrant(testCatalog(), roles, "u1", "superhero")
		require.ErrorIs(t, err, ErrUnknownRole)
		assert.Equal(t, []string{"u1"}, roles[0].Members)
	})
}

func TestScrubUser(t *testing.T) {
	t.Parallel()

	roles := []Role{
		{Name: "developer", Members: []string{"u1", "u2"}},
		{Name: "guest", Members: []string{"u1"}},
	}

	scrubUser(roles, "u1")

	assert.Equal(t, []string{"u2"}, roles[0].Members)
	assert.Empty(t, roles[1].Members)

	// Scrubbing an absent user is a no-op.
	scrubUser(roles, "u9")
	assert.Equal(t, []string{"u2"}, roles[0].Members)
}
