package permission_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/permkit/pkg/permission"
)

func TestUserIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, ok := permission.GetUserIDFromContext(ctx)
	assert.False(t, ok)

	ctx = permission.SetUserIDToContext(ctx, "u1")
	userID, ok := permission.GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", userID)
}

func TestService_HasPermissionFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateGroup(ctx, "all", "")
	require.NoError(t, err)
	require.NoError(t, svc.GrantRole(ctx, "u1", "guest", "all", ""))

	assert.False(t, svc.HasPermissionFromContext(ctx, "read", "all", ""), "no user in context denies")

	userCtx := permission.SetUserIDToContext(ctx, "u1")
	assert.True(t, svc.HasPermissionFromContext(userCtx, "read", "all", ""))
	assert.False(t, svc.HasPermissionFromContext(userCtx, "create", "all", ""))
}
