package permission_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentMutationsAcrossGroups(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	const groups = 20

	for i := 0; i < groups; i++ {
		_, err := svc.CreateGroup(ctx, fmt.Sprintf("group-%d", i), "")
		require.NoError(t, err)
	}

	// Mutations to different groups are independent and must all land.
	var wg sync.WaitGroup
	for i := 0; i < groups; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("group-%d", i)
			assert.NoError(t, svc.GrantRole(ctx, "u1", "developer", name, ""))
			assert.NoError(t, svc.CreateProject(ctx, name, "api", ""))
		}()
	}
	wg.Wait()

	for i := 0; i < groups; i++ {
		name := fmt.Sprintf("group-%d", i)
		assert.True(t, svc.HasPermission(ctx, "u1", "read", name, ""))
		_, err := svc.GetProjectByName(ctx, name, "api")
		assert.NoError(t, err)
	}
}

func TestConcurrentChecksDuringMutation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateGroup(ctx, "all", "")
	require.NoError(t, err)
	require.NoError(t, svc.GrantRole(ctx, "u1", "developer", "all", ""))

	// Permission checks racing grant/revoke of other users must neither
	// error nor observe a corrupt state; u1's assignment is untouched.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			userID := fmt.Sprintf("writer-%d", i)
			for n := 0; n < 20; n++ {
				_ = svc.GrantRole(ctx, userID, "guest", "all", "")
				_ = svc.RevokeRole(ctx, userID, "all", "")
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				assert.True(t, svc.HasPermission(ctx, "u1", "read", "all", ""))
			}
		}()
	}
	wg.Wait()

	group, err := svc.GetGroupByName(ctx, "all")
	require.NoError(t, err)
	for _, role := range group.Roles {
		for _, member := range role.Members {
			if member == "u1" {
				assert.Equal(t, "developer", role.Name)
			}
		}
	}
}
