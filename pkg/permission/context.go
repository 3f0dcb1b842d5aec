package permission

import "context"

// userCtxKey is the context key for storing the authenticated user ID.
type userCtxKey struct{}

// SetUserIDToContext stores the authenticated user's ID in the context.
func SetUserIDToContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userCtxKey{}, userID)
}

// GetUserIDFromContext retrieves the authenticated user's ID from the context.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userCtxKey{}).(string)
	return userID, ok
}

// HasPermissionFromContext checks the action for the user ID stored in the
// context. A context without a user ID denies, consistent with the
// fail-closed policy of HasPermission.
func (s *Service) HasPermissionFromContext(ctx context.Context, action, groupName, projectName string) bool {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return false
	}
	return s.HasPermission(ctx, userID, action, groupName, projectName)
}
