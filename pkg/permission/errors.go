package permission

import (
	"errors"
	"fmt"
)

// Domain errors for permission engine operations.
var (
	// ErrAlreadyExists is returned when creating a group or project whose
	// name collides with an existing one.
	ErrAlreadyExists = errors.New("permission.already_exists")

	// ErrNotFound is returned when a mutation references a missing group or
	// project. Permission checks never surface it; they deny instead.
	ErrNotFound = errors.New("permission.not_found")

	// ErrUnknownRole is returned when a grant targets a role name absent from
	// both the scope's role collection and the catalog.
	ErrUnknownRole = errors.New("permission.unknown_role")

	// ErrUserNotInContext is returned when no user ID is found in the context.
	ErrUserNotInContext = errors.New("permission.user_not_in_context")
)

// UnknownRoleError is the typed failure for a grant targeting an undefined
// role. It carries the full grant context for operator diagnosis and matches
// ErrUnknownRole via errors.Is.
type UnknownRoleError struct {
	UserID      string
	RoleName    string
	GroupName   string
	ProjectName string
}

func (e *UnknownRoleError) Error() string {
	if e.ProjectName == "" {
		return fmt.Sprintf("unknown role %q granting to user %q in group %q", e.RoleName, e.UserID, e.GroupName)
	}
	return fmt.Sprintf("unknown role %q granting to user %q in project %q of group %q", e.RoleName, e.UserID, e.ProjectName, e.GroupName)
}

func (e *UnknownRoleError) Unwrap() error {
	return ErrUnknownRole
}
