// Package permission provides a multi-tenant permission engine: it decides
// whether a user may perform a named action within a hierarchical scope of
// groups and projects, and manages the role assignments that drive those
// decisions.
//
// The hierarchy is Group → Project → Role → member user IDs. Roles are
// defined by an immutable catalog (see pkg/catalog); every group and project
// is born with one empty role entry per catalog role, and those entries
// persist until the owning scope is deleted. Within one scope a user holds
// at most one role: granting a role first removes any previous assignment.
//
// Permission checks OR-combine the two scope levels: a user keeps the
// permissions of their group-level role inside every project of that group,
// even where they hold a lesser project role or none at all. This mirrors
// the common expectation that group administrators retain their rights
// everywhere in the group. For role *resolution* queries the precedence is
// the opposite: a project-level assignment wins over the inherited
// group-level role.
//
// Persistence goes through the Store interface — document-style CRUD per
// group with whole-document replace semantics. The engine performs one
// read-modify-write cycle per mutation and relies on the store to serialize
// commits to the same group document. NewMemoryStore provides a thread-safe
// in-memory implementation for tests; pkg/mongostore provides the MongoDB
// one.
//
// Error policy: mutations surface typed failures (ErrAlreadyExists,
// ErrNotFound, UnknownRoleError) and are never retried internally.
// Permission checks never fail: unresolvable scopes, unknown actions or
// roles, and store errors all collapse to an access denial, so a transient
// outage cannot be distinguished from a missing permission and always fails
// closed.
//
// Basic usage:
//
//	cat := catalog.Default()
//	svc := permission.NewService(permission.NewMemoryStore(), cat,
//	    permission.WithLogger(logger))
//
//	// Bootstrap a root group and its first administrator.
//	if _, err := svc.EnsureGroup(ctx, "all"); err != nil {
//	    return err
//	}
//	if err := svc.GrantRole(ctx, adminID, "master", "all", ""); err != nil {
//	    return err
//	}
//
//	// Scope management and membership.
//	if err := svc.CreateProject(ctx, "all", "website", "public site"); err != nil {
//	    return err
//	}
//	if err := svc.GrantRole(ctx, userID, "developer", "all", "website"); err != nil {
//	    return err
//	}
//
//	// Authorization.
//	if !svc.HasPermission(ctx, userID, "release", "all", "website") {
//	    return ErrForbidden
//	}
package permission
