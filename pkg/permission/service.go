package permission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/permkit/pkg/catalog"
	"github.com/dmitrymomot/permkit/pkg/logger"
)

// Service is the permission engine: it manages the group/project/role
// hierarchy through a Store and answers permission queries against the
// catalog. It holds no locks and runs no background work; per-group commit
// serialization is the Store's responsibility.
//
// All invariants (one role entry per catalog role from creation onward, at
// most one role per user per scope) are enforced here, not by the store.
// Callers must route every mutation through the service.
type Service struct {
	store   Store
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// Option configures a Service during construction.
type Option func(*Service)

// WithLogger configures the logger for the service. Resolution failures on
// the permission-check path and catalog drift are reported through it.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// NewService creates a permission engine over the given store and catalog.
// The logger discards by default.
func NewService(store Store, cat *catalog.Catalog, opts ...Option) *Service {
	s := &Service{
		store:   store,
		catalog: cat,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// mutateGroup runs one read-modify-write cycle against a group document:
// fetch, apply fn to the fetched copy, persist with a whole-document replace.
func (s *Service) mutateGroup(ctx context.Context, name string, fn func(*Group) error) error {
	group, err := s.store.GetGroupByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("group %q: %w", name, err)
		}
		return err
	}
	if err := fn(&group); err != nil {
		return err
	}
	return s.store.ReplaceGroup(ctx, group)
}

// CreateGroup creates a group seeded with one empty role entry per catalog
// role. It fails with ErrAlreadyExists when the name is taken.
func (s *Service) CreateGroup(ctx context.Context, name, description string) (Group, error) {
	group := Group{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Roles:       seedRoles(s.catalog),
		Projects:    []Project{},
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return Group{}, fmt.Errorf("group %q: %w", name, err)
		}
		return Group{}, err
	}
	return group, nil
}

// EnsureGroup returns the named group, creating it when absent. Useful for
// bootstrap seeding of a root group at startup.
func (s *Service) EnsureGroup(ctx context.Context, name string) (Group, error) {
	group, err := s.store.GetGroupByName(ctx, name)
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Group{}, err
	}

	group, err = s.CreateGroup(ctx, name, "")
	if err == nil {
		return group, nil
	}
	if errors.Is(err, ErrAlreadyExists) {
		// Lost the race to a concurrent creator.
		return s.store.GetGroupByName(ctx, name)
	}
	return Group{}, err
}

// DeleteGroup hard-deletes the group and, implicitly, all of its projects.
// It fails with ErrNotFound when the group is absent.
func (s *Service) DeleteGroup(ctx context.Context, name string) error {
	if err := s.store.DeleteGroup(ctx, name); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("group %q: %w", name, err)
		}
		return err
	}
	return nil
}

// GetGroupByName returns the named group or ErrNotFound.
func (s *Service) GetGroupByName(ctx context.Context, name string) (Group, error) {
	return s.store.GetGroupByName(ctx, name)
}

// ListGroups returns all groups.
func (s *Service) ListGroups(ctx context.Context) ([]Group, error) {
	return s.store.ListGroups(ctx)
}

// CreateProject creates a project inside the group, seeded with one empty
// role entry per catalog role. It fails with ErrNotFound when the group is
// absent and ErrAlreadyExists when the project name collides.
func (s *Service) CreateProject(ctx context.Context, groupName, projectName, description string) error {
	return s.mutateGroup(ctx, groupName, func(g *Group) error {
		if _, ok := g.Project(projectName); ok {
			return fmt.Errorf("project %q in group %q: %w", projectName, groupName, ErrAlreadyExists)
		}
		g.Projects = append(g.Projects, Project{
			ID:          uuid.New(),
			Name:        projectName,
			Description: description,
			Roles:       seedRoles(s.catalog),
		})
		return nil
	})
}

// DeleteProject removes the project from its group. It fails with
// ErrNotFound when the group or the project is absent.
func (s *Service) DeleteProject(ctx context.Context, groupName, projectName string) error {
	return s.mutateGroup(ctx, groupName, func(g *Group) error {
		for i := range g.Projects {
			if g.Projects[i].Name == projectName {
				g.Projects = append(g.Projects[:i], g.Projects[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("project %q in group %q: %w", projectName, groupName, ErrNotFound)
	})
}

// GetProjectByName returns the named project inside the group or ErrNotFound.
func (s *Service) GetProjectByName(ctx context.Context, groupName, projectName string) (Project, error) {
	group, err := s.store.GetGroupByName(ctx, groupName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Project{}, fmt.Errorf("group %q: %w", groupName, err)
		}
		return Project{}, err
	}
	project, ok := group.Project(projectName)
	if !ok {
		return Project{}, fmt.Errorf("project %q in group %q: %w", projectName, groupName, ErrNotFound)
	}
	return *project, nil
}

// GrantRole assigns the role to the user within the group scope, or within
// the project scope when projectName is non-empty. Any previous assignment
// in the same scope is removed first, so a user holds at most one role per
// scope. Granting an already-held role is a no-op.
//
// A role name unknown to both the scope's collection and the catalog fails
// with an UnknownRoleError carrying the full grant context; the collection
// is left untouched.
func (s *Service) GrantRole(ctx context.Context, userID, roleName, groupName, projectName string) error {
	return s.mutateGroup(ctx, groupName, func(g *Group) error {
		roles := g.Roles
		if projectName != "" {
			project, ok := g.Project(projectName)
			if !ok {
				return fmt.Errorf("project %q in group %q: %w", projectName, groupName, ErrNotFound)
			}
			roles = project.Roles
		}

		granted, err := applyGrant(s.catalog, roles, userID, roleName)
		if err != nil {
			return &UnknownRoleError{
				UserID:      userID,
				RoleName:    roleName,
				GroupName:   groupName,
				ProjectName: projectName,
			}
		}

		if projectName != "" {
			project, _ := g.Project(projectName)
			project.Roles = granted
		} else {
			g.Roles = granted
		}
		return nil
	})
}

// RevokeRole removes the user from every role in the group scope, or in the
// project scope when projectName is non-empty. Revoking an unassigned user
// is a no-op.
func (s *Service) RevokeRole(ctx context.Context, userID, groupName, projectName string) error {
	return s.mutateGroup(ctx, groupName, func(g *Group) error {
		roles := g.Roles
		if projectName != "" {
			project, ok := g.Project(projectName)
			if !ok {
				return fmt.Errorf("project %q in group %q: %w", projectName, groupName, ErrNotFound)
			}
			roles = project.Roles
		}
		scrubUser(roles, userID)
		return nil
	})
}

// HasPermission reports whether the user may perform the action within the
// group, or within the project when projectName is non-empty. Group-level
// and project-level role permissions are OR-combined: a permissive group
// role is retained inside every project of that group regardless of the
// project-level assignment.
//
// The check never fails: an unresolvable scope, an unknown action or role,
// and any store error all collapse to false.
func (s *Service) HasPermission(ctx context.Context, userID, action, groupName, projectName string) bool {
	group, err := s.store.GetGroupByName(ctx, groupName)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.WarnContext(ctx, "permission check failed closed",
				logger.UserID(userID),
				logger.Action(action),
				logger.Group(groupName),
				logger.Error(err))
		}
		return false
	}

	has := false
	if groupRole, ok := roleOf(userID, group.Roles); ok {
		has = s.roleAllows(ctx, groupRole, action, "group scope")
	}

	if projectName != "" {
		project, ok := group.Project(projectName)
		if !ok {
			return false
		}
		if projectRole, ok := roleOf(userID, project.Roles); ok {
			has = has || s.roleAllows(ctx, projectRole, action, "project scope")
		}
	}

	return has
}

// roleAllows checks the catalog, logging drift when stored data references a
// role the catalog no longer defines. Drifted roles grant nothing.
func (s *Service) roleAllows(ctx context.Context, roleName, action, scope string) bool {
	if !s.catalog.Has(roleName) {
		s.logger.WarnContext(ctx, "stored role missing from catalog",
			logger.Role(roleName),
			slog.String("scope", scope))
		return false
	}
	return s.catalog.Allows(roleName, action)
}

// RolesForUser returns, for every group where the user holds a group-level
// role or an effective role in at least one project, the group-level role
// and the per-project effective roles.
func (s *Service) RolesForUser(ctx context.Context, userID string) ([]GroupRoles, error) {
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	var result []GroupRoles
	for _, group := range groups {
		groupRole, _ := roleOf(userID, group.Roles)
		projects := projectRolesFor(userID, group, groupRole)
		if groupRole != "" || len(projects) > 0 {
			result = append(result, GroupRoles{
				GroupName: group.Name,
				Role:      groupRole,
				Projects:  projects,
			})
		}
	}
	return result, nil
}

// RolesInGroup returns the user's effective role for every project of the
// group: the project-level role when held, otherwise the group-level role
// inherited into the project, otherwise the project is omitted.
func (s *Service) RolesInGroup(ctx context.Context, userID, groupName string) ([]ProjectRole, error) {
	group, err := s.store.GetGroupByName(ctx, groupName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("group %q: %w", groupName, err)
		}
		return nil, err
	}
	groupRole, _ := roleOf(userID, group.Roles)
	return projectRolesFor(userID, group, groupRole), nil
}

// RoleInProject resolves the user's single effective role in the project:
// the project-level role when held, else the inherited group-level role.
// The boolean is false when the user holds neither.
func (s *Service) RoleInProject(ctx context.Context, userID, groupName, projectName string) (string, bool, error) {
	group, err := s.store.GetGroupByName(ctx, groupName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, fmt.Errorf("group %q: %w", groupName, err)
		}
		return "", false, err
	}
	project, ok := group.Project(projectName)
	if !ok {
		return "", false, fmt.Errorf("project %q in group %q: %w", projectName, groupName, ErrNotFound)
	}

	if role, ok := roleOf(userID, project.Roles); ok {
		return role, true, nil
	}
	if role, ok := roleOf(userID, group.Roles); ok {
		return role, true, nil
	}
	return "", false, nil
}

// projectRolesFor computes the effective role per project: project-level
// assignment wins, group-level role is inherited, projects with neither are
// omitted.
func projectRolesFor(userID string, group Group, groupRole string) []ProjectRole {
	var result []ProjectRole
	for _, p := range group.Projects {
		if role, ok := roleOf(userID, p.Roles); ok {
			result = append(result, ProjectRole{ProjectName: p.Name, Role: role})
		} else if groupRole != "" {
			result = append(result, ProjectRole{ProjectName: p.Name, Role: groupRole})
		}
	}
	return result
}
