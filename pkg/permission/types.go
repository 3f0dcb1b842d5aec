package permission

import (
	"slices"

	"github.com/google/uuid"
)

// Role is a catalog role instantiated within a single scope: the set of user
// IDs currently holding that role in a group or project. A role entry exists
// from the moment its owning scope is created, even when nobody holds it.
type Role struct {
	Name    string
	Members []string
}

// HasMember reports whether the user currently holds this role.
func (r Role) HasMember(userID string) bool {
	return slices.Contains(r.Members, userID)
}

// Project is a sub-scope owned by exactly one group. Project names are unique
// within the owning group and immutable after creation.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	Roles       []Role
}

// Group is the top-level authorization scope. Group names are globally unique
// and immutable after creation. Every project is owned by exactly one group;
// deleting the group discards its projects.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	Roles       []Role
	Projects    []Project
}

// Project returns a pointer to the named project inside the group, or false
// when no such project exists. The pointer addresses the group's own slice,
// so mutations through it are visible on the group.
func (g *Group) Project(name string) (*Project, bool) {
	for i := range g.Projects {
		if g.Projects[i].Name == name {
			return &g.Projects[i], true
		}
	}
	return nil, false
}

// ProjectRole pairs a project with the role effective for a user there,
// whether held directly or inherited from the group level.
type ProjectRole struct {
	ProjectName string
	Role        string
}

// GroupRoles describes every role a user holds within one group: the
// group-level role (empty when none) and the effective role per project.
type GroupRoles struct {
	GroupName string
	Role      string
	Projects  []ProjectRole
}

func cloneRoles(roles []Role) []Role {
	copied := make([]Role, len(roles))
	for i, r := range roles {
		copied[i] = Role{Name: r.Name, Members: slices.Clone(r.Members)}
	}
	return copied
}

func cloneGroup(g Group) Group {
	copied := g
	copied.Roles = cloneRoles(g.Roles)
	copied.Projects = make([]Project, len(g.Projects))
	for i, p := range g.Projects {
		copied.Projects[i] = Project{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Roles:       cloneRoles(p.Roles),
		}
	}
	return copied
}
