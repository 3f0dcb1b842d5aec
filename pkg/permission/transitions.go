package permission

import (
	"slices"

	"github.com/dmitrymomot/permkit/pkg/catalog"
)

// Pure state transitions over role collections. The service applies these to
// a fetched group copy and persists the result in one whole-document replace,
// keeping the algorithm testable without a store.

// seedRoles builds the initial role collection for a new group or project:
// exactly one empty entry per catalog role, in lexical order.
func seedRoles(cat *catalog.Catalog) []Role {
	names := cat.Roles()
	roles := make([]Role, len(names))
	for i, name := range names {
		roles[i] = Role{Name: name, Members: []string{}}
	}
	return roles
}

// roleOf returns the name of the first role whose member set contains the
// user. The exclusivity invariant guarantees at most one match per scope.
func roleOf(userID string, roles []Role) (string, bool) {
	for _, r := range roles {
		if r.HasMember(userID) {
			return r.Name, true
		}
	}
	return "", false
}

// scrubUser removes the user from every role's member list in place.
func scrubUser(roles []Role, userID string) {
	for i := range roles {
		roles[i].Members = slices.DeleteFunc(roles[i].Members, func(id string) bool {
			return id == userID
		})
	}
}

// applyGrant assigns the role to the user within the collection, scrubbing
// any previous assignment first so a user holds at most one role per scope.
// A role entry missing from the collection is recreated when the catalog
// knows the name; otherwise the collection is returned unchanged along with
// ErrUnknownRole.
func applyGrant(cat *catalog.Catalog, roles []Role, userID, roleName string) ([]Role, error) {
	idx := slices.IndexFunc(roles, func(r Role) bool { return r.Name == roleName })
	if idx == -1 && !cat.Has(roleName) {
		return roles, ErrUnknownRole
	}

	scrubUser(roles, userID)

	if idx == -1 {
		return append(roles, Role{Name: roleName, Members: []string{userID}}), nil
	}
	if !roles[idx].HasMember(userID) {
		roles[idx].Members = append(roles[idx].Members, userID)
	}
	return roles, nil
}
