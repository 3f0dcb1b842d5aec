package permission

import "context"

// Store is the persistence boundary of the engine: document-style CRUD over
// groups keyed by their unique name. Projects and role memberships live
// inside the group document and are mutated through whole-document replace
// cycles driven by the service, never through partial field updates.
//
// Contract:
//   - CreateGroup fails with ErrAlreadyExists when the name is taken.
//   - GetGroupByName and DeleteGroup fail with ErrNotFound when absent.
//   - Reads return independent copies; mutating a returned group does not
//     affect stored state until ReplaceGroup commits it.
//   - ReplaceGroup persists the full document atomically and is serialized
//     against concurrent replaces of the same group (last committed wins).
//     Replaces of different groups are independent.
type Store interface {
	CreateGroup(ctx context.Context, group Group) error
	GetGroupByName(ctx context.Context, name string) (Group, error)
	ListGroups(ctx context.Context) ([]Group, error)
	ReplaceGroup(ctx context.Context, group Group) error
	DeleteGroup(ctx context.Context, name string) error
}
