package mongostore

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/permkit/pkg/permission"
)

// Persisted document shapes. Kept separate from the domain types so bson
// layout can evolve independently; uuids are stored as strings for
// readability in the shell and in dumps.

type roleDocument struct {
	Name    string   `bson:"name"`
	Members []string `bson:"uids"`
}

type projectDocument struct {
	ID          string         `bson:"id"`
	Name        string         `bson:"name"`
	Description string         `bson:"desc,omitempty"`
	Roles       []roleDocument `bson:"roles"`
}

type groupDocument struct {
	ID          string            `bson:"_id"`
	Name        string            `bson:"name"`
	Description string            `bson:"desc,omitempty"`
	Roles       []roleDocument    `bson:"roles"`
	Projects    []projectDocument `bson:"projects"`
}

func toRoleDocuments(roles []permission.Role) []roleDocument {
	docs := make([]roleDocument, len(roles))
	for i, r := range roles {
		members := r.Members
		if members == nil {
			members = []string{}
		}
		docs[i] = roleDocument{Name: r.Name, Members: members}
	}
	return docs
}

func toGroupDocument(group permission.Group) groupDocument {
	projects := make([]projectDocument, len(group.Projects))
	for i, p := range group.Projects {
		projects[i] = projectDocument{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Roles:       toRoleDocuments(p.Roles),
		}
	}
	return groupDocument{
		ID:          group.ID.String(),
		Name:        group.Name,
		Description: group.Description,
		Roles:       toRoleDocuments(group.Roles),
		Projects:    projects,
	}
}

func fromRoleDocuments(docs []roleDocument) []permission.Role {
	roles := make([]permission.Role, len(docs))
	for i, d := range docs {
		members := d.Members
		if members == nil {
			members = []string{}
		}
		roles[i] = permission.Role{Name: d.Name, Members: members}
	}
	return roles
}

func (d groupDocument) toDomain() (permission.Group, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return permission.Group{}, errors.Join(ErrInvalidDocument, fmt.Errorf("group %q: %w", d.Name, err))
	}

	projects := make([]permission.Project, len(d.Projects))
	for i, p := range d.Projects {
		pid, err := uuid.Parse(p.ID)
		if err != nil {
			return permission.Group{}, errors.Join(ErrInvalidDocument, fmt.Errorf("project %q in group %q: %w", p.Name, d.Name, err))
		}
		projects[i] = permission.Project{
			ID:          pid,
			Name:        p.Name,
			Description: p.Description,
			Roles:       fromRoleDocuments(p.Roles),
		}
	}

	return permission.Group{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Roles:       fromRoleDocuments(d.Roles),
		Projects:    projects,
	}, nil
}
