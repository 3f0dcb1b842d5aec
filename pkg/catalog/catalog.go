package catalog

import (
	"errors"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Catalog is an immutable mapping of role names to the actions those roles
// may perform. It is built once at process start and shared without
// synchronization; all accessors return copies so callers cannot mutate the
// underlying data.
type Catalog struct {
	roles map[string][]string
}

// New creates a catalog from a role→actions map. The input is deep-copied and
// action lists are de-duplicated, so the caller may reuse or modify the map
// afterwards.
func New(roles map[string][]string) *Catalog {
	copied := make(map[string][]string, len(roles))
	for name, actions := range roles {
		seen := make(map[string]struct{}, len(actions))
		list := make([]string, 0, len(actions))
		for _, a := range actions {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			list = append(list, a)
		}
		copied[name] = list
	}
	return &Catalog{roles: copied}
}

// LoadFile reads a YAML file mapping role names to action lists:
//
//	master:
//	  - create
//	  - add_user
//	guest:
//	  - read
func LoadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	var roles map[string][]string
	if err := yaml.Unmarshal(content, &roles); err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	if len(roles) == 0 {
		return nil, ErrEmptyCatalog
	}

	return New(roles), nil
}

// Load builds a catalog from configuration: it loads the YAML file referenced
// by cfg.Path, falling back to Default when no path is configured.
func Load(cfg Config) (*Catalog, error) {
	if cfg.Path == "" {
		return Default(), nil
	}
	return LoadFile(cfg.Path)
}

// Default returns the built-in three-tier catalog: master administers groups
// and users, developer manages content, guest reads.
func Default() *Catalog {
	return New(map[string][]string{
		"master": {
			"create",
			"delete@all",
			"read@all",
			"update@all",
			"release@all",
			"add_user",
			"delete_user",
			"update_user",
			"add_group",
			"delete_group",
			"update_group",
		},
		"developer": {
			"create",
			"delete",
			"read",
			"update",
			"release",
		},
		"guest": {
			"read",
		},
	})
}

// Has reports whether the catalog defines the given role name.
func (c *Catalog) Has(role string) bool {
	_, ok := c.roles[role]
	return ok
}

// Actions returns the actions permitted to the role. Unknown roles yield nil.
// The returned slice is a copy and safe to modify.
func (c *Catalog) Actions(role string) []string {
	actions, ok := c.roles[role]
	if !ok {
		return nil
	}
	return slices.Clone(actions)
}

// Allows reports whether the role permits the action. Unknown roles allow
// nothing.
func (c *Catalog) Allows(role, action string) bool {
	return slices.Contains(c.roles[role], action)
}

// Roles returns all defined role names in lexical order.
func (c *Catalog) Roles() []string {
	names := make([]string, 0, len(c.roles))
	for name := range c.roles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
