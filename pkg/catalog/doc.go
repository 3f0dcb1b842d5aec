// Package catalog provides the static permission catalog for the permission
// engine: a process-wide, immutable mapping of role names to the actions
// those roles are allowed to perform.
//
// The catalog is loaded once at startup and never mutated, so it is safe to
// share across goroutines without synchronization. Role membership itself is
// stored per scope by the permission engine; the catalog only answers "what
// may a role do" and "is this a known role".
//
// Key concepts:
//
//   - Role: a named bundle of permitted actions (e.g. "developer")
//   - Action: a plain action name checked at authorization time (e.g. "read")
//   - Drift tolerance: a role name found in stored data but absent from the
//     catalog simply has no permissions; the engine logs and denies rather
//     than failing the request
//
// Basic usage:
//
//	// From a static map
//	cat := catalog.New(map[string][]string{
//	    "developer": {"create", "read", "update"},
//	    "guest":     {"read"},
//	})
//
//	// Or from a YAML file referenced by PERMISSION_CATALOG_PATH
//	var cfg catalog.Config
//	config.MustLoad(&cfg)
//	cat, err := catalog.Load(cfg)
//
//	cat.Allows("developer", "create") // true
//	cat.Allows("guest", "create")     // false
//	cat.Has("nonexistent")            // false
package catalog
