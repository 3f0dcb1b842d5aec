// Package mongostore provides the MongoDB implementation of the permission
// engine's Store interface.
//
// Each group is persisted as a single document with its projects and role
// member lists nested inside. The engine mutates groups through
// read-modify-write cycles ending in a whole-document ReplaceOne keyed by
// the unique group name; MongoDB serializes writes to one document, so
// concurrent commits to the same group resolve to last-committed-wins while
// commits to different groups proceed in parallel. Partial field updates are
// deliberately not offered: per-field upserts could interleave two grants
// into a corrupt member list.
//
// Configuration is environment-driven (see Config) and the connector retries
// transient failures, which handles MongoDB Atlas hiccups at startup without
// operator intervention.
//
// # Usage
//
//	var cfg mongostore.Config
//	config.MustLoad(&cfg)
//
//	store, err := mongostore.NewFromConfig(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	svc := permission.NewService(store, catalog.Default())
//
// The unique index on the group name backs AlreadyExists detection; call
// EnsureIndexes once at startup when constructing the store manually.
package mongostore
