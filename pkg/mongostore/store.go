package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/permkit/pkg/permission"
)

// Ensure Store implements permission.Store.
var _ permission.Store = (*Store)(nil)

// Store is the MongoDB implementation of permission.Store. Each group is one
// document; every mutation the engine performs is a whole-document replace
// keyed by the unique group name, so concurrent commits to the same group
// serialize to last-committed-wins while different groups stay independent.
type Store struct {
	collection *mongo.Collection
}

// New creates a Store over the given collection.
// Call EnsureIndexes once at startup to install the unique name index that
// backs AlreadyExists detection.
func New(db *mongo.Database, collection string) *Store {
	return &Store{collection: db.Collection(collection)}
}

// NewFromConfig connects to MongoDB and returns a ready Store.
func NewFromConfig(ctx context.Context, cfg Config) (*Store, error) {
	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store := New(client.Database(cfg.Database), cfg.Collection)
	if err := store.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// EnsureIndexes installs the unique index on the group name. Idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create group name index: %w", err)
	}
	return nil
}

func (s *Store) CreateGroup(ctx context.Context, group permission.Group) error {
	if _, err := s.collection.InsertOne(ctx, toGroupDocument(group)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return permission.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert group: %w", err)
	}
	return nil
}

func (s *Store) GetGroupByName(ctx context.Context, name string) (permission.Group, error) {
	var doc groupDocument
	err := s.collection.FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return permission.Group{}, permission.ErrNotFound
		}
		return permission.Group{}, fmt.Errorf("failed to fetch group: %w", err)
	}
	return doc.toDomain()
}

func (s *Store) ListGroups(ctx context.Context) ([]permission.Group, error) {
	cursor, err := s.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var docs []groupDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode groups: %w", err)
	}

	groups := make([]permission.Group, 0, len(docs))
	for _, doc := range docs {
		group, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *Store) ReplaceGroup(ctx context.Context, group permission.Group) error {
	result, err := s.collection.ReplaceOne(ctx,
		bson.D{{Key: "name", Value: group.Name}},
		toGroupDocument(group),
	)
	if err != nil {
		return fmt.Errorf("failed to replace group: %w", err)
	}
	if result.MatchedCount == 0 {
		return permission.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteGroup(ctx context.Context, name string) error {
	result, err := s.collection.DeleteOne(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if result.DeletedCount == 0 {
		return permission.ErrNotFound
	}
	return nil
}
