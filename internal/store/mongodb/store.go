// Package mongodb reads and writes recipe documents in their document store.
// Documents are addressed either by the store's native 24-character object id
// or by the relational recipe id they mirror.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vk/cookgraph/internal/ctxlog"
	"github.com/vk/cookgraph/internal/recipe"
)

// NotFoundError reports a lookup that matched no document.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("recipe document %s not found", e.Key)
}

// Store is a handle on one recipe collection.
type Store struct {
	client *mongo.Client
	col    *mongo.Collection
}

// Open connects to the document store and selects the recipe collection.
func Open(ctx context.Context, uri, database, collection string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}
	return &Store{
		client: client,
		col:    client.Database(database).Collection(collection),
	}, nil
}

// Close disconnects from the document store.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// FetchByObjectID retrieves one document by its 24-character hex object id.
func (s *Store) FetchByObjectID(ctx context.Context, hex string) (*recipe.Document, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid document object id %q: %w", hex, err)
	}
	return s.fetch(ctx, bson.M{"_id": oid}, hex)
}

// FetchByRecipeID retrieves one document by the relational recipe id it
// mirrors.
func (s *Store) FetchByRecipeID(ctx context.Context, id int) (*recipe.Document, error) {
	return s.fetch(ctx, bson.M{"id": id}, fmt.Sprintf("%d", id))
}

func (s *Store) fetch(ctx context.Context, filter bson.M, key string) (*recipe.Document, error) {
	logger := ctxlog.FromContext(ctx)

	raw, err := s.col.FindOne(ctx, filter).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Key: key}
		}
		return nil, fmt.Errorf("failed to fetch recipe document %s: %w", key, err)
	}

	var doc recipe.Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode recipe document %s: %w", key, err)
	}
	if oid, ok := raw.Lookup("_id").ObjectIDOK(); ok {
		doc.ObjectID = oid.Hex()
	}
	logger.Debug("Fetched recipe document.", "key", key, "object_id", doc.ObjectID)
	return &doc, nil
}

// Save inserts the document, or replaces it when it already carries an
// object id. It returns the document's object id.
func (s *Store) Save(ctx context.Context, doc *recipe.Document) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if doc.ObjectID == "" {
		res, err := s.col.InsertOne(ctx, doc)
		if err != nil {
			return "", fmt.Errorf("failed to insert recipe document: %w", err)
		}
		oid, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			return "", fmt.Errorf("document store returned unexpected id type %T", res.InsertedID)
		}
		doc.ObjectID = oid.Hex()
		logger.Debug("Inserted recipe document.", "object_id", doc.ObjectID)
		return doc.ObjectID, nil
	}

	oid, err := primitive.ObjectIDFromHex(doc.ObjectID)
	if err != nil {
		return "", fmt.Errorf("invalid document object id %q: %w", doc.ObjectID, err)
	}
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc, options.Replace().SetUpsert(true)); err != nil {
		return "", fmt.Errorf("failed to replace recipe document %s: %w", doc.ObjectID, err)
	}
	logger.Debug("Replaced recipe document.", "object_id", doc.ObjectID)
	return doc.ObjectID, nil
}
