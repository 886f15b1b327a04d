package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/exemplo/crudmongo-api/internal/document"
)

const mongoIDField = "_id"

// MongoStore maps collections onto MongoDB collections keyed by ObjectID.
// Identifiers that are not valid ObjectID hex strings never match a document.
type MongoStore struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

func NewMongoStore(client *mongo.Client, database string, timeout time.Duration) *MongoStore {
	return &MongoStore{client: client, db: client.Database(database), timeout: timeout}
}

func (s *MongoStore) NewID() string {
	return primitive.NewObjectID().Hex()
}

func (s *MongoStore) FindAll(ctx context.Context, collection string) ([]Record, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	records := []Record{}
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode %s: %w", collection, err)
		}
		records = append(records, recordFromBSON(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return records, nil
}

func (s *MongoStore) FindByID(ctx context.Context, collection, id string) (document.Doc, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoDocument
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var raw bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.D{{Key: mongoIDField, Value: oid}}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("find %s/%s: %w", collection, id, err)
	}
	return recordFromBSON(raw).Doc, nil
}

func (s *MongoStore) Exists(ctx context.Context, collection, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	count, err := s.db.Collection(collection).CountDocuments(ctx, bson.D{{Key: mongoIDField, Value: oid}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count %s/%s: %w", collection, id, err)
	}
	return count > 0, nil
}

func (s *MongoStore) Replace(ctx context.Context, collection, id string, doc document.Doc) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("replace %s: invalid object id %q", collection, id)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	_, err = s.db.Collection(collection).ReplaceOne(ctx,
		bson.D{{Key: mongoIDField, Value: oid}},
		toBSON(oid, doc),
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("replace %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.D{{Key: mongoIDField, Value: oid}}); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func toBSON(oid primitive.ObjectID, doc document.Doc) bson.D {
	out := make(bson.D, 0, len(doc)+1)
	out = append(out, bson.E{Key: mongoIDField, Value: oid})
	for _, f := range doc {
		if f.Key == mongoIDField {
			continue
		}
		out = append(out, bson.E{Key: f.Key, Value: f.Value})
	}
	return out
}

func recordFromBSON(raw bson.M) Record {
	var id string
	switch v := raw[mongoIDField].(type) {
	case primitive.ObjectID:
		id = v.Hex()
	case string:
		id = v
	}

	fields := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		if k == mongoIDField {
			continue
		}
		fields[k] = normalizeBSON(v)
	}
	return Record{ID: id, Doc: document.FromMap(fields)}
}

func normalizeBSON(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeBSON(item)
		}
		return out
	case primitive.ObjectID:
		return val.Hex()
	default:
		return val
	}
}
