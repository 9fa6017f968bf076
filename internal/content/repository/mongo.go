package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/portfolio-cms/portfolio-api/internal/content"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Collection and Singleton on top of a MongoDB collection.
// Documents use ObjectID `_id`s and carry createdAt/updatedAt dates.
type MongoRepo[T any, P content.Record[T]] struct {
	col *mongo.Collection
}

func NewMongoRepo[T any, P content.Record[T]](col *mongo.Collection) *MongoRepo[T, P] {
	return &MongoRepo[T, P]{col: col}
}

// EnsureIndexes creates the index backing the newest-first listing.
func (m *MongoRepo[T, P]) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}
	if _, err := m.col.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("create index on %s: %w", m.col.Name(), err)
	}
	return nil
}

func (m *MongoRepo[T, P]) List(ctx context.Context) ([]*T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*T{}
	for cur.Next(ctx) {
		var d T
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoRepo[T, P]) Insert(ctx context.Context, rec *T) (*T, error) {
	d := clone(rec)
	meta := P(d).Metadata()
	meta.ID = primitive.NewObjectID()
	meta.CreatedAt = now()
	meta.UpdatedAt = meta.CreatedAt
	if _, err := m.col.InsertOne(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (m *MongoRepo[T, P]) UpdateByID(ctx context.Context, id string, patch *T) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	set := P(patch).SetFields()
	set["updatedAt"] = now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d T
	err = m.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *MongoRepo[T, P]) DeleteByID(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo[T, P]) FindOne(ctx context.Context) (*T, error) {
	var d T
	if err := m.col.FindOne(ctx, bson.M{}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *MongoRepo[T, P]) Upsert(ctx context.Context, patch *T) (*T, error) {
	ts := now()
	set := P(patch).SetFields()
	set["updatedAt"] = ts
	update := bson.M{"$set": set, "$setOnInsert": bson.M{"createdAt": ts}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var d T
	if err := m.col.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

