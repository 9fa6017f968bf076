package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("item not found")
	ErrInvalidID = errors.New("invalid item id")
)

// Collection is the store capability behind the generic CRUD endpoints.
type Collection[T any] interface {
	// List returns every document, newest first.
	List(ctx context.Context) ([]*T, error)
	// Insert stores rec under a fresh id and returns the stored document.
	Insert(ctx context.Context, rec *T) (*T, error)
	// UpdateByID merges the set fields of patch into the document and
	// returns the result. ErrNotFound when nothing matches.
	UpdateByID(ctx context.Context, id string, patch *T) (*T, error)
	DeleteByID(ctx context.Context, id string) error
}

// Singleton is the store capability for a collection holding at most one document.
type Singleton[T any] interface {
	// FindOne returns ErrNotFound while the collection is empty.
	FindOne(ctx context.Context) (*T, error)
	// Upsert merges patch into the document, creating it first if needed.
	Upsert(ctx context.Context, patch *T) (*T, error)
}

// ParseID converts the hex form used in URLs into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// now is truncated to the millisecond precision BSON dates keep, so both
// stores report identical timestamps for the same write.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
