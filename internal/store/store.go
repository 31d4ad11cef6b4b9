package store

import (
	"context"
	"errors"
)

// ErrDuplicateKey indicates an insert for an ID that is already present.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrNotFound indicates an update or delete for an ID that is absent.
var ErrNotFound = errors.New("not found")

// Store is the key-indexed persistence contract shared by all entity types.
// GetByID returns (nil, nil) when the row does not exist.
// AllocateID hands out sequential, store-controlled IDs for entity types whose
// keys are not client-supplied (payments, transactions).
type Store[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Insert(ctx context.Context, id int64, row T) error
	Update(ctx context.Context, id int64, row T) error
	Delete(ctx context.Context, id int64) error
	AllocateID(ctx context.Context) (int64, error)
}
