// Package services holds integrations the handlers call out to.
package services

import (
	"context"
	"errors"
)

// PhotoStore persists uploaded images. Save returns the object key the bytes
// were stored under; an empty key tells the caller to keep the bytes on the
// owning database row instead.
type PhotoStore interface {
	Save(ctx context.Context, key, contentType string, data []byte) (objectKey string, err error)
	Load(ctx context.Context, objectKey string) ([]byte, error)
	Delete(ctx context.Context, objectKey string) error
}

// RowPhotoStore is the default store: photo bytes live on the entity row.
type RowPhotoStore struct{}

func NewRowPhotoStore() RowPhotoStore {
	return RowPhotoStore{}
}

func (RowPhotoStore) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	return "", nil
}

func (RowPhotoStore) Load(ctx context.Context, objectKey string) ([]byte, error) {
	return nil, errors.New("no object storage configured")
}

func (RowPhotoStore) Delete(ctx context.Context, objectKey string) error {
	return nil
}
