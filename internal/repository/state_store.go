package repository

import (
	"context"
	"errors"
	"log"

	"hoodbook/internal/monitoring"
)

// Keys of the persisted state documents.
const (
	KeyCart     = "hoodbook_cart"
	KeyBookings = "hoodbook_bookings"
	KeySettings = "hoodbook_settings"
	KeyUser     = "hoodbook_user"
)

var ErrStoreUnavailable = errors.New("state store unavailable")

// StateStore persists JSON documents under string keys. Load reports false
// when the key is absent.
type StateStore interface {
	Load(ctx context.Context, key string, dst any) (bool, error)
	Save(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

// Document binds one key of a StateStore to a typed value. Read failures fall
// back to the supplied default and write failures are logged, so callers keep
// working from memory when the store is down. Writes are last-write-wins.
type Document[T any] struct {
	store StateStore
	key   string
}

func NewDocument[T any](store StateStore, key string) *Document[T] {
	return &Document[T]{store: store, key: key}
}

func (d *Document[T]) Key() string { return d.key }

// Load returns the stored value, or fallback when it is absent or unreadable.
func (d *Document[T]) Load(ctx context.Context, fallback T) T {
	var v T
	ok, err := d.store.Load(ctx, d.key, &v)
	if err != nil {
		monitoring.TrackStoreError(d.key, "load")
		log.Printf("state_load_failed key=%s error=%q", d.key, err.Error())
		return fallback
	}
	if !ok {
		return fallback
	}
	return v
}

func (d *Document[T]) Save(ctx context.Context, v T) error {
	if err := d.store.Save(ctx, d.key, v); err != nil {
		monitoring.TrackStoreError(d.key, "save")
		log.Printf("state_save_failed key=%s error=%q", d.key, err.Error())
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (d *Document[T]) Clear(ctx context.Context) error {
	if err := d.store.Delete(ctx, d.key); err != nil {
		monitoring.TrackStoreError(d.key, "delete")
		log.Printf("state_delete_failed key=%s error=%q", d.key, err.Error())
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
