package history

import "context"

// Repository provides persistence for history entries.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	List(ctx context.Context) ([]Entry, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Clear(ctx context.Context) (int64, error)
}
