package note

import "context"

// Repository provides persistence for notes.
type Repository interface {
	Create(ctx context.Context, n *Note) error
	List(ctx context.Context) ([]Note, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
