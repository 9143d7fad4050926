package ports

import "context"

// CatalogRepository provides CRUD over one academic reference collection
// (faculty, major, education level, class, subject, room). The six
// collections share the exact same access shape, so a single generic
// contract covers them all.
type CatalogRepository[T any] interface {
	List(ctx context.Context, skip, limit int64) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id string, entity *T) error
	Delete(ctx context.Context, id string) error
}
