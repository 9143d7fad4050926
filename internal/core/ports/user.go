package ports

import (
	"context"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// UserRepository persists the identity records.
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context, skip, limit int64) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, userID string, user *domain.User) error
	Delete(ctx context.Context, userID string) error
}

// UserService implements user CRUD.
type UserService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context, skip, limit int64) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, userID string, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, userID string) error
}
