package ports

import (
	"context"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// AccountRepository persists account credentials.
type AccountRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Account, error)
	List(ctx context.Context, skip, limit int64) ([]domain.Account, error)
	ListByRole(ctx context.Context, role domain.Role, skip, limit int64) ([]domain.Account, error)
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, userID string, account *domain.Account) error
	Delete(ctx context.Context, userID string) error
}

// LoginResult is what a successful login returns to the client.
type LoginResult struct {
	AccessToken string
	UserID      string
	Role        domain.Role
}

// AccountService implements account management and password login.
type AccountService interface {
	Login(ctx context.Context, userID, password string) (*LoginResult, error)
	Create(ctx context.Context, userID, password string, role domain.Role) (*domain.Account, error)
	Update(ctx context.Context, userID, password string, role domain.Role) (*domain.Account, error)
	Delete(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*domain.Account, error)
	List(ctx context.Context, skip, limit int64) ([]domain.Account, error)
	ListByRole(ctx context.Context, role domain.Role, skip, limit int64) ([]domain.Account, error)
}
