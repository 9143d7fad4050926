package ports

import (
	"context"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// FingerprintRepository persists enrolled biometric templates.
type FingerprintRepository interface {
	FindByID(ctx context.Context, fingerID string) (*domain.Fingerprint, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Fingerprint, error)
	List(ctx context.Context, skip, limit int64) ([]domain.Fingerprint, error)
	Create(ctx context.Context, fp *domain.Fingerprint) error
	Update(ctx context.Context, fingerID string, fp *domain.Fingerprint) error
	Delete(ctx context.Context, fingerID string) error
}

// FingerprintService implements fingerprint enrollment management.
type FingerprintService interface {
	Get(ctx context.Context, fingerID string) (*domain.Fingerprint, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Fingerprint, error)
	List(ctx context.Context, skip, limit int64) ([]domain.Fingerprint, error)
	Create(ctx context.Context, fp *domain.Fingerprint) (*domain.Fingerprint, error)
	Update(ctx context.Context, fingerID string, fp *domain.Fingerprint) (*domain.Fingerprint, error)
	Delete(ctx context.Context, fingerID string) error
}
