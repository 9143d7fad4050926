package service

import (
	"context"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// FingerprintService implements fingerprint enrollment management. The
// template bytes are opaque to the backend.
type FingerprintService struct {
	fingerprints ports.FingerprintRepository
	users        ports.UserRepository
}

func NewFingerprintService(fingerprints ports.FingerprintRepository, users ports.UserRepository) *FingerprintService {
	return &FingerprintService{fingerprints: fingerprints, users: users}
}

func (s *FingerprintService) Get(ctx context.Context, fingerID string) (*domain.Fingerprint, error) {
	return s.fingerprints.FindByID(ctx, fingerID)
}

func (s *FingerprintService) ListByUser(ctx context.Context, userID string) ([]domain.Fingerprint, error) {
	return s.fingerprints.ListByUser(ctx, userID)
}

func (s *FingerprintService) List(ctx context.Context, skip, limit int64) ([]domain.Fingerprint, error) {
	return s.fingerprints.List(ctx, skip, limit)
}

func (s *FingerprintService) Create(ctx context.Context, fp *domain.Fingerprint) (*domain.Fingerprint, error) {
	if _, err := s.users.FindByID(ctx, fp.UserID); err != nil {
		return nil, err
	}
	if err := s.fingerprints.Create(ctx, fp); err != nil {
		return nil, err
	}
	return fp, nil
}

func (s *FingerprintService) Update(ctx context.Context, fingerID string, fp *domain.Fingerprint) (*domain.Fingerprint, error) {
	if _, err := s.users.FindByID(ctx, fp.UserID); err != nil {
		return nil, err
	}
	if err := s.fingerprints.Update(ctx, fingerID, fp); err != nil {
		return nil, err
	}
	return s.fingerprints.FindByID(ctx, fingerID)
}

func (s *FingerprintService) Delete(ctx context.Context, fingerID string) error {
	return s.fingerprints.Delete(ctx, fingerID)
}
