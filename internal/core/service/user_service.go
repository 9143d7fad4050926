package service

import (
	"context"

	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// UserService implements user CRUD over the identity collection.
type UserService struct {
	users   ports.UserRepository
	classes ports.CatalogRepository[domain.Class]
}

func NewUserService(users ports.UserRepository, classes ports.CatalogRepository[domain.Class]) *UserService {
	return &UserService{users: users, classes: classes}
}

func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) List(ctx context.Context, skip, limit int64) ([]domain.User, error) {
	return s.users.List(ctx, skip, limit)
}

func (s *UserService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := s.checkClass(ctx, user.ClassID); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, userID string, user *domain.User) (*domain.User, error) {
	if err := s.checkClass(ctx, user.ClassID); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, userID, user); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	return s.users.Delete(ctx, userID)
}

// checkClass validates the optional class reference.
func (s *UserService) checkClass(ctx context.Context, classID string) error {
	if classID == "" {
		return nil
	}
	_, err := s.classes.Get(ctx, classID)
	return err
}
