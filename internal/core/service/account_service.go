package service

import (
	"context"
	"errors"

	"github.com/campushq/attendance-system/internal/api/metrics"
	"github.com/campushq/attendance-system/internal/core/auth"
	"github.com/campushq/attendance-system/internal/core/domain"
	"github.com/campushq/attendance-system/internal/core/ports"
)

// AccountService implements account management and password login.
type AccountService struct {
	accounts ports.AccountRepository
	users    ports.UserRepository
	hasher   *auth.Hasher
	tokens   *auth.TokenService
}

func NewAccountService(
	accounts ports.AccountRepository,
	users ports.UserRepository,
	hasher *auth.Hasher,
	tokens *auth.TokenService,
) *AccountService {
	return &AccountService{
		accounts: accounts,
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Login verifies the password against the stored hash and issues a bearer
// token carrying the account's subject and role.
func (s *AccountService) Login(ctx context.Context, userID, password string) (*ports.LoginResult, error) {
	if userID == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Do not reveal whether the account exists.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.UserID, account.Role)
	if err != nil {
		return nil, err
	}
	metrics.TokensIssuedTotal.WithLabelValues(account.Role.String()).Inc()

	return &ports.LoginResult{
		AccessToken: token,
		UserID:      account.UserID,
		Role:        account.Role,
	}, nil
}

// Create hashes the password and stores a new account. The referenced user
// must already exist.
func (s *AccountService) Create(ctx context.Context, userID, password string, role domain.Role) (*domain.Account, error) {
	if userID == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{UserID: userID, PasswordHash: hash, Role: role}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Update replaces role and, when a new password is supplied, the hash.
func (s *AccountService) Update(ctx context.Context, userID, password string, role domain.Role) (*domain.Account, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	account, err := s.accounts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	account.Role = role
	if password != "" {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}

	if err := s.accounts.Update(ctx, userID, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Delete(ctx context.Context, userID string) error {
	return s.accounts.Delete(ctx, userID)
}

func (s *AccountService) Get(ctx context.Context, userID string) (*domain.Account, error) {
	return s.accounts.FindByUserID(ctx, userID)
}

func (s *AccountService) List(ctx context.Context, skip, limit int64) ([]domain.Account, error) {
	return s.accounts.List(ctx, skip, limit)
}

func (s *AccountService) ListByRole(ctx context.Context, role domain.Role, skip, limit int64) ([]domain.Account, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return s.accounts.ListByRole(ctx, role, skip, limit)
}
