package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/attendance-system/internal/core/auth"
	"github.com/campushq/attendance-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	accounts map[string]*domain.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) FindByUserID(_ context.Context, userID string) (*domain.Account, error) {
	a, ok := r.accounts[userID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) List(_ context.Context, _, _ int64) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAccountRepo) ListByRole(_ context.Context, role domain.Role, _, _ int64) ([]domain.Account, error) {
	var out []domain.Account
	for _, a := range r.accounts {
		if a.Role == role {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) error {
	if _, exists := r.accounts[account.UserID]; exists {
		return domain.ErrAccountExists
	}
	r.accounts[account.UserID] = cloneAccount(account)
	return nil
}

func (r *stubAccountRepo) Update(_ context.Context, userID string, account *domain.Account) error {
	if _, exists := r.accounts[userID]; !exists {
		return domain.ErrAccountNotFound
	}
	r.accounts[userID] = cloneAccount(account)
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, userID string) error {
	if _, exists := r.accounts[userID]; !exists {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, userID)
	return nil
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(ids ...string) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, id := range ids {
		r.users[id] = &domain.User{UserID: id, FullName: "User " + id}
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, userID string) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) List(_ context.Context, _, _ int64) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.UserID]; exists {
		return domain.ErrUserExists
	}
	clone := *user
	r.users[user.UserID] = &clone
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, userID string, user *domain.User) error {
	if _, exists := r.users[userID]; !exists {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.users[userID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, userID string) error {
	if _, exists := r.users[userID]; !exists {
		return domain.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func newAccountSvc(accounts *stubAccountRepo, users *stubUserRepo) *AccountService {
	return NewAccountService(accounts, users, auth.NewHasher(), auth.NewTokenService("test-secret", time.Hour))
}

func TestAccountService_Create_HashesPassword(t *testing.T) {
	svc := newAccountSvc(newStubAccountRepo(), newStubUserRepo("sv001"))

	account, err := svc.Create(context.Background(), "sv001", "pass123", domain.RoleStudent)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if account.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAccountService_Create_UserMustExist(t *testing.T) {
	svc := newAccountSvc(newStubAccountRepo(), newStubUserRepo())

	if _, err := svc.Create(context.Background(), "ghost", "pass123", domain.RoleStudent); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAccountService_Create_Duplicate(t *testing.T) {
	svc := newAccountSvc(newStubAccountRepo(), newStubUserRepo("sv001"))

	if _, err := svc.Create(context.Background(), "sv001", "pass123", domain.RoleStudent); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "sv001", "other", domain.RoleStudent); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAccountService_Create_InvalidRole(t *testing.T) {
	svc := newAccountSvc(newStubAccountRepo(), newStubUserRepo("sv001"))

	if _, err := svc.Create(context.Background(), "sv001", "pass123", domain.Role("superuser")); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	svc := newAccountSvc(newStubAccountRepo(), newStubUserRepo("lc042"))

	if _, err := svc.Create(context.Background(), "lc042", "s3cret", domain.RoleLecturer); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "lc042", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.UserID != "lc042" || result.Role != domain.RoleLecturer {
		t.Fatalf("unexpected result: %+v", result)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "lc042" {
		t.Fatalf("expected sub lc042, got %v", claims["sub"])
	}
	if claims["role"] != domain.RoleLecturer.String() {
		t.Fatalf("expected role lecturer, got %v", claims["role"])
	}
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	svc := newAccountSvc(newStubAccountRepo(), newStubUserRepo("sv001"))

	_, _ = svc.Create(context.Background(), "sv001", "goodpass", domain.RoleStudent)
	if _, err := svc.Login(context.Background(), "sv001", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountService_Login_UnknownAccountMasked(t *testing.T) {
	svc := newAccountSvc(newStubAccountRepo(), newStubUserRepo())

	// A missing account must answer like a bad password, never 404.
	if _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountService_Login_EmptyCredentials(t *testing.T) {
	svc := newAccountSvc(newStubAccountRepo(), newStubUserRepo())

	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountService_Update_KeepsHashWithoutPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAccountSvc(repo, newStubUserRepo("sv001"))

	created, err := svc.Create(context.Background(), "sv001", "pass123", domain.RoleStudent)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), "sv001", "", domain.RoleLecturer)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleLecturer {
		t.Fatalf("expected role lecturer, got %s", updated.Role)
	}
	if updated.PasswordHash != created.PasswordHash {
		t.Fatalf("expected hash unchanged when password omitted")
	}
}
