package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// AccountRepository stores account credentials in the accounts collection.
type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountsCollection)}
}

type accountDoc struct {
	UserID       string `bson:"user_id"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
}

func (d accountDoc) toDomain() domain.Account {
	return domain.Account{
		UserID:       d.UserID,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
	}
}

func (r *AccountRepository) FindByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	var doc accountDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	account := doc.toDomain()
	return &account, nil
}

func (r *AccountRepository) List(ctx context.Context, skip, limit int64) ([]domain.Account, error) {
	return r.list(ctx, bson.M{}, skip, limit)
}

func (r *AccountRepository) ListByRole(ctx context.Context, role domain.Role, skip, limit int64) ([]domain.Account, error) {
	return r.list(ctx, bson.M{"role": role.String()}, skip, limit)
}

func (r *AccountRepository) list(ctx context.Context, filter bson.M, skip, limit int64) ([]domain.Account, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "user_id", Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cur.Close(ctx)

	var accounts []domain.Account
	for cur.Next(ctx) {
		var doc accountDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, doc.toDomain())
	}
	return accounts, cur.Err()
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	doc := accountDoc{
		UserID:       account.UserID,
		PasswordHash: account.PasswordHash,
		Role:         account.Role.String(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, userID string, account *domain.Account) error {
	doc := accountDoc{
		UserID:       account.UserID,
		PasswordHash: account.PasswordHash,
		Role:         account.Role.String(),
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"user_id": userID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
