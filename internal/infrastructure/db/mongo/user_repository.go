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

// UserRepository stores identity records in the users collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	UserID   string `bson:"user_id"`
	ClassID  string `bson:"class_id,omitempty"`
	FullName string `bson:"full_name"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{UserID: d.UserID, ClassID: d.ClassID, FullName: d.FullName}
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user := doc.toDomain()
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, skip, limit int64) ([]domain.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "user_id", Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	return users, cur.Err()
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := userDoc{UserID: user.UserID, ClassID: user.ClassID, FullName: user.FullName}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, userID string, user *domain.User) error {
	doc := userDoc{UserID: user.UserID, ClassID: user.ClassID, FullName: user.FullName}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"user_id": userID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
