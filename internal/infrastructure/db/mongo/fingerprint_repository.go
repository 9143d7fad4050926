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

// FingerprintRepository stores biometric templates. The template bytes map
// to a BSON binary field.
type FingerprintRepository struct {
	coll *mongo.Collection
}

func NewFingerprintRepository(db *mongo.Database) *FingerprintRepository {
	return &FingerprintRepository{coll: db.Collection(fingerprintsCollection)}
}

type fingerprintDoc struct {
	FingerID   string `bson:"finger_id"`
	UserID     string `bson:"user_id"`
	FingerData []byte `bson:"finger_data"`
}

func (d fingerprintDoc) toDomain() domain.Fingerprint {
	return domain.Fingerprint{FingerID: d.FingerID, UserID: d.UserID, FingerData: d.FingerData}
}

func (r *FingerprintRepository) FindByID(ctx context.Context, fingerID string) (*domain.Fingerprint, error) {
	var doc fingerprintDoc
	if err := r.coll.FindOne(ctx, bson.M{"finger_id": fingerID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFingerprintNotFound
		}
		return nil, fmt.Errorf("find fingerprint: %w", err)
	}
	fp := doc.toDomain()
	return &fp, nil
}

func (r *FingerprintRepository) ListByUser(ctx context.Context, userID string) ([]domain.Fingerprint, error) {
	return r.list(ctx, bson.M{"user_id": userID}, 0, 0)
}

func (r *FingerprintRepository) List(ctx context.Context, skip, limit int64) ([]domain.Fingerprint, error) {
	return r.list(ctx, bson.M{}, skip, limit)
}

func (r *FingerprintRepository) list(ctx context.Context, filter bson.M, skip, limit int64) ([]domain.Fingerprint, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "finger_id", Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list fingerprints: %w", err)
	}
	defer cur.Close(ctx)

	var fps []domain.Fingerprint
	for cur.Next(ctx) {
		var doc fingerprintDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode fingerprint: %w", err)
		}
		fps = append(fps, doc.toDomain())
	}
	return fps, cur.Err()
}

func (r *FingerprintRepository) Create(ctx context.Context, fp *domain.Fingerprint) error {
	doc := fingerprintDoc{FingerID: fp.FingerID, UserID: fp.UserID, FingerData: fp.FingerData}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEntityExists
		}
		return fmt.Errorf("insert fingerprint: %w", err)
	}
	return nil
}

func (r *FingerprintRepository) Update(ctx context.Context, fingerID string, fp *domain.Fingerprint) error {
	doc := fingerprintDoc{FingerID: fp.FingerID, UserID: fp.UserID, FingerData: fp.FingerData}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"finger_id": fingerID}, doc)
	if err != nil {
		return fmt.Errorf("update fingerprint: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFingerprintNotFound
	}
	return nil
}

func (r *FingerprintRepository) Delete(ctx context.Context, fingerID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"finger_id": fingerID})
	if err != nil {
		return fmt.Errorf("delete fingerprint: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFingerprintNotFound
	}
	return nil
}
