package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campushq/attendance-system/internal/core/domain"
)

// RegistrationRepository stores course registrations with sequence-allocated
// integer IDs.
type RegistrationRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{db: db, coll: db.Collection(registrationsCollection)}
}

type registrationDoc struct {
	RegID       int64  `bson:"reg_id"`
	UserID      string `bson:"user_id"`
	SubjectID   string `bson:"subject_id"`
	HostClassID string `bson:"host_class_id"`
	Semester    int    `bson:"semester"`
	Year        int    `bson:"year"`
	CreatedAt   int64  `bson:"created_at"`
}

func (d registrationDoc) toDomain() domain.CourseRegistration {
	return domain.CourseRegistration{
		RegID:       d.RegID,
		UserID:      d.UserID,
		SubjectID:   d.SubjectID,
		HostClassID: d.HostClassID,
		Semester:    d.Semester,
		Year:        d.Year,
		CreatedAt:   time.Unix(d.CreatedAt, 0).UTC(),
	}
}

func registrationToDoc(reg *domain.CourseRegistration) registrationDoc {
	return registrationDoc{
		RegID:       reg.RegID,
		UserID:      reg.UserID,
		SubjectID:   reg.SubjectID,
		HostClassID: reg.HostClassID,
		Semester:    reg.Semester,
		Year:        reg.Year,
		CreatedAt:   reg.CreatedAt.UTC().Unix(),
	}
}

func (r *RegistrationRepository) FindByID(ctx context.Context, regID int64) (*domain.CourseRegistration, error) {
	var doc registrationDoc
	if err := r.coll.FindOne(ctx, bson.M{"reg_id": regID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}
	reg := doc.toDomain()
	return &reg, nil
}

func (r *RegistrationRepository) List(ctx context.Context, skip, limit int64) ([]domain.CourseRegistration, error) {
	return r.list(ctx, bson.M{}, skip, limit)
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string, skip, limit int64) ([]domain.CourseRegistration, error) {
	return r.list(ctx, bson.M{"user_id": userID}, skip, limit)
}

func (r *RegistrationRepository) list(ctx context.Context, filter bson.M, skip, limit int64) ([]domain.CourseRegistration, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "reg_id", Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer cur.Close(ctx)

	var regs []domain.CourseRegistration
	for cur.Next(ctx) {
		var doc registrationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode registration: %w", err)
		}
		regs = append(regs, doc.toDomain())
	}
	return regs, cur.Err()
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.CourseRegistration) (*domain.CourseRegistration, error) {
	id, err := nextSequence(ctx, r.db, registrationsCollection)
	if err != nil {
		return nil, err
	}
	reg.RegID = id

	if _, err := r.coll.InsertOne(ctx, registrationToDoc(reg)); err != nil {
		return nil, fmt.Errorf("insert registration: %w", err)
	}
	return reg, nil
}

func (r *RegistrationRepository) Update(ctx context.Context, regID int64, reg *domain.CourseRegistration) error {
	reg.RegID = regID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"reg_id": regID}, registrationToDoc(reg))
	if err != nil {
		return fmt.Errorf("update registration: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, regID int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"reg_id": regID})
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}
