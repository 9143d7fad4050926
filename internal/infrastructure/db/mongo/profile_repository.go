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

// StudentProfileRepository stores student personal records, keyed by user ID.
type StudentProfileRepository struct {
	coll *mongo.Collection
}

func NewStudentProfileRepository(db *mongo.Database) *StudentProfileRepository {
	return &StudentProfileRepository{coll: db.Collection(studentProfilesCollection)}
}

type studentProfileDoc struct {
	UserID    string `bson:"user_id"`
	BirthDate int64  `bson:"birth_date"`
	Gender    bool   `bson:"gender"`
	Phone     string `bson:"phone"`
	Address   string `bson:"address"`
}

func (d studentProfileDoc) toDomain() domain.StudentProfile {
	return domain.StudentProfile{
		UserID:    d.UserID,
		BirthDate: time.Unix(d.BirthDate, 0).UTC(),
		Gender:    d.Gender,
		Phone:     d.Phone,
		Address:   d.Address,
	}
}

func studentProfileToDoc(p *domain.StudentProfile) studentProfileDoc {
	return studentProfileDoc{
		UserID:    p.UserID,
		BirthDate: p.BirthDate.Unix(),
		Gender:    p.Gender,
		Phone:     p.Phone,
		Address:   p.Address,
	}
}

func (r *StudentProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.StudentProfile, error) {
	var doc studentProfileDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find student profile: %w", err)
	}
	profile := doc.toDomain()
	return &profile, nil
}

func (r *StudentProfileRepository) List(ctx context.Context, skip, limit int64) ([]domain.StudentProfile, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "user_id", Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list student profiles: %w", err)
	}
	defer cur.Close(ctx)

	var profiles []domain.StudentProfile
	for cur.Next(ctx) {
		var doc studentProfileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode student profile: %w", err)
		}
		profiles = append(profiles, doc.toDomain())
	}
	return profiles, cur.Err()
}

func (r *StudentProfileRepository) Create(ctx context.Context, profile *domain.StudentProfile) error {
	if _, err := r.coll.InsertOne(ctx, studentProfileToDoc(profile)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("insert student profile: %w", err)
	}
	return nil
}

func (r *StudentProfileRepository) Update(ctx context.Context, userID string, profile *domain.StudentProfile) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"user_id": userID}, studentProfileToDoc(profile))
	if err != nil {
		return fmt.Errorf("update student profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *StudentProfileRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("delete student profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// LecturerProfileRepository stores lecturer academic records, keyed by
// user ID.
type LecturerProfileRepository struct {
	coll *mongo.Collection
}

func NewLecturerProfileRepository(db *mongo.Database) *LecturerProfileRepository {
	return &LecturerProfileRepository{coll: db.Collection(lecturerProfilesCollection)}
}

type lecturerProfileDoc struct {
	UserID          string `bson:"user_id"`
	FacultyID       string `bson:"faculty_id"`
	Degree          string `bson:"degree"`
	ResearchArea    string `bson:"research_area,omitempty"`
	ProfileImageURL string `bson:"profile_image_url,omitempty"`
}

func (d lecturerProfileDoc) toDomain() domain.LecturerProfile {
	return domain.LecturerProfile{
		UserID:          d.UserID,
		FacultyID:       d.FacultyID,
		Degree:          d.Degree,
		ResearchArea:    d.ResearchArea,
		ProfileImageURL: d.ProfileImageURL,
	}
}

func lecturerProfileToDoc(p *domain.LecturerProfile) lecturerProfileDoc {
	return lecturerProfileDoc{
		UserID:          p.UserID,
		FacultyID:       p.FacultyID,
		Degree:          p.Degree,
		ResearchArea:    p.ResearchArea,
		ProfileImageURL: p.ProfileImageURL,
	}
}

func (r *LecturerProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.LecturerProfile, error) {
	var doc lecturerProfileDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find lecturer profile: %w", err)
	}
	profile := doc.toDomain()
	return &profile, nil
}

func (r *LecturerProfileRepository) List(ctx context.Context, skip, limit int64) ([]domain.LecturerProfile, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "user_id", Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list lecturer profiles: %w", err)
	}
	defer cur.Close(ctx)

	var profiles []domain.LecturerProfile
	for cur.Next(ctx) {
		var doc lecturerProfileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode lecturer profile: %w", err)
		}
		profiles = append(profiles, doc.toDomain())
	}
	return profiles, cur.Err()
}

func (r *LecturerProfileRepository) Create(ctx context.Context, profile *domain.LecturerProfile) error {
	if _, err := r.coll.InsertOne(ctx, lecturerProfileToDoc(profile)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("insert lecturer profile: %w", err)
	}
	return nil
}

func (r *LecturerProfileRepository) Update(ctx context.Context, userID string, profile *domain.LecturerProfile) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"user_id": userID}, lecturerProfileToDoc(profile))
	if err != nil {
		return fmt.Errorf("update lecturer profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *LecturerProfileRepository) Delete(ctx context.Context, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("delete lecturer profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
