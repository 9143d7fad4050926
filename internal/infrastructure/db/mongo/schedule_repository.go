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

// ScheduleRepository stores teaching sessions. Schedule IDs are integer
// sequence values allocated from the counters collection.
type ScheduleRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{db: db, coll: db.Collection(schedulesCollection)}
}

type scheduleDoc struct {
	ScheduleID  int64  `bson:"schedule_id"`
	SubjectID   string `bson:"subject_id"`
	RoomID      string `bson:"room_id"`
	LecturerID  string `bson:"lecturer_id"`
	ClassID     string `bson:"class_id"`
	LearnDate   int64  `bson:"learn_date"` // unix seconds, midnight UTC
	StartPeriod int    `bson:"start_period"`
	EndPeriod   int    `bson:"end_period"`
	IsOpen      bool   `bson:"is_open"`
}

func (d scheduleDoc) toDomain() domain.Schedule {
	return domain.Schedule{
		ScheduleID:  d.ScheduleID,
		SubjectID:   d.SubjectID,
		RoomID:      d.RoomID,
		LecturerID:  d.LecturerID,
		ClassID:     d.ClassID,
		LearnDate:   time.Unix(d.LearnDate, 0).UTC(),
		StartPeriod: d.StartPeriod,
		EndPeriod:   d.EndPeriod,
		IsOpen:      d.IsOpen,
	}
}

func scheduleToDoc(s *domain.Schedule) scheduleDoc {
	return scheduleDoc{
		ScheduleID:  s.ScheduleID,
		SubjectID:   s.SubjectID,
		RoomID:      s.RoomID,
		LecturerID:  s.LecturerID,
		ClassID:     s.ClassID,
		LearnDate:   s.LearnDate.UTC().Unix(),
		StartPeriod: s.StartPeriod,
		EndPeriod:   s.EndPeriod,
		IsOpen:      s.IsOpen,
	}
}

func (r *ScheduleRepository) FindByID(ctx context.Context, scheduleID int64) (*domain.Schedule, error) {
	var doc scheduleDoc
	if err := r.coll.FindOne(ctx, bson.M{"schedule_id": scheduleID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("find schedule: %w", err)
	}
	schedule := doc.toDomain()
	return &schedule, nil
}

func (r *ScheduleRepository) List(ctx context.Context, skip, limit int64) ([]domain.Schedule, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "schedule_id", Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer cur.Close(ctx)

	var schedules []domain.Schedule
	for cur.Next(ctx) {
		var doc scheduleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode schedule: %w", err)
		}
		schedules = append(schedules, doc.toDomain())
	}
	return schedules, cur.Err()
}

func (r *ScheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	id, err := nextSequence(ctx, r.db, schedulesCollection)
	if err != nil {
		return nil, err
	}
	schedule.ScheduleID = id

	if _, err := r.coll.InsertOne(ctx, scheduleToDoc(schedule)); err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}
	return schedule, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, scheduleID int64, schedule *domain.Schedule) error {
	schedule.ScheduleID = scheduleID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"schedule_id": scheduleID}, scheduleToDoc(schedule))
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) SetOpen(ctx context.Context, scheduleID int64, open bool) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"schedule_id": scheduleID},
		bson.M{"$set": bson.M{"is_open": open}},
	)
	if err != nil {
		return fmt.Errorf("set schedule open: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, scheduleID int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"schedule_id": scheduleID})
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}
