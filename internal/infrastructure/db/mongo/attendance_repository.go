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

// AttendanceRepository stores check-in records with sequence-allocated
// integer IDs.
type AttendanceRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{db: db, coll: db.Collection(attendanceCollection)}
}

type attendanceDoc struct {
	AttendID   int64  `bson:"attend_id"`
	ScheduleID int64  `bson:"schedule_id"`
	UserID     string `bson:"user_id"`
	AttendTime int64  `bson:"attend_time"`
	Status     bool   `bson:"status"`
}

func (d attendanceDoc) toDomain() domain.Attendance {
	return domain.Attendance{
		AttendID:   d.AttendID,
		ScheduleID: d.ScheduleID,
		UserID:     d.UserID,
		AttendTime: time.Unix(d.AttendTime, 0).UTC(),
		Status:     d.Status,
	}
}

func attendanceToDoc(a *domain.Attendance) attendanceDoc {
	return attendanceDoc{
		AttendID:   a.AttendID,
		ScheduleID: a.ScheduleID,
		UserID:     a.UserID,
		AttendTime: a.AttendTime.UTC().Unix(),
		Status:     a.Status,
	}
}

func (r *AttendanceRepository) FindByID(ctx context.Context, attendID int64) (*domain.Attendance, error) {
	var doc attendanceDoc
	if err := r.coll.FindOne(ctx, bson.M{"attend_id": attendID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	record := doc.toDomain()
	return &record, nil
}

func (r *AttendanceRepository) List(ctx context.Context, skip, limit int64) ([]domain.Attendance, error) {
	return r.list(ctx, bson.M{}, skip, limit)
}

func (r *AttendanceRepository) ListBySchedule(ctx context.Context, scheduleID int64, skip, limit int64) ([]domain.Attendance, error) {
	return r.list(ctx, bson.M{"schedule_id": scheduleID}, skip, limit)
}

func (r *AttendanceRepository) list(ctx context.Context, filter bson.M, skip, limit int64) ([]domain.Attendance, error) {
	// Newest records first, matching the original listing order.
	opts := options.Find().
		SetSort(bson.D{{Key: "attend_time", Value: -1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer cur.Close(ctx)

	var records []domain.Attendance
	for cur.Next(ctx) {
		var doc attendanceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode attendance: %w", err)
		}
		records = append(records, doc.toDomain())
	}
	return records, cur.Err()
}

func (r *AttendanceRepository) Create(ctx context.Context, record *domain.Attendance) (*domain.Attendance, error) {
	id, err := nextSequence(ctx, r.db, attendanceCollection)
	if err != nil {
		return nil, err
	}
	record.AttendID = id

	if _, err := r.coll.InsertOne(ctx, attendanceToDoc(record)); err != nil {
		return nil, fmt.Errorf("insert attendance: %w", err)
	}
	return record, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, attendID int64, record *domain.Attendance) error {
	record.AttendID = attendID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"attend_id": attendID}, attendanceToDoc(record))
	if err != nil {
		return fmt.Errorf("update attendance: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAttendanceNotFound
	}
	return nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, attendID int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"attend_id": attendID})
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAttendanceNotFound
	}
	return nil
}
