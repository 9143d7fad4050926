package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Collection names. Kept in one place so index setup and repositories agree.
const (
	usersCollection            = "users"
	accountsCollection         = "accounts"
	studentProfilesCollection  = "student_profiles"
	lecturerProfilesCollection = "lecturer_profiles"
	facultiesCollection        = "faculties"
	majorsCollection           = "majors"
	eduLevelsCollection        = "education_levels"
	classesCollection          = "classes"
	subjectsCollection         = "subjects"
	roomsCollection            = "rooms"
	schedulesCollection        = "schedules"
	registrationsCollection    = "course_registrations"
	fingerprintsCollection     = "fingerprints"
	attendanceCollection       = "attendance"
	countersCollection         = "counters"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the unique indexes the repositories rely on for
// duplicate detection. Safe to call on every startup; Mongo treats existing
// identical indexes as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]string{
		usersCollection:            "user_id",
		accountsCollection:         "user_id",
		studentProfilesCollection:  "user_id",
		lecturerProfilesCollection: "user_id",
		facultiesCollection:        "faculty_id",
		majorsCollection:           "major_id",
		eduLevelsCollection:        "edu_level_id",
		classesCollection:          "class_id",
		subjectsCollection:         "subject_id",
		roomsCollection:            "room_id",
		schedulesCollection:        "schedule_id",
		registrationsCollection:    "reg_id",
		fingerprintsCollection:     "finger_id",
		attendanceCollection:       "attend_id",
	}

	for coll, field := range indexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("ensure index on %s: %w", coll, err)
		}
	}
	return nil
}

// nextSequence returns the next value of a named monotonic counter. The
// schedule, registration and attendance collections keep their original
// integer primary keys this way.
func nextSequence(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return doc.Seq, nil
}
