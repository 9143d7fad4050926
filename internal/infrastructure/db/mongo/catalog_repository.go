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

// CatalogRepository is the shared implementation behind the six academic
// reference collections. The entities are persisted as their domain structs
// (they carry bson tags); only the collection and identifier field differ.
type CatalogRepository[T any] struct {
	coll    *mongo.Collection
	idField string
}

func newCatalogRepository[T any](db *mongo.Database, collection, idField string) *CatalogRepository[T] {
	return &CatalogRepository[T]{coll: db.Collection(collection), idField: idField}
}

// Constructors for each reference collection.

func NewFacultyRepository(db *mongo.Database) *CatalogRepository[domain.Faculty] {
	return newCatalogRepository[domain.Faculty](db, facultiesCollection, "faculty_id")
}

func NewMajorRepository(db *mongo.Database) *CatalogRepository[domain.Major] {
	return newCatalogRepository[domain.Major](db, majorsCollection, "major_id")
}

func NewEducationLevelRepository(db *mongo.Database) *CatalogRepository[domain.EducationLevel] {
	return newCatalogRepository[domain.EducationLevel](db, eduLevelsCollection, "edu_level_id")
}

func NewClassRepository(db *mongo.Database) *CatalogRepository[domain.Class] {
	return newCatalogRepository[domain.Class](db, classesCollection, "class_id")
}

func NewSubjectRepository(db *mongo.Database) *CatalogRepository[domain.Subject] {
	return newCatalogRepository[domain.Subject](db, subjectsCollection, "subject_id")
}

func NewRoomRepository(db *mongo.Database) *CatalogRepository[domain.Room] {
	return newCatalogRepository[domain.Room](db, roomsCollection, "room_id")
}

func (r *CatalogRepository[T]) List(ctx context.Context, skip, limit int64) ([]T, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: r.idField, Value: 1}}).
		SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.coll.Name(), err)
	}
	defer cur.Close(ctx)

	var entities []T
	for cur.Next(ctx) {
		var entity T
		if err := cur.Decode(&entity); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
		}
		entities = append(entities, entity)
	}
	return entities, cur.Err()
}

func (r *CatalogRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.coll.FindOne(ctx, bson.M{r.idField: id}).Decode(&entity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntityNotFound
		}
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}
	return &entity, nil
}

func (r *CatalogRepository[T]) Create(ctx context.Context, entity *T) error {
	if _, err := r.coll.InsertOne(ctx, entity); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEntityExists
		}
		return fmt.Errorf("insert %s: %w", r.coll.Name(), err)
	}
	return nil
}

func (r *CatalogRepository[T]) Update(ctx context.Context, id string, entity *T) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{r.idField: id}, entity)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEntityExists
		}
		return fmt.Errorf("update %s: %w", r.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEntityNotFound
	}
	return nil
}

func (r *CatalogRepository[T]) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{r.idField: id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntityNotFound
	}
	return nil
}
