// internal/store/resources/resourcestore.go
package resourcestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrNotFound is returned when a lookup matches no record. Absence is a
// normal outcome; callers map it to a 404, never a 500.
var ErrNotFound = errors.New("resource not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("resources")}
}

// Create inserts a new Resource, setting the *_ci shadow fields and the
// creation timestamp. Required fields and the type enum are checked again
// here so garbage can't reach the collection even if a caller skips
// validation.
func (s *Store) Create(ctx context.Context, r models.Resource) (models.Resource, error) {
	if strings.TrimSpace(r.Title) == "" {
		return models.Resource{}, mongo.CommandError{Message: "title is required"}
	}
	if strings.TrimSpace(r.Author) == "" {
		return models.Resource{}, mongo.CommandError{Message: "author is required"}
	}
	if strings.TrimSpace(r.Description) == "" {
		return models.Resource{}, mongo.CommandError{Message: "description is required"}
	}
	if !models.IsValidResourceType(r.Type) {
		return models.Resource{}, mongo.CommandError{Message: "type must be one of: " + strings.Join(models.ResourceTypes, ", ")}
	}

	r.ID = primitive.NewObjectID()
	r.TitleCI = text.Fold(r.Title)
	r.AuthorCI = text.Fold(r.Author)
	r.DescriptionCI = text.Fold(r.Description)
	if r.DownloadCount < 0 {
		r.DownloadCount = 0
	}
	r.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Resource{}, err
	}
	return r, nil
}

// GetAll returns every resource, newest first. No pagination; the full set
// is materialized per call.
func (s *Store) GetAll(ctx context.Context) ([]models.Resource, error) {
	return s.find(ctx, bson.M{})
}

// GetByType returns resources whose type equals the given value, newest
// first. A type that matches nothing yields an empty slice, not an error.
func (s *Store) GetByType(ctx context.Context, resourceType string) ([]models.Resource, error) {
	return s.find(ctx, bson.M{"type": resourceType})
}

// GetByID returns a resource by its ID, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Resource, error) {
	var r models.Resource
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Resource{}, ErrNotFound
	}
	if err != nil {
		return models.Resource{}, err
	}
	return r, nil
}

// IncrementDownloadCount advances the download counter by exactly one using
// a single $inc update; there is no read-modify-write window, so N
// concurrent calls on the same id advance the counter by exactly N.
// Returns ErrNotFound when the id matches no record.
func (s *Store) IncrementDownloadCount(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"download_count": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of resources matching the given filter. A nil
// filter counts everything.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return s.c.CountDocuments(ctx, filter)
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Resource, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	resources := []models.Resource{}
	if err := cur.All(ctx, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}
