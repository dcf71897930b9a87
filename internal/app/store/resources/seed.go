package resourcestore

import (
	"context"
	"time"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedIfEmpty inserts the given demonstration records when the collection
// holds no documents, and does nothing otherwise. It runs once at process
// startup, so restarting a populated deployment never duplicates data.
//
// Creation timestamps are staggered one minute apart, newest first, so the
// default "newest" ordering of a freshly seeded catalog matches the order
// the samples are declared in.
//
// Returns the number of records inserted (0 when the collection was not
// empty).
func (s *Store) SeedIfEmpty(ctx context.Context, samples []models.Resource) (int, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(samples))
	for i, r := range samples {
		r.ID = primitive.NewObjectID()
		r.TitleCI = text.Fold(r.Title)
		r.AuthorCI = text.Fold(r.Author)
		r.DescriptionCI = text.Fold(r.Description)
		if r.DownloadCount < 0 {
			r.DownloadCount = 0
		}
		r.CreatedAt = now.Add(-time.Duration(i) * time.Minute)
		docs = append(docs, r)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}
