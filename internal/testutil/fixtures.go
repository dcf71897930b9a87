package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateResource inserts a test resource with the given title and type,
// stamped with the current time. Returns the record with its generated ID.
func (f *Fixtures) CreateResource(ctx context.Context, title, resourceType string) models.Resource {
	f.t.Helper()
	return f.CreateResourceAt(ctx, title, resourceType, 0)
}

// CreateResourceAt inserts a test resource whose creation time is offset
// from now by the given number of minutes (negative means in the past), so
// tests can control the newest-first ordering deterministically.
func (f *Fixtures) CreateResourceAt(ctx context.Context, title, resourceType string, minutesFromNow int) models.Resource {
	f.t.Helper()

	author := "Test Author"
	description := "Test description for " + title + "."
	r := models.Resource{
		ID:            primitive.NewObjectID(),
		Title:         title,
		TitleCI:       text.Fold(title),
		Author:        author,
		AuthorCI:      text.Fold(author),
		Type:          resourceType,
		Description:   description,
		DescriptionCI: text.Fold(description),
		CreatedAt:     time.Now().UTC().Add(time.Duration(minutesFromNow) * time.Minute),
	}

	_, err := f.db.Collection("resources").InsertOne(ctx, r)
	if err != nil {
		f.t.Fatalf("failed to create test resource: %v", err)
	}

	return r
}

// CreateResourceFull inserts the given resource as-is, filling in the ID,
// *_ci fields, and a current timestamp when unset.
func (f *Fixtures) CreateResourceFull(ctx context.Context, r models.Resource) models.Resource {
	f.t.Helper()

	if r.ID == primitive.NilObjectID {
		r.ID = primitive.NewObjectID()
	}
	r.TitleCI = text.Fold(r.Title)
	r.AuthorCI = text.Fold(r.Author)
	r.DescriptionCI = text.Fold(r.Description)
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	_, err := f.db.Collection("resources").InsertOne(ctx, r)
	if err != nil {
		f.t.Fatalf("failed to create test resource: %v", err)
	}

	return r
}
