package resourcestore_test

import (
	"sync"
	"testing"

	resourcestore "github.com/dalemusser/learnhub/internal/app/store/resources"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/learnhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	resource := models.Resource{
		Title:       "Test Resource",
		Author:      "Dr. Test Author",
		Type:        "ebook",
		Description: "A test resource used to verify store creation.",
		FileName:    "test.pdf",
		FileSize:    "1.0 MB",
	}

	created, err := store.Create(ctx, resource)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.TitleCI == "" {
		t.Error("expected TitleCI to be set")
	}
	if created.AuthorCI == "" {
		t.Error("expected AuthorCI to be set")
	}
	if created.DescriptionCI == "" {
		t.Error("expected DescriptionCI to be set")
	}
	if created.DownloadCount != 0 {
		t.Errorf("DownloadCount: got %d, want 0", created.DownloadCount)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_FoldsDiacritics(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Resource{
		Title:       "École Numérique",
		Author:      "Prof. René Dubois",
		Type:        "lecture-notes",
		Description: "Notes on digital schooling for francophone students.",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.TitleCI != "ecole numerique" {
		t.Errorf("TitleCI: got %q, want %q", created.TitleCI, "ecole numerique")
	}
}

func TestStore_Create_MissingRequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cases := []struct {
		name     string
		resource models.Resource
	}{
		{"missing title", models.Resource{Author: "A", Type: "ebook", Description: "A long enough description."}},
		{"missing author", models.Resource{Title: "T", Type: "ebook", Description: "A long enough description."}},
		{"missing description", models.Resource{Title: "T", Author: "A", Type: "ebook"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := store.Create(ctx, tc.resource); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestStore_Create_InvalidType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Resource{
		Title:       "Test Resource",
		Author:      "Dr. Test Author",
		Type:        "video", // not in the closed enum
		Description: "A test resource with an invalid type.",
	})
	if err == nil {
		t.Fatal("expected error for invalid type")
	}

	// Nothing may persist on a rejected create.
	n, err := store.Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("record count: got %d, want 0", n)
	}
}

func TestStore_GetAll_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	fix.CreateResourceAt(ctx, "Oldest", "ebook", -3)
	fix.CreateResourceAt(ctx, "Middle", "ebook", -2)
	fix.CreateResourceAt(ctx, "Newest", "ebook", -1)

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d resources, want 3", len(all))
	}
	if all[0].Title != "Newest" || all[2].Title != "Oldest" {
		t.Errorf("wrong order: got %q, %q, %q", all[0].Title, all[1].Title, all[2].Title)
	}
}

func TestStore_GetByType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	fix.CreateResourceAt(ctx, "Notes A", "lecture-notes", -1)
	fix.CreateResourceAt(ctx, "Book B", "ebook", -2)
	fix.CreateResourceAt(ctx, "Notes C", "lecture-notes", -3)

	notes, err := store.GetByType(ctx, "lecture-notes")
	if err != nil {
		t.Fatalf("GetByType failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d resources, want 2", len(notes))
	}
	for _, r := range notes {
		if r.Type != "lecture-notes" {
			t.Errorf("got type %q, want %q", r.Type, "lecture-notes")
		}
	}
}

func TestStore_GetByType_Unknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	fix.CreateResourceAt(ctx, "Book", "ebook", -1)

	// Unknown type is an empty result, not an error.
	got, err := store.GetByType(ctx, "podcast")
	if err != nil {
		t.Fatalf("GetByType failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d resources, want 0", len(got))
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	created := fix.CreateResourceAt(ctx, "Findable", "ebook", -1)

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Findable" {
		t.Errorf("Title: got %q, want %q", got.Title, "Findable")
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if err != resourcestore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_IncrementDownloadCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	created := fix.CreateResourceAt(ctx, "Counted", "ebook", -1)

	if err := store.IncrementDownloadCount(ctx, created.ID); err != nil {
		t.Fatalf("IncrementDownloadCount failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.DownloadCount != created.DownloadCount+1 {
		t.Errorf("DownloadCount: got %d, want %d", got.DownloadCount, created.DownloadCount+1)
	}
}

func TestStore_IncrementDownloadCount_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.IncrementDownloadCount(ctx, primitive.NewObjectID())
	if err != resourcestore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_IncrementDownloadCount_Concurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	created := fix.CreateResourceAt(ctx, "Contended", "ebook", -1)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.IncrementDownloadCount(ctx, created.ID)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent increment failed: %v", err)
		}
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.DownloadCount != created.DownloadCount+n {
		t.Errorf("DownloadCount: got %d, want %d (lost updates)", got.DownloadCount, created.DownloadCount+n)
	}
}
