package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is a single catalog entry describing one piece of educational
// material. Only metadata is stored; uploads are simulated and no binary
// payload ever reaches the database.
//
// The *_ci fields are lowercase, diacritics-stripped shadows of their
// display counterparts. All case-insensitive matching runs against them so
// that search results never depend on how a record was typed in.
type Resource struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Title   string `bson:"title" json:"title"`
	TitleCI string `bson:"title_ci" json:"-"`

	Author   string `bson:"author" json:"author"`
	AuthorCI string `bson:"author_ci" json:"-"`

	Type string `bson:"type" json:"type"` // one of ResourceTypes

	Description   string `bson:"description" json:"description"`
	DescriptionCI string `bson:"description_ci" json:"-"`

	FileName string `bson:"file_name,omitempty" json:"fileName,omitempty"`
	FileSize string `bson:"file_size,omitempty" json:"fileSize,omitempty"` // human-readable, e.g. "2.5 MB"
	FileURL  string `bson:"file_url,omitempty" json:"fileUrl,omitempty"`

	DownloadCount int64 `bson:"download_count" json:"downloadCount"`

	// Tags is reserved: stored and returned as-is, queried by nothing yet.
	Tags []string `bson:"tags,omitempty" json:"tags,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
