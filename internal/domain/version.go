package domain

import (
	"time"

	"github.com/google/uuid"
)

// File is one object captured in a version manifest
type File struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Version represents an immutable snapshot of a dataset's bucket
type Version struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	DatasetID     uuid.UUID `json:"dataset"`
	RelatedBucket string    `json:"related_bucket"`
	Manifest      []File    `json:"manifest"`
	Size          int64     `json:"size"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
}

// VersionInput represents input for creating a version
type VersionInput struct {
	Dataset       string `json:"dataset" validate:"required"`
	RelatedBucket string `json:"related_bucket" validate:"required"`
	Author        string `json:"author" validate:"required"`
}

// VersionFilter represents the filterable fields of a version search
type VersionFilter struct {
	ID      string `json:"id,omitempty" query:"id"`
	Name    string `json:"name,omitempty" query:"name"`
	Dataset string `json:"dataset,omitempty" query:"dataset"`
	Author  string `json:"author,omitempty" query:"author"`
}

// Fields returns the filter as a sparse field map
func (f VersionFilter) Fields() map[string]string {
	return map[string]string{
		"id":      f.ID,
		"name":    f.Name,
		"dataset": f.Dataset,
		"author":  f.Author,
	}
}

// VersionSearch represents a paginated version search request
type VersionSearch struct {
	Query VersionFilter `json:"query"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
