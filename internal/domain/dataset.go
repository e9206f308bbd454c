package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scope controls who a dataset is visible to
type Scope string

const (
	ScopeLocal  Scope = "Local"
	ScopeGlobal Scope = "Global"
)

// DefaultScope is applied when a create request leaves scope empty
const DefaultScope = ScopeLocal

// Dataset represents a named, soft-deletable grouping of data
type Dataset struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Scope         Scope     `json:"scope"`
	Project       string    `json:"project"`
	Version       string    `json:"version"`
	Deleted       bool      `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// DatasetInput represents input for creating a dataset
type DatasetInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required,max=100"`
	Scope       Scope  `json:"scope,omitempty" validate:"max=100"`
	Project     string `json:"project,omitempty" validate:"max=100"`
}

// DatasetUpdateInput represents input for updating a dataset
type DatasetUpdateInput struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required,max=100"`
}

// DatasetFilter represents the filterable fields of a dataset search
type DatasetFilter struct {
	ID      string `json:"id,omitempty" query:"id"`
	Name    string `json:"name,omitempty" query:"name"`
	Scope   string `json:"scope,omitempty" query:"scope"`
	Project string `json:"project,omitempty" query:"project"`
}

// Fields returns the filter as a sparse field map
func (f DatasetFilter) Fields() map[string]string {
	return map[string]string{
		"id":      f.ID,
		"name":    f.Name,
		"scope":   f.Scope,
		"project": f.Project,
	}
}

// DatasetSearch represents a paginated dataset search request
type DatasetSearch struct {
	Query DatasetFilter `json:"query"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
