package query

import (
	"fmt"
	"sort"

	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/id"
)

// Storage field names shared by the document stores
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldScope     = "scope"
	FieldProject   = "project"
	FieldDeleted   = "deleted"
	FieldDataset   = "dataset_id"
	FieldAuthor    = "author"
	FieldCreatedAt = "created_at"
)

// Op is a clause operator
type Op int

const (
	// OpEq matches documents whose field equals the clause value
	OpEq Op = iota
	// OpLiveDataset matches documents whose field references a dataset
	// that is not soft-deleted
	OpLiveDataset
)

// Clause is a single condition on a storage field
type Clause struct {
	Field string
	Op    Op
	Value any
}

// Eq builds an equality clause
func Eq(field string, value any) Clause {
	return Clause{Field: field, Op: OpEq, Value: value}
}

// Predicate is a conjunction of clauses. The empty predicate matches every document.
type Predicate []Clause

// And returns a new predicate with the clauses appended
func (p Predicate) And(clauses ...Clause) Predicate {
	out := make(Predicate, 0, len(p)+len(clauses))
	out = append(out, p...)
	return append(out, clauses...)
}

// Sort orders a result set by a single storage field
type Sort struct {
	Field string
	Desc  bool
}

var (
	// NewestFirst orders by creation time, most recent first
	NewestFirst = Sort{Field: FieldCreatedAt, Desc: true}
	// NameDesc orders by name, byte-wise descending
	NameDesc = Sort{Field: FieldName, Desc: true}
)

// Resource is the static filter configuration of one document collection
type Resource struct {
	Name string
	// Fields maps filter names accepted from callers to storage fields
	Fields map[string]string
	// Identifiers lists storage fields whose values are opaque identifiers
	Identifiers map[string]bool
	// Live restricts a read to documents visible to callers
	Live Clause
}

// Datasets is the filter configuration of the datasets collection
var Datasets = Resource{
	Name: "dataset",
	Fields: map[string]string{
		"id":      FieldID,
		"name":    FieldName,
		"scope":   FieldScope,
		"project": FieldProject,
	},
	Identifiers: map[string]bool{FieldID: true},
	Live:        Eq(FieldDeleted, false),
}

// Versions is the filter configuration of the versions collection
var Versions = Resource{
	Name: "version",
	Fields: map[string]string{
		"id":      FieldID,
		"name":    FieldName,
		"dataset": FieldDataset,
		"author":  FieldAuthor,
	},
	Identifiers: map[string]bool{FieldID: true, FieldDataset: true},
	Live:        Clause{Field: FieldDataset, Op: OpLiveDataset},
}

// Build translates a sparse filter into an equality predicate. Empty values
// and unrecognized filter names are ignored. Identifier fields are coerced
// through the identifier codec; a malformed identifier is InvalidArgument.
func (r Resource) Build(filter map[string]string) (Predicate, error) {
	keys := make([]string, 0, len(filter))
	for key := range filter {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var p Predicate
	for _, key := range keys {
		value := filter[key]
		field, ok := r.Fields[key]
		if value == "" || !ok {
			continue
		}
		if !r.Identifiers[field] {
			p = append(p, Eq(field, value))
			continue
		}
		parsed, err := id.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s filter '%s': %w", r.Name, key, err)
		}
		p = append(p, Eq(field, parsed))
	}
	return p, nil
}

// Visible composes p with the resource's visibility rule. Every read path
// goes through here.
func (r Resource) Visible(p Predicate) Predicate {
	return p.And(r.Live)
}

// ByID returns a visible-only predicate matching a single document
func (r Resource) ByID(raw string) (Predicate, error) {
	parsed, err := id.Parse(raw)
	if err != nil {
		return nil, err
	}
	return r.Visible(Predicate{Eq(FieldID, parsed)}), nil
}
