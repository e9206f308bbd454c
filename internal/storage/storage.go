package storage

import (
	"context"
	"errors"
)

// DefaultRegion is used when a bucket is created without an explicit region
const DefaultRegion = "us-west-1"

var (
	// ErrBucketNotFound is returned when a listed bucket does not exist
	ErrBucketNotFound = errors.New("bucket not found")
	// ErrBucketExists is returned when a created bucket already exists
	ErrBucketExists = errors.New("bucket already exists")
)

// Object is one entry of a bucket listing
type Object struct {
	Name string
	Size int64
}

// Store is the object storage capability consumed by the services
type Store interface {
	// CreateBucket provisions an empty bucket
	CreateBucket(ctx context.Context, name string) error
	// ListObjects enumerates every object in the bucket recursively, in
	// the order returned by the backend
	ListObjects(ctx context.Context, bucket string) ([]Object, error)
	// Ping checks connectivity
	Ping(ctx context.Context) error
}
