package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used for local runs and tests
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string][]Object
}

// NewMemory creates an empty in-memory store
func NewMemory() *MemoryStore {
	return &MemoryStore{buckets: make(map[string][]Object)}
}

// CreateBucket creates an empty bucket
func (s *MemoryStore) CreateBucket(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buckets[name]; ok {
		return fmt.Errorf("%w: %s", ErrBucketExists, name)
	}
	s.buckets[name] = []Object{}
	return nil
}

// Put appends objects to a bucket, creating it if needed
func (s *MemoryStore) Put(bucket string, objects ...Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[bucket] = append(s.buckets[bucket], objects...)
}

// ListObjects returns the bucket's objects in insertion order
func (s *MemoryStore) ListObjects(_ context.Context, bucket string) ([]Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, ok := s.buckets[bucket]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	out := make([]Object, len(objects))
	copy(out, objects)
	return out, nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
