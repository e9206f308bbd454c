// Package storage provides the object storage capability used to provision
// dataset buckets and snapshot their contents.
//
// Backends:
//   - MinioStore: MinIO or any S3-compatible endpoint (default)
//   - S3Store: AWS S3 through aws-sdk-go-v2
//   - MemoryStore: in-process, for local runs and tests
//
// Guarded wraps any backend with a circuit breaker. A listing of a missing
// bucket fails with ErrBucketNotFound.
package storage
