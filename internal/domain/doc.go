// Package domain contains the entities of the datasets service.
//
//   - Dataset: a named, soft-deletable grouping of data that points at its
//     latest Version label
//   - Version: an immutable snapshot of a bucket's contents, with its file
//     manifest and total size
//   - Status, Bucket: acknowledgements returned by the service
//
// Types ending in "Input" are used for create/update operations.
// Types ending in "Filter" are used for query operations.
package domain
