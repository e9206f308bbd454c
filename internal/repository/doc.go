// Package repository groups the document store implementations.
//
//   - postgres: datasets and versions tables behind pgx, with an optional
//     transactional version committer
//   - memory: a mutex-guarded in-process store with the same semantics,
//     used for local runs and tests
//
// The interfaces they satisfy are declared by the service package.
package repository
