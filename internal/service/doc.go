// Package service contains the dataset and version lifecycle logic.
//
// Services depend on repository and object storage interfaces declared in
// this package. Any store implementation satisfying them can be injected;
// the server wires either the Postgres or the in-memory store.
//
// Every read goes through the visibility rules of the query package, so a
// soft-deleted dataset and the versions attached to it are invisible to
// Retrieve and Search.
//
// All services are safe for concurrent use. Version creation for one
// dataset is not serialized: two concurrent creates may compute the same
// label.
package service
