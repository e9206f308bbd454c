// Package memory implements the dataset and version document stores in
// process memory. It backs the service when the memory store driver is
// configured and is used by service tests.
package memory
