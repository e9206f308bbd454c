// Package postgres implements the dataset and version document stores on
// PostgreSQL. Predicates from package query are rendered to parameterised
// SQL; only allow-listed columns can appear in a condition or ordering.
package postgres
