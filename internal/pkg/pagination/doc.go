// Package pagination applies 1-based page/limit windows to ordered results.
package pagination
