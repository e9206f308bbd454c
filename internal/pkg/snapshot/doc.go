// Package snapshot turns an object storage listing into a version manifest.
package snapshot
