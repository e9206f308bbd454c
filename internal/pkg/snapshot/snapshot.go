package snapshot

import (
	"github.com/ilyde-platform/ilyde-datasets/internal/domain"
	"github.com/ilyde-platform/ilyde-datasets/internal/storage"
)

// Aggregate transcribes a bucket listing into a version manifest and its
// total size. Listing order is kept and nothing is filtered or merged.
func Aggregate(objects []storage.Object) ([]domain.File, int64) {
	manifest := make([]domain.File, 0, len(objects))
	var size int64
	for _, obj := range objects {
		manifest = append(manifest, domain.File{Name: obj.Name, Size: obj.Size})
		size += obj.Size
	}
	return manifest, size
}
