package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
	"github.com/ilyde-platform/ilyde-datasets/internal/storage"
)

func TestBucketService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a hex name", func(t *testing.T) {
		objects := storage.NewMemory()
		svc := NewBucketService(objects, zap.NewNop())

		bucket, err := svc.Create(ctx)

		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), bucket.Name)
		listed, err := objects.ListObjects(ctx, bucket.Name)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	t.Run("names are unique", func(t *testing.T) {
		svc := NewBucketService(storage.NewMemory(), zap.NewNop())

		a, err := svc.Create(ctx)
		require.NoError(t, err)
		b, err := svc.Create(ctx)
		require.NoError(t, err)

		assert.NotEqual(t, a.Name, b.Name)
	})

	t.Run("storage failure is unknown", func(t *testing.T) {
		objects := new(MockObjectStorage)
		objects.On("CreateBucket", ctx, mock.AnythingOfType("string")).Return(errors.New("access denied"))
		svc := NewBucketService(objects, zap.NewNop())

		_, err := svc.Create(ctx)

		assert.True(t, apperrors.IsUnknown(err))
		objects.AssertExpectations(t)
	})
}
