package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3Client struct {
	mock.Mock
}

func (m *mockS3Client) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.CreateBucketOutput), args.Error(1)
}

func (m *mockS3Client) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, aws.ToString(params.ContinuationToken))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListObjectsV2Output), args.Error(1)
}

func (m *mockS3Client) ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.ListBucketsOutput), args.Error(1)
}

func TestS3Store_ListObjects(t *testing.T) {
	ctx := context.Background()

	t.Run("follows continuation tokens in order", func(t *testing.T) {
		client := new(mockS3Client)
		client.On("ListObjectsV2", ctx, "").Return(&s3.ListObjectsV2Output{
			Contents: []types.Object{
				{Key: aws.String("a.png"), Size: aws.Int64(10)},
			},
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("page-2"),
		}, nil)
		client.On("ListObjectsV2", ctx, "page-2").Return(&s3.ListObjectsV2Output{
			Contents: []types.Object{
				{Key: aws.String("dir/b.png"), Size: aws.Int64(20)},
			},
			IsTruncated: aws.Bool(false),
		}, nil)

		store := NewS3WithClient(client, DefaultRegion)
		objects, err := store.ListObjects(ctx, "bucket")

		require.NoError(t, err)
		assert.Equal(t, []Object{{Name: "a.png", Size: 10}, {Name: "dir/b.png", Size: 20}}, objects)
		client.AssertExpectations(t)
	})

	t.Run("missing bucket", func(t *testing.T) {
		client := new(mockS3Client)
		client.On("ListObjectsV2", ctx, "").Return(nil, &types.NoSuchBucket{})

		_, err := NewS3WithClient(client, DefaultRegion).ListObjects(ctx, "bucket")

		assert.ErrorIs(t, err, ErrBucketNotFound)
	})

	t.Run("other failure", func(t *testing.T) {
		client := new(mockS3Client)
		client.On("ListObjectsV2", ctx, "").Return(nil, errors.New("connection refused"))

		_, err := NewS3WithClient(client, DefaultRegion).ListObjects(ctx, "bucket")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrBucketNotFound)
	})
}

func TestS3Store_CreateBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("sets location constraint", func(t *testing.T) {
		client := new(mockS3Client)
		client.On("CreateBucket", ctx, mock.MatchedBy(func(in *s3.CreateBucketInput) bool {
			return aws.ToString(in.Bucket) == "b1" &&
				in.CreateBucketConfiguration != nil &&
				in.CreateBucketConfiguration.LocationConstraint == types.BucketLocationConstraint("us-west-1")
		})).Return(&s3.CreateBucketOutput{}, nil)

		err := NewS3WithClient(client, "us-west-1").CreateBucket(ctx, "b1")

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("us-east-1 omits location constraint", func(t *testing.T) {
		client := new(mockS3Client)
		client.On("CreateBucket", ctx, mock.MatchedBy(func(in *s3.CreateBucketInput) bool {
			return in.CreateBucketConfiguration == nil
		})).Return(&s3.CreateBucketOutput{}, nil)

		require.NoError(t, NewS3WithClient(client, "us-east-1").CreateBucket(ctx, "b1"))
	})

	t.Run("already owned", func(t *testing.T) {
		client := new(mockS3Client)
		client.On("CreateBucket", ctx, mock.Anything).Return(nil, &types.BucketAlreadyOwnedByYou{})

		err := NewS3WithClient(client, "us-west-1").CreateBucket(ctx, "b1")

		assert.ErrorIs(t, err, ErrBucketExists)
	})
}

func TestS3Store_Ping(t *testing.T) {
	ctx := context.Background()
	client := new(mockS3Client)
	client.On("ListBuckets", ctx).Return(nil, errors.New("forbidden")).Once()
	client.On("ListBuckets", ctx).Return(&s3.ListBucketsOutput{}, nil).Once()
	store := NewS3WithClient(client, DefaultRegion)

	assert.Error(t, store.Ping(ctx))
	assert.NoError(t, store.Ping(ctx))
}
