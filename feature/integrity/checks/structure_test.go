package checks

import (
	"context"
	"errors"
	"testing"

	"recipe-graph/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func prefixIs(prefix string) interface{} {
	return mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == prefix
	})
}

func TestRequiredFolders(t *testing.T) {
	assert.Equal(t, []string{"dumps", "records", "exports"},
		RequiredFolders("dumps/crafttweaker.log", "records/recipes.csv", "exports"))

	// Shared folders are listed once, objects at the bucket root need no folder.
	assert.Equal(t, []string{"data", "exports"},
		RequiredFolders("data/crafttweaker.log", "data/recipes.csv", "/exports/"))
	assert.Equal(t, []string{"exports"},
		RequiredFolders("crafttweaker.log", "recipes.csv", "exports"))
	assert.Empty(t, RequiredFolders("", "", ""))
}

func TestCheckStructure(t *testing.T) {
	required := []string{"dumps", "exports"}

	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "recipes").Return(false, nil)

		report, err := CheckStructure(context.Background(), mockClient, "recipes", required)
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		assert.Equal(t, required, report.Missing)
		assert.False(t, report.OK())
		mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Bucket Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "recipes").Return(false, errors.New("connection refused"))

		_, err := CheckStructure(context.Background(), mockClient, "recipes", required)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("Some Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "recipes").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "recipes", prefixIs("dumps/")).
			Return(mocks.ObjectChan(minio.ObjectInfo{Key: "dumps/crafttweaker.log"}))
		mockClient.On("ListObjects", mock.Anything, "recipes", prefixIs("exports/")).
			Return(mocks.ObjectChan())

		report, err := CheckStructure(context.Background(), mockClient, "recipes", required)
		require.NoError(t, err)
		assert.True(t, report.BucketExists)
		assert.Equal(t, []string{"exports"}, report.Missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "recipes").Return(true, nil)
		for _, folder := range required {
			mockClient.On("ListObjects", mock.Anything, "recipes", prefixIs(folder+"/")).
				Return(mocks.ObjectChan(minio.ObjectInfo{Key: folder + "/"}))
		}

		report, err := CheckStructure(context.Background(), mockClient, "recipes", required)
		require.NoError(t, err)
		assert.Empty(t, report.Missing)
		assert.True(t, report.OK())
		mockClient.AssertNumberOfCalls(t, "ListObjects", len(required))
	})

	t.Run("List Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "recipes").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "recipes", mock.Anything).
			Return(mocks.ObjectChan(minio.ObjectInfo{Err: errors.New("access denied")}))

		_, err := CheckStructure(context.Background(), mockClient, "recipes", required)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})
}

func TestFixStructure(t *testing.T) {
	t.Run("Creates Bucket And Folders", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "recipes").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "recipes", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)
		mockClient.On("PutObject", mock.Anything, "recipes", "dumps/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		mockClient.On("PutObject", mock.Anything, "recipes", "exports/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		err := FixStructure(context.Background(), mockClient, "recipes", "eu-west-1", zap.NewNop(), []string{"dumps", "exports"})
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Put Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "recipes").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "recipes", "dumps/", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("quota exceeded"))

		err := FixStructure(context.Background(), mockClient, "recipes", "", zap.NewNop(), []string{"dumps"})
		assert.Error(t, err)
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})
}
