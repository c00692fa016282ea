package ingest

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recipe-graph/core/database"
	"recipe-graph/core/records"
	"recipe-graph/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testRecordsConfig = records.Config{
	Object:     "records/recipes.csv",
	DumpObject: "dumps/crafttweaker.log",
}

func TestService_ParseObject(t *testing.T) {
	ctx := context.Background()
	data, err := os.ReadFile("testdata/crafttweaker.log")
	require.NoError(t, err)

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", ctx, "recipes", "dumps/crafttweaker.log", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader(string(data))), nil)

	svc := NewService(mockClient, "recipes", zap.NewNop(), nil, testRecordsConfig)
	res, err := svc.ParseObject(ctx, "")
	require.NoError(t, err)
	assert.Len(t, res.Records, 8)
	mockClient.AssertExpectations(t)
}

func TestService_StoreDir(t *testing.T) {
	svc := NewService(nil, "", zap.NewNop(), nil, testRecordsConfig)
	stored := 0
	svc.OnStored(func() { stored++ })

	res, err := svc.ParseFile("testdata/crafttweaker.log")
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	sum, err := svc.Store(context.Background(), res, Sinks{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, RecipesFile), filepath.Join(dir, ModsFile)}, sum.Written)
	assert.Equal(t, 1, stored)

	f, err := os.Open(filepath.Join(dir, RecipesFile))
	require.NoError(t, err)
	defer f.Close()
	back, err := records.ReadCSV(f)
	require.NoError(t, err)
	assert.Equal(t, len(res.Records), len(back))
	assert.Equal(t, res.Records[0].ID, back[0].ID)
}

func TestService_StoreDB(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	svc := NewService(nil, "", zap.NewNop(), db, testRecordsConfig)
	res, err := svc.ParseFile("testdata/crafttweaker.log")
	require.NoError(t, err)

	sum, err := svc.Store(ctx, res, Sinks{DB: true})
	require.NoError(t, err)
	assert.Contains(t, sum.Written, "db:recipes")

	loaded, err := records.LoadDB(ctx, db)
	require.NoError(t, err)
	assert.Len(t, loaded, len(res.Records))

	// Re-ingesting the same log upserts.
	_, err = svc.Store(ctx, res, Sinks{DB: true})
	assert.NoError(t, err)
}

func TestService_StoreErrors(t *testing.T) {
	svc := NewService(nil, "", zap.NewNop(), nil, testRecordsConfig)
	res := &Result{}

	_, err := svc.Store(context.Background(), res, Sinks{DB: true})
	assert.ErrorIs(t, err, ErrNoDatabase)

	_, err = svc.Store(context.Background(), res, Sinks{Upload: true})
	assert.Error(t, err)

	_, err = svc.ParseObject(context.Background(), "")
	assert.Error(t, err)
}

func TestService_StoreUpload(t *testing.T) {
	ctx := context.Background()
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", ctx, "recipes", "records/recipes.csv", mock.Anything, mock.AnythingOfType("int64"), minio.PutObjectOptions{ContentType: "text/csv"}).
		Return(minio.UploadInfo{}, nil)

	svc := NewService(mockClient, "recipes", zap.NewNop(), nil, testRecordsConfig)
	res, err := svc.ParseFile("testdata/crafttweaker.log")
	require.NoError(t, err)

	sum, err := svc.Store(ctx, res, Sinks{Upload: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"s3:recipes/records/recipes.csv"}, sum.Written)
	mockClient.AssertExpectations(t)
}
