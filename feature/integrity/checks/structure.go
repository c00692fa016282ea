package checks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"recipe-graph/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StructureReport is the result of a bucket structure check.
type StructureReport struct {
	Bucket       string   `json:"bucket"`
	BucketExists bool     `json:"bucket_exists"`
	Required     []string `json:"required"`
	Missing      []string `json:"missing"`
}

// OK reports whether nothing is missing.
func (r *StructureReport) OK() bool {
	return r.BucketExists && len(r.Missing) == 0
}

// RequiredFolders derives the bucket folders from the object keys in use: the folder
// of the crafttweaker dump, the folder of the record CSV and the export prefix.
func RequiredFolders(dumpObject, recordObject, exportPrefix string) []string {
	var folders []string
	seen := make(map[string]struct{})
	add := func(folder string) {
		folder = strings.Trim(folder, "/")
		if folder == "" || folder == "." {
			return
		}
		if _, ok := seen[folder]; ok {
			return
		}
		seen[folder] = struct{}{}
		folders = append(folders, folder)
	}
	add(path.Dir(dumpObject))
	add(path.Dir(recordObject))
	add(exportPrefix)
	return folders
}

// CheckStructure reports which required folders are missing. A missing bucket is
// reported, not returned as an error, so it can be fixed.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, required []string) (*StructureReport, error) {
	report := &StructureReport{Bucket: bucket, Required: required, Missing: []string{}}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Missing = append(report.Missing, required...)
		return report, nil
	}

	for _, folder := range required {
		found, err := storage.HasPrefix(ctx, client, bucket, folder)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", folder, err)
		}
		if !found {
			report.Missing = append(report.Missing, folder)
		}
	}
	return report, nil
}

// FixStructure creates the bucket if needed and a placeholder object for every
// missing folder.
func FixStructure(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger, missing []string) error {
	created, err := storage.EnsureBucket(ctx, client, bucket, region)
	if err != nil {
		return err
	}
	if created {
		logger.Info("Created missing bucket", zap.String("bucket", bucket))
	}

	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, storage.FolderKey(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}
