package records

import (
	"context"
	"fmt"
	"os"

	"recipe-graph/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Source loads the full list of records from one backing location.
type Source interface {
	// Key identifies the source for caching.
	Key() string
	// Load reads every record in stored order.
	Load(ctx context.Context) ([]Record, error)
}

// FileSource reads records from a local CSV file.
type FileSource struct {
	Path string
}

func (s FileSource) Key() string { return "csv|" + s.Path }

func (s FileSource) Load(ctx context.Context) ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open records file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// DBSource reads records from the recipes table.
type DBSource struct {
	DB *gorm.DB
}

func (s DBSource) Key() string { return "database" }

func (s DBSource) Load(ctx context.Context) ([]Record, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("database source requires a database connection")
	}
	return LoadDB(ctx, s.DB)
}

// ObjectSource reads records from a CSV object in the storage bucket.
type ObjectSource struct {
	Client storage.Client
	Bucket string
	Object string
}

func (s ObjectSource) Key() string { return "storage|" + s.Bucket + "|" + s.Object }

func (s ObjectSource) Load(ctx context.Context) ([]Record, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get records object %s: %w", s.Object, err)
	}
	defer obj.Close()
	return ReadCSV(obj)
}

// NewSource builds the source selected by cfg. db and client may be nil when the
// selected source does not need them.
func NewSource(cfg Config, db *gorm.DB, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceCSV, "":
		return FileSource{Path: cfg.Path}, nil
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("records source %q requires a database connection", cfg.Source)
		}
		return DBSource{DB: db}, nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("records source %q requires a storage client", cfg.Source)
		}
		return ObjectSource{Client: client, Bucket: bucket, Object: cfg.Object}, nil
	default:
		return nil, fmt.Errorf("unknown records source %q", cfg.Source)
	}
}
