package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"recipe-graph/core/records"
	"recipe-graph/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// File names written by the directory sink.
const (
	RecipesFile = "recipes.csv"
	ModsFile    = "mods.csv"
)

// ErrNoDatabase is returned when the database sink is requested without a connection.
var ErrNoDatabase = errors.New("database sink requested but no database is connected")

// Sinks selects where parsed rows are written.
type Sinks struct {
	// Dir writes recipes.csv and mods.csv into this local directory when set.
	Dir string
	// DB upserts the rows into the recipes and mods tables.
	DB bool
	// Upload puts the recipes CSV into the bucket as the storage record source.
	Upload bool
}

// Summary reports what a run produced.
type Summary struct {
	Result  *Result        `json:"result"`
	Counts  map[string]int `json:"counts"`
	Written []string       `json:"written"`
}

// Service parses crafttweaker logs and stores the resulting rows.
type Service struct {
	client   storage.Client
	bucket   string
	db       *gorm.DB
	logger   *zap.Logger
	cfg      records.Config
	parser   *Parser
	onStored func()
}

// NewService creates a new ingest service. client and db may be nil when the
// corresponding sources and sinks are not used.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg records.Config) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		db:     db,
		logger: logger,
		cfg:    cfg,
		parser: NewParser(logger),
	}
}

// OnStored registers a callback run after rows were written to at least one sink.
func (s *Service) OnStored(fn func()) {
	s.onStored = fn
}

// Parse parses a log stream.
func (s *Service) Parse(r io.Reader) (*Result, error) {
	return s.parser.Parse(r)
}

// ParseFile parses a local log file.
func (s *Service) ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	defer f.Close()
	return s.Parse(f)
}

// ParseObject parses a log stored in the bucket. An empty object name reads the
// configured dump object.
func (s *Service) ParseObject(ctx context.Context, object string) (*Result, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client is not configured")
	}
	if object == "" {
		object = s.cfg.DumpObject
	}
	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get log object %s: %w", object, err)
	}
	defer obj.Close()
	return s.Parse(obj)
}

// Store writes res to the selected sinks and returns what was written.
func (s *Service) Store(ctx context.Context, res *Result, sinks Sinks) (*Summary, error) {
	sum := &Summary{Result: res, Counts: res.Counts(), Written: []string{}}

	if sinks.Dir != "" {
		written, err := writeDir(sinks.Dir, res)
		if err != nil {
			return nil, err
		}
		sum.Written = append(sum.Written, written...)
	}

	if sinks.DB {
		if s.db == nil {
			return nil, ErrNoDatabase
		}
		if err := records.Migrate(ctx, s.db); err != nil {
			return nil, err
		}
		if err := records.SaveDB(ctx, s.db, res.Records); err != nil {
			return nil, err
		}
		if err := records.SaveMods(ctx, s.db, res.Mods); err != nil {
			return nil, err
		}
		sum.Written = append(sum.Written, "db:"+records.Record{}.TableName(), "db:"+records.Mod{}.TableName())
	}

	if sinks.Upload {
		if s.client == nil {
			return nil, fmt.Errorf("storage client is not configured")
		}
		var buf bytes.Buffer
		if err := records.WriteCSV(&buf, res.Records); err != nil {
			return nil, err
		}
		if _, err := storage.PutBytes(ctx, s.client, s.bucket, s.cfg.Object, buf.Bytes(), "text/csv"); err != nil {
			return nil, err
		}
		sum.Written = append(sum.Written, "s3:"+s.bucket+"/"+s.cfg.Object)
	}

	s.logger.Info("Ingest completed",
		zap.Any("counts", sum.Counts),
		zap.Int("duplicates", res.Duplicates),
		zap.Int("skipped", res.Skipped),
		zap.Strings("written", sum.Written))

	if len(sum.Written) > 0 && s.onStored != nil {
		s.onStored()
	}
	return sum, nil
}

func writeDir(dir string, res *Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	recipesPath := filepath.Join(dir, RecipesFile)
	if err := writeFile(recipesPath, func(w io.Writer) error { return records.WriteCSV(w, res.Records) }); err != nil {
		return nil, err
	}
	modsPath := filepath.Join(dir, ModsFile)
	if err := writeFile(modsPath, func(w io.Writer) error { return records.WriteModsCSV(w, res.Mods) }); err != nil {
		return nil, err
	}
	return []string{recipesPath, modsPath}, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
