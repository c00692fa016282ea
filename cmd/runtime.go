package cmd

import (
	"fmt"
	"os"
	"time"

	"recipe-graph/core/config"
	"recipe-graph/core/database"
	"recipe-graph/core/logger"
	"recipe-graph/core/reconcile"
	"recipe-graph/core/records"
	"recipe-graph/core/storage"
	"recipe-graph/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime bundles the shared dependencies every command builds from the configuration.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	// db is nil when the optional database connection failed.
	db    *gorm.DB
	store storage.Client
}

func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg, store: store}

	// Connect to Database (Optional)
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		rt.db = conn
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	}

	return rt, nil
}

// records builds the configured record source and its snapshot cache.
func (r *runtime) records() (records.Source, *records.Cache, error) {
	src, err := records.NewSource(r.cfg.Records, r.db, r.store, r.cfg.Storage.Bucket)
	if err != nil {
		return nil, nil, err
	}
	ttl := time.Duration(r.cfg.Records.CacheTTLSeconds) * time.Second
	return src, records.NewCache(ttl, r.cfg.Records.IDPrefixes), nil
}

// folders lists the bucket folders the integrity structure check requires.
func (r *runtime) folders() []string {
	return checks.RequiredFolders(r.cfg.Records.DumpObject, r.cfg.Records.Object, r.cfg.Graph.ExportPrefix)
}

// sinks lists the reachable places ingestion writes records to. The bucket object is
// the reference because it is the copy shared between deployments.
func (r *runtime) sinks() *reconcile.Spec {
	spec := &reconcile.Spec{Database: records.SourceDatabase}
	if r.store != nil {
		spec.Sources = append(spec.Sources, reconcile.Named{
			Name:   records.SourceStorage,
			Source: records.ObjectSource{Client: r.store, Bucket: r.cfg.Storage.Bucket, Object: r.cfg.Records.Object},
		})
	}
	if _, err := os.Stat(r.cfg.Records.Path); err == nil {
		spec.Sources = append(spec.Sources, reconcile.Named{
			Name:   records.SourceCSV,
			Source: records.FileSource{Path: r.cfg.Records.Path},
		})
	}
	if r.db != nil {
		spec.Sources = append(spec.Sources, reconcile.Named{
			Name:   records.SourceDatabase,
			Source: records.DBSource{DB: r.db},
		})
	}
	return spec
}
