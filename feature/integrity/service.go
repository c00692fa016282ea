package integrity

import (
	"context"
	"errors"

	"recipe-graph/core/reconcile"
	"recipe-graph/core/records"
	"recipe-graph/core/storage"
	"recipe-graph/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoDatabase is returned by the schema check when no database is configured.
	ErrNoDatabase = errors.New("database is not configured")
	// ErrNoSource is returned by the records check when no record source is configured.
	ErrNoSource = errors.New("record source is not configured")
	// ErrNoSinks is returned by the sinks check when fewer than two record sinks are reachable.
	ErrNoSinks = errors.New("at least two record sinks are needed for reconciliation")
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	storage storage.Config
	logger  *zap.Logger
	db      *gorm.DB
	source  records.Source
	cache   *records.Cache
	folders []string
	sinks   *reconcile.Spec
}

// NewService creates a new integrity service. db, source, cache and sinks may be nil;
// the checks that need them then report ErrNoDatabase, ErrNoSource or ErrNoSinks.
func NewService(client storage.Client, storageCfg storage.Config, logger *zap.Logger, db *gorm.DB, source records.Source, cache *records.Cache, folders []string, sinks *reconcile.Spec) *Service {
	return &Service{
		client:  client,
		storage: storageCfg,
		logger:  logger,
		db:      db,
		source:  source,
		cache:   cache,
		folders: folders,
		sinks:   sinks,
	}
}

// CheckStructure reports the required bucket folders that are missing.
func (s *Service) CheckStructure(ctx context.Context) (*checks.StructureReport, error) {
	return checks.CheckStructure(ctx, s.client, s.storage.Bucket, s.folders)
}

// FixStructure creates the bucket and the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.storage.Bucket, s.storage.Region, s.logger, missing)
}

// CheckSchema compares the record tables with their models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckSchema(s.db)
}

// CheckRecords validates every record of the current snapshot, keeping at most limit issues.
func (s *Service) CheckRecords(ctx context.Context, limit int) (*checks.RecordsReport, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}

	var recs []records.Record
	if s.cache != nil {
		snap, err := s.cache.Get(ctx, s.source)
		if err != nil {
			return nil, err
		}
		recs = snap.Store.All()
	} else {
		loaded, err := s.source.Load(ctx)
		if err != nil {
			return nil, err
		}
		recs = loaded
	}

	report := checks.CheckRecords(recs, limit)
	if report.Invalid > 0 {
		s.logger.Warn("Invalid records found",
			zap.Int("invalid", report.Invalid),
			zap.Int("total", report.Total))
	}
	return report, nil
}

// ReconcileSinks compares the record rows of every sink against the reference sink and
// applies the planned database actions when opts allow it.
func (s *Service) ReconcileSinks(ctx context.Context, opts reconcile.ReconcileOptions) (*reconcile.ReconcilePlan, int, error) {
	if s.sinks == nil || len(s.sinks.Sources) < 2 {
		return nil, 0, ErrNoSinks
	}

	plan, executed, err := reconcile.ReconcileAndApply(ctx, s.sinks, s.db, opts)
	if err != nil {
		return nil, 0, err
	}
	if executed > 0 {
		s.logger.Info("Applied reconcile plan",
			zap.Int("executed", executed),
			zap.Int("purged", plan.Summary.PurgeActions),
			zap.Int("synced", plan.Summary.SyncActions))
		if s.cache != nil && s.source != nil {
			s.cache.Invalidate(s.source)
		}
	}
	return plan, executed, nil
}
