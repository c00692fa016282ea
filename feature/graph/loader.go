package graph

import (
	"recipe-graph/core/recipegraph"
	"recipe-graph/core/records"
	"recipe-graph/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Graph feature.
func NewFeature(source records.Source, cache *records.Cache, client storage.Client, bucket string, logger *zap.Logger, cfg recipegraph.Config) *Feature {
	svc := NewService(source, cache, client, bucket, logger, cfg)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "graph"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.source != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
