package ingest

import (
	"bytes"
	"errors"

	"recipe-graph/core/logger"
	"recipe-graph/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for log ingestion.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ingest routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/ingest", h.HandleIngest)
}

// HandleIngest parses a crafttweaker log and stores the rows.
// @Summary Ingest Crafttweaker Log
// @Description Parses the request body as a crafttweaker log, or the named bucket object when the body is empty, and writes the rows to the selected sinks. Without sinks the parse is a dry run.
// @Tags ingest
// @Accept plain
// @Produce json
// @Param object query string false "Log object in the bucket (defaults to the configured dump object)"
// @Param db query boolean false "Upsert rows into the database"
// @Param upload query boolean false "Upload the recipes CSV to the bucket"
// @Success 200 {object} ingest.Summary "Ingest Summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /ingest [post]
func (h *Handler) HandleIngest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var (
		res *Result
		err error
	)
	if body := c.Body(); len(body) > 0 {
		res, err = h.service.Parse(bytes.NewReader(body))
	} else {
		res, err = h.service.ParseObject(c.Context(), c.Query("object"))
	}
	if err != nil {
		l.Error("Failed to parse log", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	sinks := Sinks{
		DB:     utils.FlagOrDefault(c.Query("db"), false),
		Upload: utils.FlagOrDefault(c.Query("upload"), false),
	}
	sum, err := h.service.Store(c.Context(), res, sinks)
	if err != nil {
		l.Error("Failed to store records", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrNoDatabase) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(sum)
}
