package integrity

import (
	"errors"

	"recipe-graph/core/logger"
	"recipe-graph/core/reconcile"
	"recipe-graph/core/utils"
	"recipe-graph/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultIssueLimit = 100
	maxIssueLimit     = 10000
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.RecordsReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/records", h.HandleRecordsCheck)
	group.Get("/sinks", h.HandleSinksCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Schema, Records, Sinks). Checks without a configured backend report their error.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if structure, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = structure
	}

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if recs, err := h.service.CheckRecords(ctx, defaultIssueLimit); err != nil {
		report["records"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["records"] = recs
	}

	if plan, _, err := h.service.ReconcileSinks(ctx, reconcile.ReconcileOptions{}); err != nil {
		report["sinks"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["sinks"] = plan.Summary
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks if the bucket and its required folders exist. Optionally creates what is missing.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.FlagOrDefault(c.Query("fix"), false)

	report, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.OK() {
		l.Warn("Missing structure detected",
			zap.Bool("bucket_exists", report.BucketExists),
			zap.Strings("missing", report.Missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), report.Missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": report.Missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  report.Missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":        "checked",
		"bucket_exists": report.BucketExists,
		"missing":       report.Missing,
	})
}

// HandleSchemaCheck checks the record tables.
// @Summary Check Database Schema
// @Description Checks if the recipes and mods tables match the expected models.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 400 {object} map[string]string "Database not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrNoDatabase) {
			status = fiber.StatusBadRequest
		}
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleRecordsCheck validates the loaded records.
// @Summary Check Records
// @Description Validates every record of the current snapshot (result reference, craft type, amount, ingredients).
// @Tags integrity
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of issues listed" default(100)
// @Success 200 {object} checks.RecordsReport "Records Report"
// @Failure 400 {object} map[string]string "Record source not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/records [get]
func (h *Handler) HandleRecordsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", defaultIssueLimit)
	if limit <= 0 || limit > maxIssueLimit {
		limit = defaultIssueLimit
	}

	report, err := h.service.CheckRecords(c.Context(), limit)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrNoSource) {
			status = fiber.StatusBadRequest
		}
		l.Error("Records check failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Records check completed",
		zap.Int("total", report.Total),
		zap.Int("invalid", report.Invalid))

	return c.JSON(report)
}

// HandleSinksCheck reconciles the record sinks and optionally repairs the database.
// @Summary Reconcile Record Sinks
// @Description Compares the record rows of the CSV file, the bucket object and the recipes table against the reference sink. With confirm=true the planned purge and sync actions are applied to the recipes table.
// @Tags integrity
// @Accept json
// @Produce json
// @Param purge query boolean false "Plan deletion of database rows missing in the reference"
// @Param sync query boolean false "Plan upserts of reference rows missing or different in the database"
// @Param confirm query boolean false "Apply the planned actions"
// @Success 200 {object} map[string]interface{} "Reconcile Plan"
// @Failure 400 {object} map[string]string "Not enough sinks"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/sinks [get]
func (h *Handler) HandleSinksCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	opts := reconcile.ReconcileOptions{
		DoPurge:   utils.FlagOrDefault(c.Query("purge"), false),
		DoSync:    utils.FlagOrDefault(c.Query("sync"), false),
		Confirmed: utils.FlagOrDefault(c.Query("confirm"), false),
	}

	plan, executed, err := h.service.ReconcileSinks(c.Context(), opts)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrNoSinks) {
			status = fiber.StatusBadRequest
		}
		l.Error("Sinks check failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Sinks check completed",
		zap.Int("total", plan.Summary.TotalItems),
		zap.Int("mismatches", plan.Summary.Mismatches),
		zap.Int("executed", executed))

	status := "checked"
	if executed > 0 {
		status = "fixed"
	}
	return c.JSON(fiber.Map{
		"status":   status,
		"executed": executed,
		"plan":     plan,
	})
}
