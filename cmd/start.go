package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"recipe-graph/core/loader"
	"recipe-graph/core/logger"
	"recipe-graph/core/middleware/auth"
	"recipe-graph/core/middleware/rayid"

	"recipe-graph/feature/graph"
	"recipe-graph/feature/ingest"
	"recipe-graph/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "recipe-graph/docs/swagger"
)

// @title Recipe Graph API
// @version 1.0
// @description API for resolving crafting recipes into node and edge graphs.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the recipe graph server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Configuration, logger, storage and optional database
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Record source (graph is disabled without one)
		source, cache, err := rt.records()
		if err != nil {
			logg.Warn("Record source unavailable, graph feature disabled", zap.Error(err))
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		graphFeature := graph.NewFeature(source, cache, rt.store, rt.cfg.Storage.Bucket, logg, rt.cfg.Graph)
		ingestFeature := ingest.NewFeature(rt.store, rt.cfg.Storage.Bucket, logg, rt.db, rt.cfg.Records)
		// Fresh rows start a new graph session on the next request.
		ingestFeature.Service().OnStored(graphFeature.Service().Invalidate)

		mgr.Register(graphFeature)
		mgr.Register(ingestFeature)
		mgr.Register(integrity.NewFeature(rt.store, rt.cfg.Storage, logg, rt.db, source, cache, rt.folders(), rt.sinks()))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		if !rt.cfg.Server.AuthEnabled() {
			logg.Warn("No API key configured, requests are not authenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey, Public: []string{"/swagger"}}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", rt.cfg.Server.Addr()))
			if err := app.Listen(rt.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
