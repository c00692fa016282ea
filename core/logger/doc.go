// Package logger builds the zap logger shared by the CLI commands, the HTTP server and
// the feature services.
//
// New picks the zap development config for level "debug" and the production config
// otherwise; format "console" swaps the JSON encoder for the colored console one. The
// recipe engine itself never logs, so every line comes from a caller that knows the
// request or command it runs in.
//
// # Request correlation
//
// The rayid middleware stores a request id in the fiber locals under RayIDKey.
// WithRayID returns a child logger carrying that id as the "ray_id" field, or the
// logger unchanged outside of a request.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Resolution failed", zap.Error(err))
package logger
