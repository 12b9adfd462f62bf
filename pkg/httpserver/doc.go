// Package httpserver runs an http.Server with graceful shutdown on context
// cancellation or SIGINT/SIGTERM, plus liveness and readiness handlers.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package httpserver
