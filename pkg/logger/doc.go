// Package logger builds *slog.Logger instances with functional options and
// attribute helpers shared by the other packages.
//
// New picks a JSON or text handler and wraps it so ContextExtractor callbacks
// can add request-scoped attributes to every record:
//
//	log := logger.New(
//		logger.WithEnvironment("development", "devicedemo"),
//		logger.WithContextExtractors(deviceview.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "served page", logger.StatusCode(200))
//
// NewFromConfig does the same from a Config loaded from the environment
// (APP_ENV, SERVICE_NAME, LOG_LEVEL, LOG_FORMAT).
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
