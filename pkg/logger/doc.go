// Package logger builds slog loggers for sealkit binaries.
//
// New returns a *slog.Logger configured by Option functions: output format,
// level, static attributes and ContextExtractor callbacks that copy
// request-scoped values (such as the request id) into every record.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "tokend"),
//		logger.WithContextExtractors(tokenhttp.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "token rejected", logger.Variant(v), logger.FailureKind(err))
//
// Attribute helpers keep key names consistent. FailureKind logs only the
// codec failure class; tokens and keys must never be logged.
package logger
