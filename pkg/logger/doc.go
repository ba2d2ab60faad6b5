// Package logger builds *slog.Logger values with environment defaults,
// env overrides and context extractors.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "bookingd"),
//		logger.WithConfig(logCfg),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "dispatch failed", logger.Error(err), logger.Component("booking"))
//
// Attribute helpers keep key names consistent; those taking an error or id
// return an empty Attr for zero values, which slog drops.
package logger
