// Package logger builds slog.Logger instances with a small set of options:
// output format (JSON or text), level, static attributes, and context
// extractors that inject request-scoped values such as request IDs into
// every emitted record.
//
//	log := logger.New(
//		logger.WithDevelopment("wiz"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	logger.SetAsDefault(log)
package logger
