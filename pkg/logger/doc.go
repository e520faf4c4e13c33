// Package logger builds *slog.Logger instances for formkit services and
// provides attribute helpers that keep key names consistent across packages.
//
// New assembles a handler from functional options: output format (text or
// json), minimum level, static attributes and ContextExtractor callbacks that
// copy request-scoped values out of a context.Context on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "signup"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	log.Warn("duplicate field name", logger.Field("email"))
//
// Helpers in attr.go (Field, Rule, Event, Count, Error, ...) return empty
// attributes for nil inputs, so callers can pass them unconditionally.
//
// Discard returns a logger that drops everything; packages use it as their
// default when the caller does not supply one.
package logger
