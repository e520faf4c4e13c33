// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives, or the
// listener fails. Shutdown is bounded by the shutdown timeout. Errors are
// wrapped with ErrStart or ErrShutdown.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Health returns a probe handler: without checks it reports liveness, with
// checks it reports readiness.
package httpserver
