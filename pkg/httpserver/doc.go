// Package httpserver runs an http.Handler with timeouts and graceful shutdown.
//
// Run binds the listener, serves until the context is cancelled or the
// process receives SIGINT or SIGTERM, then drains in-flight requests within
// the shutdown timeout. Shutdown may also be called directly and is
// idempotent.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, tokenhttp.NewRouter(h)); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Start failures wrap ErrStart and shutdown failures wrap ErrShutdown.
package httpserver
