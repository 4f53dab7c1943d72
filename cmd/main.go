package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ingest_api/internal/config"
	"ingest_api/internal/handlers"
	"ingest_api/internal/logger"
	"ingest_api/internal/report"
	"ingest_api/internal/repository"
	"ingest_api/internal/server"
	"ingest_api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load configs/config.yml
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	// wire dependencies
	repos := repository.NewRepository(cfg.Paths)
	services := service.NewService(repos, cfg.Paths, reportGenerator(cfg, log))
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server in the background; the process keeps running until
	// a termination signal arrives.
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Server, apiHandler, log)

	waitForShutdown(srv, log)
}

// reportGenerator returns the injected report capability, or nil when
// disabled so that /api/report answers 501 instead of failing late.
func reportGenerator(cfg *config.Config, log *logger.Logger) service.ReportGenerator {
	if !cfg.Report.Enabled {
		log.Infow("report generation disabled in config")
		return nil
	}
	return report.NewPDFGenerator()
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, sc config.ServerConfig, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(sc.Host, sc.Port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("API server started", "host", sc.Host, "port", sc.Port)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
