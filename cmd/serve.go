package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ifmsabrazil/adminpanel/analytics"
	"github.com/ifmsabrazil/adminpanel/assemblies"
	"github.com/ifmsabrazil/adminpanel/config"
	"github.com/ifmsabrazil/adminpanel/controllers"
	"github.com/ifmsabrazil/adminpanel/driver"
	"github.com/ifmsabrazil/adminpanel/roster"
	"github.com/ifmsabrazil/adminpanel/store"
	"github.com/ifmsabrazil/adminpanel/telemetry"
	"github.com/ifmsabrazil/adminpanel/utils"
)

const serviceName = "adminpanel"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OtelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", slog.String("error", err.Error()))
		}
	}()

	db, err := driver.ConnectDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	st := store.New(db)
	files := newFileStorage(cfg, logger)

	assemblyService := assemblies.NewService(st, files, logger)
	handler := controllers.Router{
		Controller:   controllers.Controller{Secret: []byte(cfg.JWTSecret), Logger: logger, Timeout: cfg.RequestTimeout},
		Assemblies:   controllers.AssemblyController{Service: assemblyService, Logger: logger},
		Participants: controllers.ParticipantController{Service: assemblyService, Logger: logger},
		Analytics:    controllers.AnalyticsController{Aggregator: analytics.NewAggregator(st, logger), Logger: logger},
		Rosters:      controllers.RosterController{Service: roster.NewService(st), Logger: logger},
	}.Handler()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", slog.String("addr", cfg.HTTPAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newFileStorage returns S3 storage when a bucket is configured. Without one,
// receipt cleanup on deletion is skipped with a warning per file.
func newFileStorage(cfg config.Config, logger *slog.Logger) assemblies.FileStorage {
	storage, err := utils.NewS3Storage(cfg.S3())
	if err != nil {
		logger.Warn("receipt storage disabled", slog.String("error", err.Error()))
		return utils.DisabledStorage{}
	}
	return storage
}
