package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ttbdata/ecfr-sync/internal/api"
	"github.com/ttbdata/ecfr-sync/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve synced regulation data over HTTP",
	Long: `Start the HTTP server exposing synced titles, hierarchy nodes and sync
state. When the configuration carries a sync policy interval, a background
loop keeps the database current while the server runs.`,
	RunE: runServe,
}

const defaultGracefulTimeout = 30 * time.Second

func init() {
	serveCmd.Flags().String("address", ":8080", "Address to listen on")
	serveCmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")

	if err := viper.BindPFlag("address", serveCmd.Flags().Lookup("address")); err != nil {
		panic(err)
	}
	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	address := viper.GetString("address")

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer p.close()

	svc := service.New(p.conn.Queries, log)
	server := api.NewServer(address, svc, p.metrics, log)

	syncCtx, syncCancel := context.WithCancel(context.Background())
	defer syncCancel()
	if cfg.SyncPolicy != nil && cfg.SyncPolicy.Interval != "" {
		interval, err := time.ParseDuration(cfg.SyncPolicy.Interval)
		if err != nil {
			return fmt.Errorf("invalid sync interval %q: %w", cfg.SyncPolicy.Interval, err)
		}
		go runSyncLoop(syncCtx, p, interval)
	}

	go func() {
		log.Info("Server listening", zap.String("address", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	syncCancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("Server shutdown complete")
	return nil
}

// runSyncLoop syncs immediately, then on every tick until the context ends
func runSyncLoop(ctx context.Context, p *pipeline, interval time.Duration) {
	log.Info("Starting background sync loop", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := p.manager.SyncAll(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Background sync failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
