package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync pass over the configured titles",
	Long: `Fetch title metadata from the eCFR API, detect which configured titles
changed since the last run, and download, flatten and merge their structure
and regulation text into the database. Titles that are already up to date
are skipped.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	if err := syncCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer p.close()

	log.Info("Starting sync pass",
		zap.Ints("titles", cfg.TitleNumbers),
		zap.String("endpoint", cfg.API.Endpoint))

	result, err := p.manager.SyncAll(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	synced := 0
	for _, tr := range result.Titles {
		if tr.Synced {
			synced++
		}
	}
	log.Info("Sync pass finished",
		zap.Int("titles", len(result.Titles)),
		zap.Int("synced", synced),
		zap.Int("failed", result.Failed))

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d titles failed to sync", result.Failed, len(result.Titles))
	}
	return nil
}
