// Package app provides the command tree for the eCFR sync application.
package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ttbdata/ecfr-sync/internal/versions"
)

// log is the process logger, set by NewRootCmd before any command runs
var log = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:               "ecfr-sync",
	DisableAutoGenTag: true,
	Short:             "eCFR title sync service",
	Long: `ecfr-sync downloads CFR title structure and regulation text from the
public eCFR API, flattens the hierarchy, and maintains an embedded database
of titles and their details. It can run one-shot syncs or serve the synced
data over HTTP.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			log.Error("Error displaying help", zap.Error(err))
		}
	},
}

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger != nil {
		log = logger
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Error("Error binding debug flag", zap.Error(err))
	}

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := versions.GetVersionInfo()
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			log.Error("Error retrieving format flag", zap.Error(err))
			return
		}

		if format == "json" {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				log.Error("Error formatting version info as JSON", zap.Error(err))
				return
			}
			fmt.Println(string(output))
		} else {
			fmt.Println(info.String())
		}
	},
}

func init() {
	versionCmd.Flags().String("format", "", "Output format (json)")
}
