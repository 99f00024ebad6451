package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"boardsync/core/config"
	"boardsync/core/database"
	"boardsync/core/logger"

	"github.com/spf13/cobra"
)

// syncCmd runs one sync phase from the command line, without the HTTP
// server. Useful for cron jobs and one-off runs.
var syncCmd = &cobra.Command{
	Use:   "sync [phase]",
	Short: "Run a sync phase once and exit",
	Long: `Runs one sync phase against the upstream ERP and exits.

Phases: roster, fleet, events, vacation, sickness, full.

Examples:
  # Full run, all phases in order
  boardsync sync full

  # Only refresh the employee roster
  boardsync sync roster`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		orchestrator, err := buildSyncService(cfg, db, logg)
		if err != nil {
			return err
		}

		result, err := orchestrator.Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
