package cmd

import (
	"fmt"

	"library-manager/core/config"
	"library-manager/core/database"
	"library-manager/core/logger"
	"library-manager/core/storage"
	"library-manager/feature/archive"
	"library-manager/feature/catalog"
	"library-manager/feature/circulation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Upload a snapshot of the catalog and ledger to object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		// Connect to database (required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		// Create storage client (required here, unlike the server)
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := archive.NewService(client, cfg.Storage.Bucket, catalog.NewStore(db), circulation.NewLedger(db), logg)
		objects, err := svc.Backup(ctx)
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}

		logg.Info("Backup completed", zap.Strings("objects", objects))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(backupCmd)
}
