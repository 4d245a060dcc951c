package cmd

import (
	"encoding/json"
	"fmt"

	"library-manager/core/config"
	"library-manager/core/database"
	"library-manager/core/logger"
	"library-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check consistency of the catalog mirror and the issue ledger",
	Long: `Cross-checks the mirrored catalog against open loans: per-book copy
bounds, overbooking and loans referencing books the engine no longer
lists. Outputs metrics by default or the full report with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		jsonOutput, _ := cmd.Flags().GetBool("json")

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

		report, err := integrity.NewService(db, logg).Audit(ctx)
		if err != nil {
			return fmt.Errorf("audit failed: %w", err)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println("\n=== Library Audit Metrics ===")
		fmt.Printf("Catalog Books: %d\n", report.CatalogBooks)
		fmt.Printf("Open Loans: %d\n", report.OpenLoans)
		fmt.Printf("Bounds Violations: %d\n", len(report.BoundsViolations))
		fmt.Printf("Overbooked: %d\n", len(report.Overbooked))
		fmt.Printf("Orphaned Loans: %d\n", len(report.OrphanedLoans))
		fmt.Printf("Execution Time: %s\n", report.ExecutionTime)

		if report.Clean() {
			logg.Info("Audit completed, no inconsistencies found")
		} else {
			logg.Warn("Audit completed with inconsistencies",
				zap.Strings("bounds_violations", report.BoundsViolations),
				zap.Strings("overbooked", report.Overbooked),
				zap.Strings("orphaned_loans", report.OrphanedLoans),
			)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(auditCmd)
	auditCmd.Flags().Bool("json", false, "Output the full report as JSON")
}
