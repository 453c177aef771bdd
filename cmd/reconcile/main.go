// cmd/reconcile/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/classloop/membership/internal/config"
	"github.com/classloop/membership/internal/service"
	"github.com/classloop/membership/internal/store"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	batchSize int
	dryRun    bool
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Replay current-store rows the legacy store is missing",
	Long: `The write path mirrors every organization and membership write into the
legacy store on a best-effort basis. This tool finds rows the mirror dropped
and replays them so the two stores converge.`,
}

var organizationsCmd = &cobra.Command{
	Use:   "organizations",
	Short: "Reconcile organization rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *service.ReconciliationService) error {
			return svc.ReconcileOrganizations(ctx)
		})
	},
}

var identitiesCmd = &cobra.Command{
	Use:   "identities",
	Short: "Reconcile membership rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *service.ReconciliationService) error {
			return svc.ReconcileIdentities(ctx)
		})
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Reconcile organizations, then memberships",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *service.ReconciliationService) error {
			return svc.ReconcileAll(ctx)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&batchSize, "batch-size", 100, "Number of rows to process per batch")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print what would be done without making changes")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Minute, "Maximum time to run reconciliation")

	rootCmd.AddCommand(organizationsCmd, identitiesCmd, allCmd)
}

func withService(run func(ctx context.Context, svc *service.ReconciliationService) error) error {
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(slogger)

	cfg := config.Load()

	currentDB, err := openDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to current store: %w", err)
	}
	legacyDB, err := openDatabase(cfg.LegacyDatabase)
	if err != nil {
		return fmt.Errorf("connecting to legacy store: %w", err)
	}

	writer := store.NewDualWriter(currentDB, legacyDB, cfg.Store.CallTimeout, slogger)

	svc := service.NewReconciliationService(writer, slogger)
	svc.SetBatchSize(batchSize)
	svc.SetDryRun(dryRun)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return run(ctx, svc)
}

func openDatabase(dbCfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		dbCfg.Host, dbCfg.Port, dbCfg.User, dbCfg.Password, dbCfg.Name, dbCfg.SSLMode, dbCfg.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
