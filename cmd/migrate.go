package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/narasux/goarticle/pkg/infras/database"
	"github.com/narasux/goarticle/pkg/logging"
	// load migration package to register migrations
	_ "github.com/narasux/goarticle/pkg/migration"
	"github.com/narasux/goarticle/pkg/version"
)

// NewMigrateCmd ...
func NewMigrateCmd() *cobra.Command {
	var (
		migrationID string
		rollback    bool
	)

	migrateCmd := cobra.Command{
		Use:   "migrate",
		Short: "Apply (or roll back) migrations to the database tables.",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			logging.InitLogger()
			database.InitDBClient(ctx)

			action, run := "migrate", database.RunMigrate
			if rollback {
				action, run = "rollback", database.RunRollback
			}
			if err := run(ctx, migrationID); err != nil {
				log.Fatalf("failed to run %s: %s", action, err)
			}

			dbVersion, err := database.Version(ctx)
			if err != nil {
				log.Fatalf("failed to get database version: %s", err)
			}
			logging.GetSystemLogger().Infof("%s success %s\nDatabaseVersion: %s", action, version.GetVersion(), dbVersion)
		},
	}

	migrateCmd.Flags().StringVar(
		&migrationID, "migration", "",
		"target migration, blank means latest version (or the last one when rollback)",
	)
	migrateCmd.Flags().BoolVar(&rollback, "rollback", false, "roll back migrations instead of applying")

	return &migrateCmd
}

func init() {
	rootCmd.AddCommand(NewMigrateCmd())
}
