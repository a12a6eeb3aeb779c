package cmd

import (
	"fmt"

	"churchdata/internal/infrastructure/migration"
	"churchdata/internal/infrastructure/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Миграции схемы Postgres",
	Long: `Управление миграциями из MIGRATIONS_PATH.
Для sqlite:// таблицы создаются при открытии базы, миграции не нужны.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(cmd, args); err != nil {
			return err
		}
		driver, _, err := storage.Driver(cfg.DB.DatabaseURI)
		if err != nil {
			return err
		}
		if driver != storage.DriverPostgres {
			return fmt.Errorf("миграции поддерживаются только для postgres, текущая база: %s", driver)
		}
		return nil
	},
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Применить все новые миграции",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := migration.NewMigration(cfg, migration.DefaultEngine).Up(); err != nil {
			return err
		}
		log.Info("migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Откатить все миграции (данные будут удалены)",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := migration.NewMigration(cfg, migration.DefaultEngine).Down(); err != nil {
			return err
		}
		log.Warn("migrations rolled back")
		return nil
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Показать текущую версию схемы",
	RunE: func(cmd *cobra.Command, _ []string) error {
		version, dirty, err := migration.NewMigration(cfg, migration.DefaultEngine).Version()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version: %d, dirty: %t\n", version, dirty)
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}
