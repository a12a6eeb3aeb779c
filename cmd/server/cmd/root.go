package cmd

import (
	"context"
	"fmt"
	"os"

	"churchdata/internal/app/server/config"
	"churchdata/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "churchdata",
	Short: "Church Data Collection - сервер учета членов церкви",
	Long: `Сервер принимает записи о членах церкви с мобильного клиента,
отдает их в админку и хранит версии схемы формы.

Настройки берутся из переменных окружения (.env подхватывается автоматически)
и из файла, переданного через --config.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute запускает CLI и возвращает код выхода
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		return 1
	}
	return 0
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	log = logger.New(cfg.Env, logger.WithLevel(cfg.Logger.LogLevel))
	if cfg.Auth.InsecureSecret {
		log.Warn("JWT_SECRET не задан, используется встроенный ключ local окружения; токены может подделать кто угодно")
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml, json, toml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(adminCmd)
}
