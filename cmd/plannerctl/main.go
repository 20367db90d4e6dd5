package main

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "planner/internal/adapter/db"
	"planner/internal/config"
	"planner/pkg/translator"
)

var Version = "dev"

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	rootCmd := &cobra.Command{
		Use:           "plannerctl",
		Short:         "Operator tooling for the planner service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tasksCmd())
	rootCmd.AddCommand(restoreAlertsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect loads the service configuration and opens the store, the same way
// cmd/api does.
func connect() (*config.Config, *sqlx.DB, error) {
	cfg := config.LoadConfig()
	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguagePt, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to mysql: %w", err)
	}
	return cfg, db, nil
}

func closeDB(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		zap.L().Warn("failed to close mysql connection", zap.Error(err))
	}
}
