package cmd

import (
	"fmt"
	"os"

	"data-integrity/core/config"
	"data-integrity/core/database"
	"data-integrity/core/loader"
	"data-integrity/core/logger"
	"data-integrity/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "data-integrity",
	Short: "Data Quality & Integrity Toolkit",
	Long: `data-integrity profiles tabular datasets and reconciles them against
each other. Datasets are CSV files, db://table references or
s3://bucket/object references.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// setup loads the configuration and builds the run-scoped logger every
// command starts from.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.WithRunID(l), nil
}

// sources builds the lazily-opened dataset backends from the configuration.
func sources(cfg *config.Config) loader.Sources {
	return loader.Sources{
		DB: func() (*gorm.DB, error) {
			return database.Connect(cfg.Database)
		},
		Storage: func() (storage.Client, error) {
			return storage.NewClient(cfg.Storage)
		},
		Bucket: cfg.Storage.Bucket,
	}
}
