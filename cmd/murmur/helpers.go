package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/murmurapp/murmur/internal/config"
	"github.com/murmurapp/murmur/internal/detect"
	"github.com/murmurapp/murmur/internal/llm"
	"github.com/murmurapp/murmur/internal/privacy"
	"github.com/murmurapp/murmur/internal/storage"
	"github.com/murmurapp/murmur/internal/vault"
)

// openStorage opens (and migrates) the configured database.
func openStorage(cmd *cobra.Command) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "~/.local/share/murmur/murmur.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(cmd.Context()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// newDetector builds the detector, attaching the external classifier when
// one is configured. Detection always works without a classifier.
func newDetector() *detect.Detector {
	logger := slog.Default()

	provider := viper.GetString("llm.provider")
	if provider == "" {
		return detect.NewDetector(logger)
	}

	classifier, err := llm.NewClassifier(llm.Config{
		Provider:   provider,
		APIKey:     viper.GetString("llm.api_key"),
		Model:      viper.GetString("llm.model"),
		BaseURL:    viper.GetString("llm.base_url"),
		Timeout:    viper.GetDuration("llm.timeout"),
		MaxRetries: viper.GetInt("llm.max_retries"),
	}, logger)
	if err != nil {
		// Misconfigured classifier degrades to rule-based detection.
		logger.Warn("classifier unavailable, using rule-based detection only",
			"error", err)
		return detect.NewDetector(logger)
	}

	timeout := viper.GetDuration("llm.timeout")
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return detect.NewDetector(logger,
		detect.WithClassifier(classifier),
		detect.WithClassifierTimeout(timeout))
}

// newPrivacyStore wires the privacy store over storage, vault, and detector.
func newPrivacyStore(store *storage.SQLiteStorage) (*privacy.Store, *vault.Vault) {
	logger := slog.Default()
	v := vault.New(store, logger)
	return privacy.NewStore(store, v, newDetector(), logger), v
}

// readTextArg reads document text from the optional file argument, or from
// stdin when no file is given.
func readTextArg(args []string, fileIndex int) (string, error) {
	if len(args) > fileIndex {
		data, err := os.ReadFile(args[fileIndex]) // #nosec G304 -- path comes from the CLI argument
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[fileIndex], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
