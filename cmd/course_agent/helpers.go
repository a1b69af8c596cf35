package main

import (
	"context"
	"fmt"

	"github.com/jonathan/course-builder/internal/config"
	"github.com/jonathan/course-builder/internal/db"
	"github.com/jonathan/course-builder/internal/llm"
	"github.com/jonathan/course-builder/internal/pipeline"
)

// loadConfig merges, in order of precedence: CLI flags (applied by callers),
// the optional --config JSON file, then environment variables.
func loadConfig(configPath string) (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		if err := fileCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *fileCfg
	}
	cfg = cfg.MergeWithDefaults(config.FromEnv())
	return cfg, nil
}

// modelConfig builds the tier-to-model map from configuration overrides.
func modelConfig(cfg config.Config) *llm.Config {
	models := llm.DefaultConfig()
	if cfg.LiteModel != "" {
		models = models.WithModel(llm.TierLite, cfg.LiteModel)
	}
	if cfg.StandardModel != "" {
		models = models.WithModel(llm.TierStandard, cfg.StandardModel)
	}
	return models
}

// openStore connects to the database and applies the schema.
func openStore(ctx context.Context, cfg config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set %s or 'database_url' in config)", config.EnvDatabaseURL)
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return database, nil
}

// buildOrchestrator wires the database and Gemini client into an orchestrator.
// The caller owns closing the returned DB and client.
func buildOrchestrator(ctx context.Context, cfg config.Config) (*pipeline.Orchestrator, *db.DB, llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, nil, nil, &pipeline.ConfigurationError{Message: fmt.Sprintf("%s is not set", config.EnvAPIKey)}
	}

	database, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := llm.NewGeminiClient(ctx, modelConfig(cfg), cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, nil, nil, err
	}

	orchestrator := pipeline.New(database, client, pipeline.Options{
		GenerationTimeout: cfg.ParsedGenerationTimeout(),
	})
	return orchestrator, database, client, nil
}
