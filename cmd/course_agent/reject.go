package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/course-builder/internal/pipeline"
)

var rejectCmd = &cobra.Command{
	Use:   "reject <material-id>",
	Short: "Reject a generated material",
	Long:  "Record a human rejection for a completed material. The material becomes eligible again and the next advance regenerates it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runReject,
}

var rejectConfigPath string

func init() {
	rejectCmd.Flags().StringVar(&rejectConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(rejectCmd)
}

func runReject(_ *cobra.Command, args []string) error {
	materialID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid material ID: %w", err)
	}

	cfg, err := loadConfig(rejectConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	orchestrator := pipeline.New(database, nil, pipeline.Options{})
	material, err := orchestrator.Reject(ctx, materialID)
	if err != nil {
		return err
	}

	fmt.Printf("Rejected %s (%s); it will be regenerated on the next advance\n", material.MaterialType, material.ID)
	return nil
}
