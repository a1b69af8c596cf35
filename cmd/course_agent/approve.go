package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/course-builder/internal/pipeline"
)

var approveCmd = &cobra.Command{
	Use:   "approve <material-id>",
	Short: "Approve a generated material",
	Long:  "Record a human approval for a completed material, optionally replacing its content with an edited version read from a file. Approving the final material completes the course.",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprove,
}

var (
	approveContentFile string
	approveConfigPath  string
)

func init() {
	approveCmd.Flags().StringVar(&approveContentFile, "content", "", "Path to a file holding reviewer-edited content")
	approveCmd.Flags().StringVar(&approveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(approveCmd)
}

func runApprove(_ *cobra.Command, args []string) error {
	materialID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid material ID: %w", err)
	}

	var edited *string
	if approveContentFile != "" {
		data, err := os.ReadFile(approveContentFile)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		content := string(data)
		edited = &content
	}

	cfg, err := loadConfig(approveConfigPath)
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
	material, err := orchestrator.Approve(ctx, materialID, edited)
	if err != nil {
		return err
	}

	fmt.Printf("Approved %s (%s)\n", material.MaterialType, material.ID)
	return nil
}
