package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/course-builder/internal/observability"
)

var statusCmd = &cobra.Command{
	Use:   "status [course-id]",
	Short: "Show course and pipeline status",
	Long:  "Show the pipeline state and per-material status of a course, or list recent courses when no ID is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStatus,
}

var statusConfigPath string

func init() {
	statusCmd.Flags().StringVar(&statusConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(statusConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if len(args) == 0 {
		courses, err := database.ListCourses(ctx, 20)
		if err != nil {
			return err
		}
		if len(courses) == 0 {
			fmt.Println("No courses found")
			return nil
		}
		for _, c := range courses {
			fmt.Printf("%s  %-10s  %s\n", c.ID, c.Status, c.Title)
		}
		return nil
	}

	courseID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid course ID: %w", err)
	}

	course, err := database.GetCourse(ctx, courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return fmt.Errorf("course not found: %s", courseID)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCourse(course)

	if p, err := database.GetPipeline(ctx, courseID); err == nil && p != nil {
		printer.PrintPipeline(p)
	}
	if materials, err := database.ListMaterials(ctx, courseID); err == nil {
		printer.PrintMaterials(materials)
	}
	return nil
}
