package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/course-builder/internal/observability"
	"github.com/jonathan/course-builder/internal/pipeline"
	"github.com/jonathan/course-builder/internal/types"
)

var createCourseCmd = &cobra.Command{
	Use:   "create-course",
	Short: "Create a course with its eight pending materials",
	Long:  "Create a course record plus one pending material per step (objectives, agenda, slides, trainer notes, exercises, manual, assessment, resources) and an idle pipeline.",
	RunE:  runCreateCourse,
}

var (
	createInput      types.CourseInput
	createConfigPath string
	createVerbose    bool
)

func init() {
	createCourseCmd.Flags().StringVar(&createInput.Title, "title", "", "Course title (required)")
	createCourseCmd.Flags().StringVar(&createInput.Subject, "subject", "", "Course subject (required)")
	createCourseCmd.Flags().StringVar(&createInput.Duration, "duration", "", "Course duration, e.g. '2 days' (required)")
	createCourseCmd.Flags().StringVar(&createInput.Level, "level", "beginner", "Difficulty: beginner, intermediate, or advanced")
	createCourseCmd.Flags().StringVar(&createInput.Environment, "environment", "corporate", "Setting: academic or corporate")
	createCourseCmd.Flags().StringVar(&createInput.Participants, "participants", "", "Audience description (required)")
	createCourseCmd.Flags().StringVar(&createInput.Tone, "tone", "professional", "Writing tone")
	createCourseCmd.Flags().StringVar(&createInput.Language, "language", "en", "Target language")
	createCourseCmd.Flags().StringVar(&createConfigPath, "config", "", "Path to JSON config file")
	createCourseCmd.Flags().BoolVarP(&createVerbose, "verbose", "v", false, "Print detailed course information")

	_ = createCourseCmd.MarkFlagRequired("title")
	_ = createCourseCmd.MarkFlagRequired("subject")
	_ = createCourseCmd.MarkFlagRequired("duration")
	_ = createCourseCmd.MarkFlagRequired("participants")

	rootCmd.AddCommand(createCourseCmd)
}

func runCreateCourse(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(createConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	// No model client needed for creation; the orchestrator only validates
	// and seeds records here.
	orchestrator := pipeline.New(database, nil, pipeline.Options{})
	course, err := orchestrator.CreateCourse(ctx, &createInput)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	if createVerbose {
		observability.NewPrinter(os.Stdout).PrintCourse(course)
	}
	fmt.Printf("Created course %s (%d materials pending)\n", course.ID, types.TotalSteps)
	return nil
}
