package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/course-builder/internal/observability"
	"github.com/jonathan/course-builder/internal/pipeline"
	"github.com/jonathan/course-builder/internal/types"
)

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Generate the next material of a course",
	Long: `Perform one single-step advance: generate the earliest eligible material,
validate it, and leave it waiting for approval. With --all, advance every
in-flight course by one step concurrently.`,
	RunE: runAdvance,
}

var (
	advanceCourseID   string
	advanceMaterial   string
	advanceAll        bool
	advanceWorkers    int
	advanceConfigPath string
	advanceVerbose    bool
)

func init() {
	advanceCmd.Flags().StringVar(&advanceCourseID, "course", "", "Course ID to advance")
	advanceCmd.Flags().StringVar(&advanceMaterial, "material", "", "Target a specific material type instead of the next eligible one")
	advanceCmd.Flags().BoolVar(&advanceAll, "all", false, "Advance every non-completed course by one step")
	advanceCmd.Flags().IntVar(&advanceWorkers, "workers", 4, "Concurrent courses when using --all")
	advanceCmd.Flags().StringVar(&advanceConfigPath, "config", "", "Path to JSON config file")
	advanceCmd.Flags().BoolVarP(&advanceVerbose, "verbose", "v", false, "Print pipeline state after advancing")

	rootCmd.AddCommand(advanceCmd)
}

func runAdvance(_ *cobra.Command, _ []string) error {
	if advanceAll == (advanceCourseID != "") {
		return fmt.Errorf("provide either --course or --all")
	}
	if advanceAll && advanceMaterial != "" {
		return fmt.Errorf("--material cannot be combined with --all")
	}

	cfg, err := loadConfig(advanceConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	orchestrator, database, client, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()
	defer client.Close()

	if advanceAll {
		return advanceAllCourses(ctx, orchestrator, database)
	}

	courseID, err := uuid.Parse(advanceCourseID)
	if err != nil {
		return fmt.Errorf("invalid course ID: %w", err)
	}

	result, err := orchestrator.Advance(ctx, courseID, advanceMaterial)
	if err != nil {
		return err
	}
	fmt.Println(result.Message)

	if advanceVerbose {
		printer := observability.NewPrinter(os.Stdout)
		if p, err := database.GetPipeline(ctx, courseID); err == nil {
			printer.PrintPipeline(p)
		}
		if materials, err := database.ListMaterials(ctx, courseID); err == nil {
			printer.PrintMaterials(materials)
		}
	}
	return nil
}

// advanceAllCourses performs one advance per in-flight course, several
// courses at a time. Distinct courses share no state, so they are safe to
// drive concurrently; within a course the claim still guarantees a single
// generation.
func advanceAllCourses(ctx context.Context, orchestrator *pipeline.Orchestrator, store pipeline.Store) error {
	courses, err := store.ListCourses(ctx, 0)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(advanceWorkers)

	for _, course := range courses {
		if course.Status == types.CourseStatusCompleted {
			continue
		}
		g.Go(func() error {
			result, err := orchestrator.Advance(gctx, course.ID, "")
			if err != nil {
				// A stuck or failing course should not stop the batch.
				var conflict *pipeline.ConflictError
				if errors.As(err, &conflict) {
					fmt.Printf("%s: skipped (%v)\n", course.ID, err)
					return nil
				}
				fmt.Printf("%s: failed (%v)\n", course.ID, err)
				return nil
			}
			fmt.Printf("%s: %s\n", course.ID, result.Message)
			return nil
		})
	}

	return g.Wait()
}
