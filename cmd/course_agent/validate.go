package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/course-builder/internal/grounding"
	"github.com/jonathan/course-builder/internal/observability"
	"github.com/jonathan/course-builder/internal/types"
	"github.com/jonathan/course-builder/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <material-type> <file>",
	Short: "Validate a material content file offline",
	Long: `Run the coverage and structure checks against a content file without
touching the database or the model. Useful for inspecting why a generation
was blocked, or for checking hand-edited content before approval.`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	mt, err := types.ParseMaterialType(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read content file: %w", err)
	}

	// Offline runs have no approved materials to ground against.
	cc := grounding.BuildContext(nil)
	res := validation.Validate(string(data), mt, cc)

	observability.NewPrinter(os.Stdout).PrintValidationResult(res)

	if res.Blocks() {
		return fmt.Errorf("validation %s: %s", res.Level, res.ErrorText())
	}
	fmt.Println("PASS")
	return nil
}
