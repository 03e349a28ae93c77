package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logoset/internal/validate"
)

func newValidateCmd() *cobra.Command {
	var trigger string
	var baseDir string
	var decode bool

	cmd := &cobra.Command{
		Use:   "validate <dataset>...",
		Short: "Check image/caption pairing and trigger-word conventions",
		Long: `validate runs a read-only diagnostic pass over one or more datasets.
It reports missing captions, orphaned captions, and captions that do not
start with the trigger word. Problems are warnings: the run continues and
reports everything it finds.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args, trigger, baseDir, decode)
		},
	}

	cmd.Flags().StringVar(&trigger, "trigger", "doom_", "Required caption trigger prefix")
	cmd.Flags().StringVar(&baseDir, "dataset-dir", "", "Base directory for datasets (default: dataset/)")
	cmd.Flags().BoolVar(&decode, "decode", false, "Also decode every image and report corrupt files")

	return cmd
}

func runValidate(names []string, trigger, baseDir string, decode bool) error {
	failed := 0
	for _, name := range names {
		result, err := validate.Dataset(datasetDir(baseDir, name), trigger, decode)
		if err != nil {
			fmt.Printf("\n%s: ERROR - %v\n", name, err)
			failed++
			continue
		}
		result.Print(os.Stdout)
	}

	fmt.Println("\nValidation complete!")
	if failed > 0 {
		return fmt.Errorf("%d dataset(s) could not be validated", failed)
	}
	return nil
}
