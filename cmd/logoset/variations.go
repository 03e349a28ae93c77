package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"logoset/internal/assets"
	"logoset/internal/dataset"
	"logoset/internal/generate"
	"logoset/internal/pattern"
	"logoset/internal/renumber"
)

func newVariationsCmd() *cobra.Command {
	var trigger string
	var baseDir string

	cmd := &cobra.Command{
		Use:   "variations <dataset>",
		Short: "Generate transparent logo variations with scales and rotations",
		Long: `variations renders the logo-variation space: two base variants (white
and black, unscaled, unrotated) followed by every color x scale x rotation
combination, each cropped to its content on a transparent padded canvas.
Files are numbered 0001 upward.

Existing numbered files are never overwritten: they are renumbered to the
keys directly after the variation space before generation starts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariations(args[0], trigger, baseDir)
		},
	}

	cmd.Flags().StringVar(&trigger, "trigger", "", `Caption trigger word (default "doom_<NAME>")`)
	cmd.Flags().StringVar(&baseDir, "dataset-dir", "", "Base directory for datasets (default: dataset/)")

	return cmd
}

func runVariations(name, trigger, baseDir string) error {
	dir := datasetDir(baseDir, name)
	if trigger == "" {
		trigger = "doom_" + name
	}

	logos, err := assets.Find(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Generating logo variations for dataset: %s\n\n", name)

	// Existing numbered files are curated content: move them out of the
	// keyspace before generating, and renumber them to continue after the
	// variation space once generation is done.
	variationEnd := len(pattern.Variations(trigger))
	var staged *renumber.Staged
	scan, err := dataset.Scan(dir)
	if err != nil {
		return err
	}
	if len(scan.Keys) > 0 {
		existing := renumber.Range{Start: scan.Keys[0], End: scan.MaxKey()}
		fmt.Printf("Renumbering existing files %s...\n", existing)
		staged, err = renumber.Stage(dir, existing, variationEnd+1)
		if err != nil {
			return err
		}
	}

	n, err := generate.Variations(dir, logos, trigger, generate.Options{
		Progress: func(v pattern.Variant, imageName string) {
			fmt.Printf("Generated: %s (color=%s, scale=%s, rotation=%d)\n", imageName, v.Color, v.Size, v.Rotation)
		},
	})
	if err != nil {
		return err
	}

	if staged != nil {
		moves, err := staged.Commit()
		if err != nil {
			return err
		}
		for _, m := range moves {
			fmt.Printf("Renumbered: %s -> %s\n", m.OldName, m.NewName)
		}
	}

	fmt.Printf("\nGenerated %d variations\nDone!\n", n)
	return nil
}
