package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"logoset/internal/assets"
	"logoset/internal/dataset"
	"logoset/internal/generate"
	"logoset/internal/pattern"
	"logoset/internal/renumber"
)

func newRegenerateCmd() *cobra.Command {
	var tag string
	var usecaseStart, usecaseEnd int
	var baseDir string

	cmd := &cobra.Command{
		Use:   "regenerate <dataset>",
		Short: "Regenerate the 45-image pattern, preserving usecase images",
		Long: `regenerate rebuilds a dataset's pattern images (3 colors x 3 sizes x
5 rotations, keys 0001-0045) from its logo sources. Numbered files above the
pattern range are treated as hand-curated usecase images: they are relocated
to the keys directly after the pattern, content untouched, and everything
else numbered is deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegenerate(args[0], tag, usecaseStart, usecaseEnd, baseDir)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", `Caption tag, e.g. "<$SOL>" (default "<$NAME>")`)
	cmd.Flags().IntVar(&usecaseStart, "usecase-start", 0, "First usecase key to preserve (auto-detected if unset)")
	cmd.Flags().IntVar(&usecaseEnd, "usecase-end", 0, "Last usecase key to preserve (auto-detected if unset)")
	cmd.Flags().StringVar(&baseDir, "dataset-dir", "", "Base directory for datasets (default: dataset/)")

	return cmd
}

func runRegenerate(name, tag string, usecaseStart, usecaseEnd int, baseDir string) error {
	dir := datasetDir(baseDir, name)
	if tag == "" {
		tag = "<$" + strings.ToUpper(name) + ">"
	}

	// A complete logo asset set is a precondition: nothing is written
	// without it.
	logos, err := assets.Find(dir)
	if err != nil {
		return err
	}

	patternEnd := len(pattern.Build(tag, pattern.Options{}))
	newUsecaseStart := patternEnd + 1

	fmt.Printf("Regenerating %s dataset in: %s\n", strings.ToUpper(name), dir)
	fmt.Printf("Tag: %s\n", tag)
	fmt.Printf("Pattern: color x size x rotation (%d images)\n", patternEnd)

	usecase, err := resolveUsecase(dir, patternEnd, usecaseStart, usecaseEnd)
	if err != nil {
		return err
	}

	finalEnd := patternEnd
	if usecase != nil {
		finalEnd = newUsecaseStart + usecase.Len() - 1
		fmt.Println("\nThis will:")
		fmt.Printf("  1. Generate new images 0001-%s according to the pattern\n", dataset.FormatKey(patternEnd))
		fmt.Printf("  2. Renumber usecase images %s to %s-%s\n",
			usecase, dataset.FormatKey(newUsecaseStart), dataset.FormatKey(finalEnd))
		fmt.Printf("  3. Delete old files outside 0001-%s (except logo files)\n", dataset.FormatKey(finalEnd))
	} else {
		fmt.Println("\nThis will:")
		fmt.Printf("  1. Generate new images 0001-%s according to the pattern\n", dataset.FormatKey(patternEnd))
		fmt.Println("  2. Delete old files (except logo files)")
	}

	// Phase 1: stage usecase files out of the numeric keyspace.
	var staged *renumber.Staged
	if usecase != nil {
		fmt.Printf("\nPreserving usecase images %s...\n", usecase)
		staged, err = renumber.Stage(dir, *usecase, newUsecaseStart)
		if err != nil {
			return err
		}
	}

	// Phase 2: generate the pattern.
	fmt.Printf("\nGenerating new dataset images 0001-%s...\n", dataset.FormatKey(patternEnd))
	_, err = generate.Pattern(dir, logos, tag, generate.Options{
		Progress: func(v pattern.Variant, imageName string) {
			fmt.Printf("Generated: %s (color=%s, size=%s, rotation=%d)\n", imageName, v.Color, v.Size, v.Rotation)
		},
	})
	if err != nil {
		return err
	}

	// Phase 3: commit staged files to their post-pattern keys.
	if staged != nil {
		moves, err := staged.Commit()
		if err != nil {
			return err
		}
		for _, m := range moves {
			fmt.Printf("Renumbered: %s -> %s\n", m.OldName, m.NewName)
		}
	}

	// Phase 4: sweep out everything numbered outside the final interval.
	fmt.Printf("\nCleaning up old files (keeping 0001-%s and logo files)...\n", dataset.FormatKey(finalEnd))
	deleted, err := renumber.Cleanup(dir, renumber.Range{Start: 1, End: finalEnd})
	if err != nil {
		return err
	}
	for _, n := range deleted {
		fmt.Printf("Deleted: %s\n", n)
	}
	if len(deleted) == 0 {
		fmt.Println("No old files to clean up.")
	}

	fmt.Println("\nDone! Dataset regenerated successfully.")
	if usecase != nil {
		fmt.Printf("Total images: %d (0001-%s pattern + %s-%s usecase)\n",
			finalEnd, dataset.FormatKey(patternEnd), dataset.FormatKey(newUsecaseStart), dataset.FormatKey(finalEnd))
	} else {
		fmt.Printf("Total images: %d (0001-%s pattern)\n", finalEnd, dataset.FormatKey(finalEnd))
	}
	return nil
}

// resolveUsecase combines explicit flag values with auto-detection. Flags
// win field by field; nil means there is nothing to preserve.
func resolveUsecase(dir string, threshold, start, end int) (*renumber.Range, error) {
	if start > 0 && end > 0 {
		return &renumber.Range{Start: start, End: end}, nil
	}

	scan, err := dataset.Scan(dir)
	if err != nil {
		return nil, err
	}
	det, ok := renumber.Detect(scan, threshold)
	if !ok {
		if start == 0 && end == 0 {
			fmt.Println("No usecase images detected. Generating pattern images only.")
			return nil, nil
		}
		return nil, fmt.Errorf("usecase range partially specified but no files found above key %d", threshold)
	}

	r := det.Range
	if start > 0 {
		r.Start = start
	}
	if end > 0 {
		r.End = end
	}
	fmt.Printf("Auto-detected usecase images: %s\n", r)
	if len(det.Gaps) > 0 {
		log.Printf("Warning: usecase range %s has no files at keys %v; the whole interval is relocated anyway", r, det.Gaps)
	}
	return &r, nil
}
