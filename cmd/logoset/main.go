package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "logoset",
		Short: "Prepare logo image datasets for model fine-tuning",
		Long: `logoset maintains directories of numbered image/caption pairs used to
fine-tune image models on logo styles.

Each dataset lives under dataset/<name>/ and holds logo source assets
(logo-white, logo-black, logo-gray), generated pattern images, and
hand-curated usecase images that survive regeneration.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newRegenerateCmd(),
		newVariationsCmd(),
		newValidateCmd(),
		newUploadCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// datasetDir resolves the directory of a named dataset. baseDir defaults to
// the conventional dataset/ folder of the working tree.
func datasetDir(baseDir, name string) string {
	if baseDir == "" {
		baseDir = "dataset"
	}
	return filepath.Join(baseDir, name)
}
