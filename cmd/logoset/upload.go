package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"logoset/internal/upload"
)

func newUploadCmd() *cobra.Command {
	var (
		category     string
		url          string
		architecture string
		name         string
		version      string
		public       bool
		tags         []string
		description  string
		conditioning string
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a trained model to the Runware registry",
		Long: `upload submits a model-upload task and follows the status stream until
the registry finishes processing. The API credential comes from the
RUNWARE_API_KEY environment variable; a .env file in the working directory
is loaded if present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(category, url, architecture, name, version, public,
				tags, description, conditioning, timeout)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Model category: checkpoint, lora or controlnet")
	cmd.Flags().StringVar(&url, "url", "", "Download URL for the model file")
	cmd.Flags().StringVar(&architecture, "architecture", "", `Model architecture, e.g. "flux"`)
	cmd.Flags().StringVar(&name, "name", "", "Model name")
	cmd.Flags().StringVar(&version, "version", "1.0", "Model version")
	cmd.Flags().BoolVar(&public, "public", false, "Make the model public (private by default)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Tags for the model")
	cmd.Flags().StringVar(&description, "description", "", "Short description")
	cmd.Flags().StringVar(&conditioning, "conditioning", "", "Conditioning type (required for controlnet)")
	cmd.Flags().DurationVar(&timeout, "timeout", upload.DefaultTimeout, "Request timeout")

	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("url")
	cmd.MarkFlagRequired("architecture")
	cmd.MarkFlagRequired("name")

	return cmd
}

func runUpload(category, url, architecture, name, version string, public bool,
	tags []string, description, conditioning string, timeout time.Duration) error {

	// Pick up RUNWARE_API_KEY from a .env file when one exists.
	_ = godotenv.Load()

	client, err := upload.NewClient("", timeout)
	if err != nil {
		return err
	}

	model := upload.Model{
		DownloadURL:      url,
		Architecture:     architecture,
		Name:             name,
		Version:          version,
		Public:           public,
		Tags:             tags,
		ShortDescription: description,
	}

	var events []upload.StatusEvent
	switch category {
	case "checkpoint":
		events, err = client.UploadCheckpoint(model)
	case "lora":
		events, err = client.UploadLoRA(model)
	case "controlnet":
		if conditioning == "" {
			return fmt.Errorf("--conditioning is required for controlnet models")
		}
		events, err = client.UploadControlNet(model, conditioning)
	default:
		return fmt.Errorf("unknown category %q (want checkpoint, lora or controlnet)", category)
	}
	if err != nil {
		return fmt.Errorf("error uploading model: %w", err)
	}

	fmt.Println("\n=== Upload Complete ===")
	out, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
