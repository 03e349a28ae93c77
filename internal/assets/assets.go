// Package assets locates and loads the logo source images a dataset is
// generated from.
package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Colors is the set of logo color categories every dataset must provide,
// in generation order.
var Colors = []string{"white", "black", "gray"}

// extensions are tried in priority order when locating a logo file.
var extensions = []string{".png", ".jpg", ".jpeg"}

// ControlsDir is the optional subfolder holding logo sources. When present
// it takes priority over the dataset directory itself.
const ControlsDir = "_controls"

// Find locates one logo file per required color in the dataset directory,
// preferring the _controls subfolder. A missing color is a fatal condition:
// generation must not start without a complete asset set.
func Find(datasetDir string) (map[string]string, error) {
	baseDir := filepath.Join(datasetDir, ControlsDir)
	if _, err := os.Stat(baseDir); err != nil {
		baseDir = datasetDir
	}

	logos := make(map[string]string, len(Colors))
	for _, color := range Colors {
		found := false
		for _, ext := range extensions {
			path := filepath.Join(baseDir, "logo-"+color+ext)
			if _, err := os.Stat(path); err == nil {
				logos[color] = path
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("logo file not found for %s color in %s (expected logo-%s.png, .jpg or .jpeg)",
				color, baseDir, color)
		}
	}
	return logos, nil
}

// Load decodes a logo image from disk.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open logo %s: %w", path, err)
	}
	return img, nil
}
