// Package generate renders variant spaces into a dataset directory, writing
// one PNG and one caption file per variant.
package generate

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"logoset/internal/assets"
	"logoset/internal/dataset"
	"logoset/internal/pattern"
	"logoset/internal/variant"
)

// paddingPx is the transparent border around variation-space renders.
const paddingPx = 50

// Options tunes a generation run. Zero fields fall back to the defaults of
// the dataset format (1024px canvases, the full pattern space).
type Options struct {
	TargetSize int
	Pattern    pattern.Options
	// Progress is called after each variant is written.
	Progress func(v pattern.Variant, imageName string)
}

func (o Options) resolve() Options {
	if o.TargetSize == 0 {
		o.TargetSize = variant.DefaultTargetSize
	}
	return o
}

// logoCache loads each logo source at most once per run.
type logoCache struct {
	paths  map[string]string
	loaded map[string]image.Image
}

func newLogoCache(paths map[string]string) *logoCache {
	return &logoCache{paths: paths, loaded: make(map[string]image.Image)}
}

func (c *logoCache) get(color string) (image.Image, error) {
	if img, ok := c.loaded[color]; ok {
		return img, nil
	}
	img, err := assets.Load(c.paths[color])
	if err != nil {
		return nil, err
	}
	c.loaded[color] = img
	return img, nil
}

// Pattern renders the regeneration pattern (3 colors x 3 sizes x 5 rotations)
// into dir, numbered 0001 upward, each variant centered on a solid background
// of its color. It returns the number of variants written.
func Pattern(dir string, logos map[string]string, tag string, opts Options) (int, error) {
	opts = opts.resolve()
	variants := pattern.Build(tag, opts.Pattern)
	cache := newLogoCache(logos)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("cannot create dataset directory: %w", err)
	}

	for _, v := range variants {
		logo, err := cache.get(v.Color)
		if err != nil {
			return 0, err
		}
		img := variant.RenderOnBackground(logo, v.Scale, variant.Backgrounds[v.Color], opts.TargetSize, v.Rotation)
		if err := write(dir, v, img, opts); err != nil {
			return 0, err
		}
	}
	return len(variants), nil
}

// Variations renders the logo-variation space into dir: two base variants on
// transparent padded canvases, then the scaled/rotated combinations cropped
// to their content. It returns the number of variants written.
func Variations(dir string, logos map[string]string, trigger string, opts Options) (int, error) {
	opts = opts.resolve()
	variants := pattern.Variations(trigger)
	cache := newLogoCache(logos)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("cannot create dataset directory: %w", err)
	}

	for _, v := range variants {
		logo, err := cache.get(v.Color)
		if err != nil {
			return 0, err
		}
		var img *image.NRGBA
		if v.Base {
			img = variant.PadTransparent(logo, paddingPx)
		} else {
			img = variant.RenderTransparent(logo, v.Scale, v.Rotation, paddingPx)
		}
		if err := write(dir, v, img, opts); err != nil {
			return 0, err
		}
	}
	return len(variants), nil
}

// write saves one variant's image and caption under its numeric key.
func write(dir string, v pattern.Variant, img image.Image, opts Options) error {
	name := dataset.FormatKey(v.Key)
	imagePath := filepath.Join(dir, name+".png")
	if err := imaging.Save(img, imagePath); err != nil {
		return fmt.Errorf("cannot save %s: %w", name+".png", err)
	}
	captionPath := filepath.Join(dir, name+dataset.CaptionExtension)
	if err := os.WriteFile(captionPath, []byte(v.Caption), 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", name+dataset.CaptionExtension, err)
	}
	if opts.Progress != nil {
		opts.Progress(v, name+".png")
	}
	return nil
}
