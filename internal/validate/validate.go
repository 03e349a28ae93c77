// Package validate performs a read-only diagnostic pass over a dataset:
// image/caption pairing and trigger-word conventions. It reports findings
// rather than failing, so an operator sees every problem in one run.
package validate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	// Decoders for the optional decode check, beyond what imaging registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"logoset/internal/dataset"
)

// Finding is one reported problem with a dataset file.
type Finding struct {
	File    string
	Message string
}

// Result aggregates the diagnostics for one dataset.
type Result struct {
	Name     string
	Images   int
	Captions int
	Findings []Finding
}

// OK reports whether the dataset passed with no findings.
func (r *Result) OK() bool { return len(r.Findings) == 0 }

func (r *Result) report(file, format string, args ...interface{}) {
	r.Findings = append(r.Findings, Finding{File: file, Message: fmt.Sprintf(format, args...)})
}

// Dataset validates one dataset directory. Every image and caption file is
// paired by filename stem, numbered or not; only logo assets and hidden
// files are exempt. trigger is the prefix every caption must start with.
// When decode is set, every image is also opened and decoded so corrupt
// files are reported.
func Dataset(dir, trigger string, decode bool) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset directory: %w", err)
	}

	images := make(map[string]string)
	captions := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, dataset.LogoPrefix) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		switch {
		case ext == dataset.CaptionExtension:
			captions[stem] = filepath.Join(dir, name)
		case dataset.ImageExtensions[ext]:
			images[stem] = filepath.Join(dir, name)
		}
	}

	result := &Result{
		Name:     filepath.Base(dir),
		Images:   len(images),
		Captions: len(captions),
	}

	for _, stem := range sortedStems(images) {
		path := images[stem]
		if _, ok := captions[stem]; !ok {
			result.report(filepath.Base(path), "missing caption")
		}
		if decode {
			if _, err := imaging.Open(path); err != nil {
				result.report(filepath.Base(path), "cannot decode: %v", err)
			}
		}
	}
	for _, stem := range sortedStems(captions) {
		path := captions[stem]
		if _, ok := images[stem]; !ok {
			result.report(filepath.Base(path), "no matching image")
		}
		checkCaption(result, path, trigger)
	}

	if result.Images == 0 {
		result.report("", "no images found")
	}
	if result.Captions == 0 {
		result.report("", "no captions found")
	}
	return result, nil
}

func sortedStems(files map[string]string) []string {
	stems := make([]string, 0, len(files))
	for stem := range files {
		stems = append(stems, stem)
	}
	sort.Strings(stems)
	return stems
}

func checkCaption(result *Result, path, trigger string) {
	data, err := os.ReadFile(path)
	if err != nil {
		result.report(filepath.Base(path), "cannot read caption: %v", err)
		return
	}
	caption := strings.TrimSpace(string(data))
	if trigger != "" && !strings.HasPrefix(caption, trigger) {
		preview := caption
		if len(preview) > 50 {
			preview = preview[:50] + "..."
		}
		result.report(filepath.Base(path), "does not start with %q trigger (content: %q)", trigger, preview)
	}
}

// Print writes the diagnostics for one dataset to w.
func (r *Result) Print(w io.Writer) {
	fmt.Fprintf(w, "\n%s:\n", r.Name)
	fmt.Fprintf(w, "  Images: %d, Captions: %d\n", r.Images, r.Captions)
	for _, f := range r.Findings {
		if f.File == "" {
			fmt.Fprintf(w, "  Warning: %s\n", f.Message)
		} else {
			fmt.Fprintf(w, "  Warning: %s: %s\n", f.File, f.Message)
		}
	}
	if r.OK() {
		fmt.Fprintln(w, "  OK")
	}
}
