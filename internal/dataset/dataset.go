// Package dataset models a training dataset directory: numbered
// image/caption artifact pairs plus fixed-name logo source assets.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// KeyDigits is the zero-padded width of artifact keys (0001.png, 0001.txt).
const KeyDigits = 4

// CaptionExtension is the extension of caption files.
const CaptionExtension = ".txt"

// LogoPrefix marks source asset files that are never treated as artifacts.
const LogoPrefix = "logo-"

// ImageExtensions contains the set of image file extensions we recognize.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
	".tif":  true,
}

// Pair is one numbered artifact: an image file, a caption file, or both.
type Pair struct {
	Key         int
	ImagePath   string
	CaptionPath string
}

// Complete reports whether both halves of the pair exist.
func (p Pair) Complete() bool {
	return p.ImagePath != "" && p.CaptionPath != ""
}

// FormatKey renders a numeric key in its canonical zero-padded form.
func FormatKey(key int) string {
	return fmt.Sprintf("%0*d", KeyDigits, key)
}

// ParseKey extracts the numeric key from an artifact filename such as
// "0057.png". Names whose stem is not exactly KeyDigits digits are not
// artifacts and report ok=false.
func ParseKey(name string) (key int, ok bool) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if len(stem) != KeyDigits {
		return 0, false
	}
	key, err := strconv.Atoi(stem)
	if err != nil || key < 0 {
		return 0, false
	}
	return key, true
}

// Result holds the output of scanning a dataset directory.
type Result struct {
	Dir          string
	Pairs        map[int]*Pair
	Keys         []int // sorted ascending
	LogoCount    int
	SkippedCount int
}

// Scan reads a dataset directory (non-recursive) and partitions its entries
// into numbered artifact pairs, logo assets, and skipped files. Filenames
// that do not parse as numeric keys are skipped silently.
func Scan(dir string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access dataset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset directory: %w", err)
	}

	result := &Result{Dir: dir, Pairs: make(map[int]*Pair)}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasPrefix(name, LogoPrefix) {
			result.LogoCount++
			continue
		}

		key, ok := ParseKey(name)
		if !ok {
			result.SkippedCount++
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		path := filepath.Join(dir, name)
		switch {
		case ext == CaptionExtension:
			result.pair(key).CaptionPath = path
		case ImageExtensions[ext]:
			result.pair(key).ImagePath = path
		default:
			result.SkippedCount++
		}
	}

	result.Keys = make([]int, 0, len(result.Pairs))
	for key := range result.Pairs {
		result.Keys = append(result.Keys, key)
	}
	sort.Ints(result.Keys)

	return result, nil
}

func (r *Result) pair(key int) *Pair {
	p, ok := r.Pairs[key]
	if !ok {
		p = &Pair{Key: key}
		r.Pairs[key] = p
	}
	return p
}

// MaxKey returns the highest numbered key found, or 0 if none.
func (r *Result) MaxKey() int {
	if len(r.Keys) == 0 {
		return 0
	}
	return r.Keys[len(r.Keys)-1]
}
