// Package renumber relocates numbered artifact pairs between key ranges and
// sweeps stale artifacts out of a dataset directory.
//
// Relocation is a two-phase protocol: every file is first staged under a
// temporary name drawn from a namespace disjoint from valid numeric keys,
// then committed to its final key. A direct rename is unsafe whenever the
// source and target ranges overlap, so the direct path does not exist here.
package renumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"logoset/internal/dataset"
)

// tempPrefix keeps staged names outside the numeric keyspace.
const tempPrefix = "temp_"

// Range is an inclusive interval of artifact keys.
type Range struct {
	Start int
	End   int
}

// Len returns the number of keys in the range.
func (r Range) Len() int { return r.End - r.Start + 1 }

// Contains reports whether key lies inside the range.
func (r Range) Contains(key int) bool { return key >= r.Start && key <= r.End }

func (r Range) String() string {
	return dataset.FormatKey(r.Start) + "-" + dataset.FormatKey(r.End)
}

// Detection describes an auto-detected usecase range.
type Detection struct {
	Range Range
	// Gaps are keys inside the range with no files. Detection spans from the
	// first key above the threshold to the maximum key, so interior gaps are
	// silently included in the relocated interval; they are reported here so
	// the operator can decide whether that is intended.
	Gaps []int
}

// Detect scans for usecase artifacts: numbered files whose key exceeds
// threshold. It returns the minimal interval covering all such keys, or
// ok=false when nothing lies above the threshold. Detect never touches
// the filesystem beyond the scan it is given.
func Detect(scan *dataset.Result, threshold int) (Detection, bool) {
	var det Detection
	start := 0
	for _, key := range scan.Keys {
		if key > threshold {
			start = key
			break
		}
	}
	if start == 0 {
		return det, false
	}

	det.Range = Range{Start: start, End: scan.MaxKey()}
	for key := det.Range.Start + 1; key < det.Range.End; key++ {
		if _, ok := scan.Pairs[key]; !ok {
			det.Gaps = append(det.Gaps, key)
		}
	}
	return det, true
}

// Move records one relocated file.
type Move struct {
	OldKey  int
	NewKey  int
	OldName string
	NewName string
}

type stagedFile struct {
	oldKey   int
	newKey   int
	oldName  string
	tempPath string
	ext      string
}

// Staged holds files parked under temporary names, waiting for Commit.
type Staged struct {
	dir   string
	files []stagedFile
}

// Count returns the number of staged files.
func (s *Staged) Count() int { return len(s.files) }

// Stage moves every existing file whose key lies in src out of the numeric
// keyspace, recording the final key newStart + (key - src.Start) for each.
// Halves of a pair are tracked independently: a key with only an image or
// only a caption is staged just the same. Staging an empty range succeeds
// and yields an empty plan.
func Stage(dir string, src Range, newStart int) (*Staged, error) {
	scan, err := dataset.Scan(dir)
	if err != nil {
		return nil, err
	}

	staged := &Staged{dir: dir}
	for _, key := range scan.Keys {
		if !src.Contains(key) {
			continue
		}
		pair := scan.Pairs[key]
		newKey := newStart + (key - src.Start)

		for _, path := range []string{pair.ImagePath, pair.CaptionPath} {
			if path == "" {
				continue
			}
			ext := filepath.Ext(path)
			tempPath := filepath.Join(dir, tempPrefix+dataset.FormatKey(key)+ext)
			if _, err := os.Stat(tempPath); err == nil {
				return nil, fmt.Errorf("staging name %s already exists (leftover from an interrupted run?); remove it and rerun",
					filepath.Base(tempPath))
			}
			if err := os.Rename(path, tempPath); err != nil {
				return nil, fmt.Errorf("cannot stage %s: %w", filepath.Base(path), err)
			}
			staged.files = append(staged.files, stagedFile{
				oldKey:   key,
				newKey:   newKey,
				oldName:  filepath.Base(path),
				tempPath: tempPath,
				ext:      ext,
			})
		}
	}
	return staged, nil
}

// Commit verifies staging completeness and moves every staged file to its
// final key. A live file already sitting at a final name is never
// overwritten; it aborts the commit instead.
func (s *Staged) Commit() ([]Move, error) {
	for _, f := range s.files {
		if _, err := os.Stat(f.tempPath); err != nil {
			return nil, fmt.Errorf("staged file missing before commit: %w", err)
		}
	}

	var moves []Move
	for _, f := range s.files {
		newName := dataset.FormatKey(f.newKey) + f.ext
		finalPath := filepath.Join(s.dir, newName)
		if _, err := os.Stat(finalPath); err == nil {
			return moves, fmt.Errorf("refusing to overwrite %s", newName)
		}
		if err := os.Rename(f.tempPath, finalPath); err != nil {
			return moves, fmt.Errorf("cannot commit %s: %w", newName, err)
		}
		moves = append(moves, Move{
			OldKey:  f.oldKey,
			NewKey:  f.newKey,
			OldName: f.oldName,
			NewName: newName,
		})
	}
	return moves, nil
}

// Relocate stages and immediately commits the src range to newStart.
func Relocate(dir string, src Range, newStart int) ([]Move, error) {
	staged, err := Stage(dir, src, newStart)
	if err != nil {
		return nil, err
	}
	return staged.Commit()
}

// Cleanup deletes every numbered artifact file (image or caption) whose key
// lies outside keep. Logo assets and filenames that do not parse as numeric
// keys are left alone. It returns the deleted filenames.
func Cleanup(dir string, keep Range) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset directory: %w", err)
	}

	var deleted []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, dataset.LogoPrefix) {
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if ext != dataset.CaptionExtension && !dataset.ImageExtensions[ext] {
			continue
		}
		key, ok := dataset.ParseKey(name)
		if !ok {
			continue
		}

		if !keep.Contains(key) {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				return deleted, fmt.Errorf("cannot delete %s: %w", name, err)
			}
			deleted = append(deleted, name)
		}
	}
	return deleted, nil
}
